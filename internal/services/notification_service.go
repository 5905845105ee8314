package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

type NotificationService interface {
	List(userID string, limit, offset int) ([]models.Notification, error)
	MarkRead(userID, notificationID string) error
	UnreadCount(userID string) (int64, error)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) List(userID string, limit, offset int) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindByUserID(userID, limit, offset)
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return notifications, nil
}

func (s *NotificationServiceImpl) MarkRead(userID, notificationID string) error {
	err := s.notificationRepo.MarkRead(notificationID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NotFound("Notification")
		}
		return apperrors.DependencyError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) UnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, apperrors.DependencyError(err)
	}
	return count, nil
}
