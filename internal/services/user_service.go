package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type UserService interface {
	List(criteria repositories.UserFilter) ([]models.User, int64, error)
	GetByID(userID string) (*dto.UserResponse, error)
	SetStatus(userID string, status models.UserStatus) error
	Delete(userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List(criteria repositories.UserFilter) ([]models.User, int64, error) {
	users, total, err := s.userRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, 0, apperrors.DependencyError(err)
	}
	return users, total, nil
}

func (s *UserServiceImpl) GetByID(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DependencyError(err)
	}
	return buildUserResponse(user), nil
}

// SetStatus suspends or reinstates an account. Suspension takes effect on
// the next token refresh; issued access tokens ride out their TTL.
func (s *UserServiceImpl) SetStatus(userID string, status models.UserStatus) error {
	if err := s.userRepo.UpdateStatus(userID, status); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DependencyError(err)
	}

	if status == models.UserStatusSuspended {
		s.userRepo.DeleteUserRefreshTokens(userID)
	}
	return nil
}

func (s *UserServiceImpl) Delete(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DependencyError(err)
	}
	return nil
}
