package services

import (
	"fmt"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/pkg/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type CompanyService interface {
	GetOwn(userID string) (*models.Company, error)
	UpdateOwn(userID string, req *dto.CompanyProfileRequest) (*models.Company, error)
	GetByID(companyID string) (*models.Company, error)
	List(criteria repositories.CompanyFilter) (*dto.CompanyListResponse, error)
	SetStatus(companyID string, status models.CompanyStatus) (*models.Company, error)
}

type CompanyServiceImpl struct {
	companyRepo      repositories.CompanyRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	emailSender      email.Sender
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	emailSender email.Sender,
) CompanyService {
	return &CompanyServiceImpl{
		companyRepo:      companyRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailSender:      emailSender,
	}
}

func (s *CompanyServiceImpl) GetOwn(userID string) (*models.Company, error) {
	company, err := s.companyRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DependencyError(err)
	}
	return company, nil
}

// UpdateOwn edits the caller's company profile. Any edit to an approved or
// rejected profile sends it back to moderation.
func (s *CompanyServiceImpl) UpdateOwn(userID string, req *dto.CompanyProfileRequest) (*models.Company, error) {
	company, err := s.companyRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DependencyError(err)
	}

	company.Name = req.Name
	company.Description = req.Description
	company.Website = req.Website
	company.City = req.City
	company.Status = models.CompanyStatusPending

	if err := s.companyRepo.Update(company); err != nil {
		return nil, apperrors.DependencyError(err)
	}

	if user, err := s.userRepo.FindByID(userID); err == nil {
		go func() {
			if err := s.emailSender.SendCompanySubmitted(user.Email, company.Name); err != nil {
				logger.Warn("failed to send company submitted email", "error", err, "email", user.Email)
			}
		}()
	}

	return company, nil
}

func (s *CompanyServiceImpl) GetByID(companyID string) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DependencyError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) List(criteria repositories.CompanyFilter) (*dto.CompanyListResponse, error) {
	companies, total, err := s.companyRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return &dto.CompanyListResponse{Companies: companies, Total: total}, nil
}

// SetStatus is the moderation decision. The owning account is notified
// in-app regardless of outcome.
func (s *CompanyServiceImpl) SetStatus(companyID string, status models.CompanyStatus) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DependencyError(err)
	}

	if err := s.companyRepo.UpdateStatus(companyID, status); err != nil {
		return nil, apperrors.DependencyError(err)
	}
	company.Status = status

	notification := &models.Notification{
		UserID:    company.UserID,
		Type:      models.NotificationTypeCompanyStatus,
		Message:   fmt.Sprintf("Your company profile %q was %s", company.Name, status),
		RelatedID: company.ID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.Warn("failed to create company status notification", "error", err, "company_id", company.ID)
	}

	return company, nil
}
