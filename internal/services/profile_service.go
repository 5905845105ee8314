package services

import (
	"gorm.io/datatypes"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ProfileService interface {
	Get(userID string) (*models.JobseekerProfile, error)
	Update(userID string, req *dto.UpdateProfileRequest) (*models.JobseekerProfile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) Get(userID string) (*models.JobseekerProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.DependencyError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) Update(userID string, req *dto.UpdateProfileRequest) (*models.JobseekerProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.DependencyError(err)
	}

	profile.Headline = req.Headline
	profile.City = req.City
	profile.Phone = req.Phone
	if req.Skills != nil {
		profile.Skills = datatypes.JSON(req.Skills)
	}
	if req.Education != nil {
		profile.Education = datatypes.JSON(req.Education)
	}
	if req.Experience != nil {
		profile.Experience = datatypes.JSON(req.Experience)
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return profile, nil
}
