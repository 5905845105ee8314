package services

import (
	"time"

	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type StatsService interface {
	UserStats() (*dto.UserStatsResponse, error)
	JobStats() (*dto.JobStatsResponse, error)
	ApplicationStats() (*dto.ApplicationStatsResponse, error)
	RegistrationStats(days int) (*dto.RegistrationStatsResponse, error)
}

type StatsServiceImpl struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) StatsService {
	return &StatsServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *StatsServiceImpl) UserStats() (*dto.UserStatsResponse, error) {
	byRole, err := s.userRepo.CountByRole()
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return &dto.UserStatsResponse{Total: sumCounts(byRole), ByRole: byRole}, nil
}

func (s *StatsServiceImpl) JobStats() (*dto.JobStatsResponse, error) {
	byStatus, err := s.jobRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return &dto.JobStatsResponse{Total: sumCounts(byStatus), ByStatus: byStatus}, nil
}

func (s *StatsServiceImpl) ApplicationStats() (*dto.ApplicationStatsResponse, error) {
	byStatus, err := s.applicationRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return &dto.ApplicationStatsResponse{Total: sumCounts(byStatus), ByStatus: byStatus}, nil
}

func (s *StatsServiceImpl) RegistrationStats(days int) (*dto.RegistrationStatsResponse, error) {
	if days <= 0 {
		days = 30
	}

	since := time.Now().AddDate(0, 0, -days)
	count, err := s.userRepo.CountRegisteredSince(since)
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}

	return &dto.RegistrationStatsResponse{Days: days, Registrations: count}, nil
}

func sumCounts(counts map[string]int64) int64 {
	var total int64
	for _, count := range counts {
		total += count
	}
	return total
}
