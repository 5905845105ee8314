package services

import (
	"jobboard_backend/internal/authz"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	List(query *dto.JobListQuery) (*dto.JobListResponse, error)
	GetByID(jobID string) (*models.Job, error)
	ListOwn(session *authz.Session) ([]models.Job, error)
	Create(session *authz.Session, req *dto.CreateJobRequest) (*models.Job, error)
	Update(session *authz.Session, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(session *authz.Session, jobID string) error
	AdminCreate(req *dto.AdminCreateJobRequest) (*models.Job, error)
	// AdminList is the unfiltered board view: closed jobs included unless a
	// status filter is given.
	AdminList(query *dto.JobListQuery) (*dto.JobListResponse, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
}

func NewJobService(jobRepo repositories.JobRepository, companyRepo repositories.CompanyRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, companyRepo: companyRepo}
}

// List is the public board: anonymous callers only ever see active jobs.
// Any status in the query is ignored; AdminList honors it instead.
func (s *JobServiceImpl) List(query *dto.JobListQuery) (*dto.JobListResponse, error) {
	criteria := repositories.JobFilter{
		Status:   models.JobStatusActive,
		City:     query.City,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	jobs, total, err := s.jobRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return &dto.JobListResponse{Jobs: jobs, Total: total}, nil
}

func (s *JobServiceImpl) GetByID(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DependencyError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListOwn(session *authz.Session) ([]models.Job, error) {
	company, err := s.callerCompany(session)
	if err != nil {
		return nil, err
	}

	// Listing own jobs works even while the company is pending; only
	// creating and editing require approval.
	decision := authz.Authorize(session, authz.ActionRead, authz.Resource{OwnerUserID: company.UserID})
	if appErr := decision.Error(); appErr != nil {
		return nil, appErr
	}

	jobs, err := s.jobRepo.FindByCompanyID(company.ID)
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) Create(session *authz.Session, req *dto.CreateJobRequest) (*models.Job, error) {
	company, err := s.callerCompany(session)
	if err != nil {
		return nil, err
	}

	decision := authz.Authorize(session, authz.ActionCreate, authz.Resource{
		CompanyScoped:   true,
		CompanyOwnerID:  company.UserID,
		CompanyApproved: company.Status == models.CompanyStatusApproved,
	})
	if appErr := decision.Error(); appErr != nil {
		return nil, appErr
	}

	job := &models.Job{
		CompanyID:   company.ID,
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		ApplyMethod: req.ApplyMethod,
		Status:      models.JobStatusActive,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Update(session *authz.Session, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, company, err := s.ownedJob(session, jobID)
	if err != nil {
		return nil, err
	}

	decision := authz.Authorize(session, authz.ActionUpdate, authz.Resource{
		CompanyScoped:   true,
		CompanyOwnerID:  company.UserID,
		CompanyApproved: company.Status == models.CompanyStatusApproved,
	})
	if appErr := decision.Error(); appErr != nil {
		return nil, appErr
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.ApplyMethod != nil {
		job.ApplyMethod = *req.ApplyMethod
	}
	if req.Status != nil {
		job.Status = *req.Status
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Delete(session *authz.Session, jobID string) error {
	_, company, err := s.ownedJob(session, jobID)
	if err != nil {
		return err
	}

	decision := authz.Authorize(session, authz.ActionDelete, authz.Resource{
		CompanyScoped:   true,
		CompanyOwnerID:  company.UserID,
		CompanyApproved: company.Status == models.CompanyStatusApproved,
	})
	if appErr := decision.Error(); appErr != nil {
		return appErr
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.DependencyError(err)
	}
	return nil
}

// AdminCreate posts a job on behalf of any company, bypassing the approval
// gate. Route-level role middleware restricts it to administrators.
func (s *JobServiceImpl) AdminCreate(req *dto.AdminCreateJobRequest) (*models.Job, error) {
	company, err := s.companyRepo.FindByID(req.CompanyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DependencyError(err)
	}

	status := req.Status
	if status == "" {
		status = models.JobStatusActive
	}

	job := &models.Job{
		CompanyID:   company.ID,
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		ApplyMethod: req.ApplyMethod,
		Status:      status,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) AdminList(query *dto.JobListQuery) (*dto.JobListResponse, error) {
	criteria := repositories.JobFilter{
		Status:   models.JobStatus(query.Status),
		City:     query.City,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	jobs, total, err := s.jobRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return &dto.JobListResponse{Jobs: jobs, Total: total}, nil
}

func (s *JobServiceImpl) callerCompany(session *authz.Session) (*models.Company, error) {
	if session == nil {
		return nil, apperrors.ErrUnauthorized
	}
	company, err := s.companyRepo.FindByUserID(session.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DependencyError(err)
	}
	return company, nil
}

// ownedJob resolves the job and verifies it belongs to the caller's company
// before any mutation is attempted.
func (s *JobServiceImpl) ownedJob(session *authz.Session, jobID string) (*models.Job, *models.Company, error) {
	company, err := s.callerCompany(session)
	if err != nil {
		return nil, nil, err
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, nil, apperrors.ErrJobNotFound
		}
		return nil, nil, apperrors.DependencyError(err)
	}

	if job.CompanyID != company.ID {
		return nil, nil, apperrors.ErrForbidden
	}

	return job, company, nil
}
