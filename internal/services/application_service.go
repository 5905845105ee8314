package services

import (
	"fmt"

	"jobboard_backend/internal/authz"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(session *authz.Session, jobID string, req *dto.ApplyRequest) (*models.Application, error)
	ListOwn(session *authz.Session) ([]models.Application, error)
	// ListForCompany returns applications to the caller's jobs only. The
	// query is scoped by the company's job id set before any filter from
	// the request is applied, so a foreign job_id filter can never widen
	// the result.
	ListForCompany(session *authz.Session, query *dto.ApplicationListQuery) (*dto.ApplicationListResponse, error)
	UpdateStatus(session *authz.Session, applicationID string, status models.ApplicationStatus) (*models.Application, error)
	GetByID(session *authz.Session, applicationID string) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo  repositories.ApplicationRepository
	jobRepo          repositories.JobRepository
	companyRepo      repositories.CompanyRepository
	notificationRepo repositories.NotificationRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	notificationRepo repositories.NotificationRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		companyRepo:      companyRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *ApplicationServiceImpl) Apply(session *authz.Session, jobID string, req *dto.ApplyRequest) (*models.Application, error) {
	if session == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if session.Role != models.UserRoleJobseeker {
		return nil, apperrors.ErrForbidden
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DependencyError(err)
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobNotActive
	}

	application := &models.Application{
		JobID:       jobID,
		UserID:      session.UserID,
		Status:      models.ApplicationStatusPending,
		CoverLetter: req.CoverLetter,
	}
	// No pre-check: the unique index decides, so two concurrent applies
	// cannot both succeed.
	if err := s.applicationRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.DependencyError(err)
	}

	s.notifyCompany(job, application)

	return application, nil
}

func (s *ApplicationServiceImpl) ListOwn(session *authz.Session) ([]models.Application, error) {
	if session == nil {
		return nil, apperrors.ErrUnauthorized
	}
	applications, err := s.applicationRepo.FindByUserID(session.UserID)
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}
	return applications, nil
}

func (s *ApplicationServiceImpl) ListForCompany(session *authz.Session, query *dto.ApplicationListQuery) (*dto.ApplicationListResponse, error) {
	company, err := s.callerCompany(session)
	if err != nil {
		return nil, err
	}

	decision := authz.Authorize(session, authz.ActionRead, authz.Resource{
		CompanyScoped:   true,
		CompanyOwnerID:  company.UserID,
		CompanyApproved: company.Status == models.CompanyStatusApproved,
	})
	if appErr := decision.Error(); appErr != nil {
		return nil, appErr
	}

	jobIDs, err := s.jobRepo.JobIDsByCompany(company.ID)
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}

	// A job_id filter naming a job outside the caller's set is rejected
	// outright rather than silently dropped.
	if query.JobID != "" && !containsID(jobIDs, query.JobID) {
		return nil, apperrors.ErrForbidden
	}

	criteria := repositories.ApplicationFilter{
		Status:   models.ApplicationStatus(query.Status),
		JobID:    query.JobID,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	applications, total, err := s.applicationRepo.FindByJobIDs(jobIDs, criteria)
	if err != nil {
		return nil, apperrors.DependencyError(err)
	}

	views := make([]dto.ApplicationView, 0, len(applications))
	for _, app := range applications {
		views = append(views, buildApplicationView(&app))
	}

	return &dto.ApplicationListResponse{Applications: views, Total: total}, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(session *authz.Session, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.ValidationError(map[string]string{"status": "unknown application status"})
	}

	application, err := s.ownedApplication(session, applicationID)
	if err != nil {
		return nil, err
	}

	if err := application.AppendStatusTransition(status, session.UserID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.applicationRepo.Update(application); err != nil {
		return nil, apperrors.DependencyError(err)
	}

	jobTitle := ""
	if application.Job != nil {
		jobTitle = application.Job.Title
	}
	notification := &models.Notification{
		UserID:    application.UserID,
		Type:      models.NotificationTypeApplicationStatus,
		Message:   fmt.Sprintf("Your application for %q is now %s", jobTitle, status),
		RelatedID: application.ID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.Warn("failed to create application status notification", "error", err, "application_id", application.ID)
	}

	return application, nil
}

func (s *ApplicationServiceImpl) GetByID(session *authz.Session, applicationID string) (*models.Application, error) {
	if session == nil {
		return nil, apperrors.ErrUnauthorized
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DependencyError(err)
	}

	switch session.Role {
	case models.UserRoleAdmin:
		return application, nil
	case models.UserRoleJobseeker:
		decision := authz.Authorize(session, authz.ActionRead, authz.Resource{OwnerUserID: application.UserID})
		if appErr := decision.Error(); appErr != nil {
			return nil, appErr
		}
		return application, nil
	case models.UserRoleCompany:
		company, err := s.callerCompany(session)
		if err != nil {
			return nil, err
		}
		if application.Job == nil || application.Job.CompanyID != company.ID {
			return nil, apperrors.ErrForbidden
		}
		return application, nil
	default:
		return nil, apperrors.ErrForbidden
	}
}

func (s *ApplicationServiceImpl) callerCompany(session *authz.Session) (*models.Company, error) {
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

// ownedApplication resolves an application and verifies the job it targets
// belongs to the caller's approved company.
func (s *ApplicationServiceImpl) ownedApplication(session *authz.Session, applicationID string) (*models.Application, error) {
	company, err := s.callerCompany(session)
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

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DependencyError(err)
	}

	if application.Job == nil || application.Job.CompanyID != company.ID {
		return nil, apperrors.ErrForbidden
	}

	return application, nil
}

func (s *ApplicationServiceImpl) notifyCompany(job *models.Job, application *models.Application) {
	if job.Company == nil {
		return
	}
	notification := &models.Notification{
		UserID:    job.Company.UserID,
		Type:      models.NotificationTypeNewApplication,
		Message:   fmt.Sprintf("New application for %q", job.Title),
		RelatedID: application.ID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.Warn("failed to create new application notification", "error", err, "job_id", job.ID)
	}
}

func buildApplicationView(app *models.Application) dto.ApplicationView {
	view := dto.ApplicationView{
		ID:          app.ID,
		Status:      app.Status,
		CoverLetter: app.CoverLetter,
		CreatedAt:   app.CreatedAt,
		JobID:       app.JobID,
	}
	if app.Job != nil {
		view.JobTitle = app.Job.Title
		view.JobLocation = app.Job.Location
	}
	if app.User != nil {
		view.ApplicantName = app.User.Name
		view.ApplicantEmail = app.User.Email
	}
	return view
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
