package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	CompanyHandler      *CompanyHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	ProfileHandler      *ProfileHandler
	NotificationHandler *NotificationHandler
	AdminHandler        *AdminHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, svc.AuthService),
		CompanyHandler:      NewCompanyHandler(base, svc.CompanyService),
		JobHandler:          NewJobHandler(base, svc.JobService),
		ApplicationHandler:  NewApplicationHandler(base, svc.ApplicationService),
		ProfileHandler:      NewProfileHandler(base, svc.ProfileService),
		NotificationHandler: NewNotificationHandler(base, svc.NotificationService),
		AdminHandler: NewAdminHandler(
			base, svc.UserService, svc.CompanyService, svc.JobService, svc.StatsService,
		),
	}
}
