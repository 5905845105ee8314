package services

import (
	"jobboard_backend/internal/pkg/email"
	"jobboard_backend/internal/repositories"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	CompanyService      CompanyService
	JobService          JobService
	ApplicationService  ApplicationService
	ProfileService      ProfileService
	NotificationService NotificationService
	StatsService        StatsService
}

// NewServiceContainer wires repositories into services. Express the object
// graph in one place so main stays a one-liner per layer.
func NewServiceContainer(repos *repositories.Container, emailSender email.Sender, resetBaseURL string) *ServiceContainer {
	return &ServiceContainer{
		AuthService: NewAuthService(
			repos.Users, repos.Companies, repos.Profiles, repos.PasswordResets,
			emailSender, resetBaseURL,
		),
		UserService:         NewUserService(repos.Users),
		CompanyService:      NewCompanyService(repos.Companies, repos.Users, repos.Notifications, emailSender),
		JobService:          NewJobService(repos.Jobs, repos.Companies),
		ApplicationService:  NewApplicationService(repos.Applications, repos.Jobs, repos.Companies, repos.Notifications),
		ProfileService:      NewProfileService(repos.Profiles),
		NotificationService: NewNotificationService(repos.Notifications),
		StatsService:        NewStatsService(repos.Users, repos.Jobs, repos.Applications),
	}
}
