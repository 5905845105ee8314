package repositories

import "gorm.io/gorm"

// Container holds every repository, all sharing one *gorm.DB handle.
type Container struct {
	Users          UserRepository
	Companies      CompanyRepository
	Jobs           JobRepository
	Applications   ApplicationRepository
	Profiles       ProfileRepository
	Notifications  NotificationRepository
	PasswordResets PasswordResetRepository
}

func NewContainer(db *gorm.DB) *Container {
	return &Container{
		Users:          NewUserRepository(db),
		Companies:      NewCompanyRepository(db),
		Jobs:           NewJobRepository(db),
		Applications:   NewApplicationRepository(db),
		Profiles:       NewProfileRepository(db),
		Notifications:  NewNotificationRepository(db),
		PasswordResets: NewPasswordResetRepository(db),
	}
}
