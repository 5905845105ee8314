package services

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/authz"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/pkg/email"
	"jobboard_backend/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
		&models.JobseekerProfile{},
		&models.Notification{},
	))

	require.NoError(t, auth.InitJWT("test-secret", 60))

	return db
}

type testEnv struct {
	db    *gorm.DB
	repos *repositories.Container
	mail  *recordingSender
	svc   *ServiceContainer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	repos := repositories.NewContainer(db)
	mail := &recordingSender{}
	svc := NewServiceContainer(repos, mail, "http://localhost:3000")

	return &testEnv{db: db, repos: repos, mail: mail, svc: svc}
}

// recordingSender captures outbound mail instead of dialing SMTP. Delivery
// happens on background goroutines, so access is guarded.
type recordingSender struct {
	mu            sync.Mutex
	resetURLs     []string
	confirmations []string
	submissions   []string
}

func (s *recordingSender) SendPasswordReset(to, resetURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetURLs = append(s.resetURLs, resetURL)
	return nil
}

func (s *recordingSender) SendPasswordResetConfirmation(to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmations = append(s.confirmations, to)
	return nil
}

func (s *recordingSender) SendCompanySubmitted(to, companyName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, companyName)
	return nil
}

func (s *recordingSender) ResetURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.resetURLs...)
}

func (s *recordingSender) Submissions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.submissions...)
}

var _ email.Sender = (*recordingSender)(nil)

func createUser(t *testing.T, db *gorm.DB, name, emailAddr string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         role,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCompany(t *testing.T, db *gorm.DB, user *models.User, status models.CompanyStatus) *models.Company {
	t.Helper()

	company := &models.Company{
		UserID: user.ID,
		Name:   user.Name + " Inc",
		Status: status,
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func createJob(t *testing.T, db *gorm.DB, company *models.Company, title string) *models.Job {
	t.Helper()

	job := &models.Job{
		CompanyID: company.ID,
		Title:     title,
		Status:    models.JobStatusActive,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func sessionFor(user *models.User) *authz.Session {
	return &authz.Session{UserID: user.ID, Role: user.Role}
}
