package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.AuthService.Register(&dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     models.UserRoleJobseeker,
	})
	require.NoError(t, err)

	// A jobseeker profile is created alongside the account.
	var profiles int64
	env.db.Model(&models.JobseekerProfile{}).Count(&profiles)
	assert.EqualValues(t, 1, profiles)

	resp, err := env.svc.AuthService.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.UserRoleJobseeker, resp.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	req := &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     models.UserRoleJobseeker,
	}
	require.NoError(t, env.svc.AuthService.Register(req))

	err := env.svc.AuthService.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterAdminRoleRejected(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.AuthService.Register(&dto.RegisterRequest{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "password123",
		Role:     models.UserRoleAdmin,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestRegisterCompanyCreatesPendingProfile(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.AuthService.Register(&dto.RegisterRequest{
		Name:        "Bob",
		Email:       "bob@acme.test",
		Password:    "password123",
		Role:        models.UserRoleCompany,
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	var company models.Company
	require.NoError(t, env.db.First(&company).Error)
	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, models.CompanyStatusPending, company.Status)

	require.Eventually(t, func() bool {
		return len(env.mail.Submissions()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	_, err := env.svc.AuthService.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginSuspendedUser(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)
	require.NoError(t, env.repos.Users.UpdateStatus(user.ID, models.UserStatusSuspended))

	_, err := env.svc.AuthService.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserSuspended)
}

func TestRefreshTokenRotation(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	login, err := env.svc.AuthService.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := env.svc.AuthService.RefreshToken(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old token died with the exchange.
	_, err = env.svc.AuthService.RefreshToken(login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	// Unknown addresses are indistinguishable from known ones: no error,
	// no token row, no mail.
	err := env.svc.AuthService.RequestPasswordReset("nobody@example.com")
	require.NoError(t, err)

	var tokens int64
	env.db.Model(&models.PasswordResetToken{}).Count(&tokens)
	assert.EqualValues(t, 0, tokens)
	assert.Empty(t, env.mail.ResetURLs())
}

// requestReset runs the recovery request and extracts the raw token from the
// captured mail.
func requestReset(t *testing.T, env *testEnv, emailAddr string) string {
	t.Helper()

	before := len(env.mail.ResetURLs())
	require.NoError(t, env.svc.AuthService.RequestPasswordReset(emailAddr))

	var resetURL string
	require.Eventually(t, func() bool {
		urls := env.mail.ResetURLs()
		if len(urls) <= before {
			return false
		}
		resetURL = urls[len(urls)-1]
		return true
	}, time.Second, 10*time.Millisecond)

	idx := strings.Index(resetURL, "token=")
	require.Greater(t, idx, 0)
	return resetURL[idx+len("token="):]
}

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	rawToken := requestReset(t, env, "alice@example.com")

	// Only the hash is persisted.
	var stored models.PasswordResetToken
	require.NoError(t, env.db.First(&stored).Error)
	assert.Equal(t, user.ID, stored.UserID)
	assert.NotEqual(t, rawToken, stored.TokenHash)
	assert.Equal(t, auth.HashToken(rawToken), stored.TokenHash)

	require.NoError(t, env.svc.AuthService.VerifyResetToken(rawToken))

	require.NoError(t, env.svc.AuthService.ResetPassword(rawToken, "new-password-1"))

	// The new credential works, the old one does not.
	_, err := env.svc.AuthService.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = env.svc.AuthService.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "new-password-1",
	})
	assert.NoError(t, err)
}

func TestPasswordResetTokenSingleUse(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	rawToken := requestReset(t, env, "alice@example.com")
	require.NoError(t, env.svc.AuthService.ResetPassword(rawToken, "new-password-1"))

	// Second use of the same token is rejected.
	err := env.svc.AuthService.ResetPassword(rawToken, "new-password-2")
	assert.ErrorIs(t, err, apperrors.ErrResetTokenInvalid)
}

func TestPasswordResetTokenExpired(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	rawToken := requestReset(t, env, "alice@example.com")

	// Push the token past its lifetime.
	require.NoError(t, env.db.Model(&models.PasswordResetToken{}).
		Where("token_hash = ?", auth.HashToken(rawToken)).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	assert.ErrorIs(t, env.svc.AuthService.VerifyResetToken(rawToken), apperrors.ErrResetTokenExpired)
	assert.ErrorIs(t, env.svc.AuthService.ResetPassword(rawToken, "new-password-1"), apperrors.ErrResetTokenExpired)
}

func TestRepeatedResetRequestKeepsOneToken(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	first := requestReset(t, env, "alice@example.com")
	second := requestReset(t, env, "alice@example.com")
	require.NotEqual(t, first, second)

	var tokens int64
	env.db.Model(&models.PasswordResetToken{}).Count(&tokens)
	assert.EqualValues(t, 1, tokens)

	// The superseded token no longer works.
	assert.ErrorIs(t, env.svc.AuthService.VerifyResetToken(first), apperrors.ErrResetTokenInvalid)
	assert.NoError(t, env.svc.AuthService.VerifyResetToken(second))
}

func TestResetPasswordRevokesSessions(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	login, err := env.svc.AuthService.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	rawToken := requestReset(t, env, "alice@example.com")
	require.NoError(t, env.svc.AuthService.ResetPassword(rawToken, "new-password-1"))

	_, err = env.svc.AuthService.RefreshToken(login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	err := env.svc.AuthService.ChangePassword(user.ID, "wrong", "new-password-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = env.svc.AuthService.ChangePassword(user.ID, "password123", "short")
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	require.NoError(t, env.svc.AuthService.ChangePassword(user.ID, "password123", "new-password-1"))

	_, err = env.svc.AuthService.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "new-password-1",
	})
	assert.NoError(t, err)
}
