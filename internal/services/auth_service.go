package services

import (
	"fmt"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/pkg/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

const (
	resetTokenTTL   = 1 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	Me(userID string) (*dto.UserResponse, error)
	RequestPasswordReset(emailAddr string) error
	VerifyResetToken(token string) error
	ResetPassword(token, newPassword string) error
	ChangePassword(userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	companyRepo  repositories.CompanyRepository
	profileRepo  repositories.ProfileRepository
	resetRepo    repositories.PasswordResetRepository
	emailSender  email.Sender
	resetBaseURL string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	profileRepo repositories.ProfileRepository,
	resetRepo repositories.PasswordResetRepository,
	emailSender email.Sender,
	resetBaseURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		profileRepo:  profileRepo,
		resetRepo:    resetRepo,
		emailSender:  emailSender,
		resetBaseURL: resetBaseURL,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	// Administrators are seeded at startup, never self-registered.
	if req.Role != models.UserRoleCompany && req.Role != models.UserRoleJobseeker {
		return apperrors.ErrInvalidUserRole
	}

	if req.Role == models.UserRoleCompany && req.CompanyName == "" {
		return apperrors.ValidationError(map[string]string{
			"company_name": "company_name is required for company role",
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.DependencyError(err)
	}

	if err := s.createRoleProfile(user, req); err != nil {
		s.userRepo.Delete(user.ID)
		return apperrors.InternalError(err)
	}

	return nil
}

// createRoleProfile creates the role-specific record: a pending company for
// company accounts, an empty jobseeker profile otherwise.
func (s *AuthServiceImpl) createRoleProfile(user *models.User, req *dto.RegisterRequest) error {
	if user.Role == models.UserRoleCompany {
		company := &models.Company{
			UserID: user.ID,
			Name:   req.CompanyName,
			City:   req.City,
			Status: models.CompanyStatusPending,
		}
		if err := s.companyRepo.Create(company); err != nil {
			return err
		}
		// Send-and-forget: a mail failure must not roll back the company.
		go func() {
			if err := s.emailSender.SendCompanySubmitted(user.Email, company.Name); err != nil {
				logger.Warn("failed to send company submitted email", "error", err, "email", user.Email)
			}
		}()
		return nil
	}

	profile := &models.JobseekerProfile{
		UserID: user.ID,
		City:   req.City,
	}
	return s.profileRepo.Create(profile)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DependencyError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         buildUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Rotation: the presented token dies with this exchange.
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	newRefreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         buildUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	return s.userRepo.DeleteRefreshToken(refreshToken)
}

func (s *AuthServiceImpl) Me(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DependencyError(err)
	}
	return buildUserResponse(user), nil
}

// RequestPasswordReset issues a recovery token. An unknown email produces the
// same outward result as a known one so the endpoint cannot be used to probe
// which accounts exist.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.DependencyError(err)
	}

	rawToken, err := auth.GenerateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Only the hash is stored; any earlier token for this user is discarded.
	if err := s.resetRepo.Replace(user.ID, auth.HashToken(rawToken), time.Now().Add(resetTokenTTL)); err != nil {
		return apperrors.DependencyError(err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.resetBaseURL, rawToken)
	go func() {
		if err := s.emailSender.SendPasswordReset(user.Email, resetURL); err != nil {
			logger.Warn("failed to send password reset email", "error", err, "email", user.Email)
		}
	}()

	return nil
}

func (s *AuthServiceImpl) VerifyResetToken(token string) error {
	stored, err := s.resetRepo.FindByHash(auth.HashToken(token))
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenNotFound) {
			return apperrors.ErrResetTokenInvalid
		}
		return apperrors.DependencyError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		return apperrors.ErrResetTokenExpired
	}

	return nil
}

func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	tokenHash := auth.HashToken(token)

	stored, err := s.resetRepo.FindByHash(tokenHash)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenNotFound) {
			return apperrors.ErrResetTokenInvalid
		}
		return apperrors.DependencyError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		return apperrors.ErrResetTokenExpired
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	// Compare-and-clear: the delete is conditioned on the token row still
	// being present, so of two racing resets exactly one proceeds.
	if err := s.resetRepo.Consume(tokenHash); err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenNotFound) {
			return apperrors.ErrResetTokenInvalid
		}
		return apperrors.DependencyError(err)
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(stored.UserID, hashedPassword); err != nil {
		return apperrors.DependencyError(err)
	}

	// Existing sessions die with the old credential.
	s.userRepo.DeleteUserRefreshTokens(stored.UserID)

	user, err := s.userRepo.FindByID(stored.UserID)
	if err == nil {
		go func() {
			if err := s.emailSender.SendPasswordResetConfirmation(user.Email); err != nil {
				logger.Warn("failed to send reset confirmation email", "error", err, "email", user.Email)
			}
		}()
	}

	return nil
}

func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DependencyError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return s.userRepo.UpdatePassword(userID, hashedPassword)
}

// Helpers

func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	refreshToken, err := auth.GenerateSecureToken(32)
	if err != nil {
		return "", err
	}

	tokenModel := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(tokenModel); err != nil {
		return "", err
	}

	return refreshToken, nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Status:  user.Status,
		Company: user.Company,
		Profile: user.Profile,
	}
}
