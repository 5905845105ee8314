package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResetTokenNotFound = errors.New("reset token not found")

type PasswordResetRepository interface {
	// Replace discards any previous tokens for the user and stores the new
	// hash, keeping at most one valid token per user.
	Replace(userID, tokenHash string, expiresAt time.Time) error
	FindByHash(tokenHash string) (*models.PasswordResetToken, error)
	// Consume deletes the token row conditioned on the hash still being
	// present. Returns ErrResetTokenNotFound when another caller consumed it
	// first, which is how the compare-and-clear race is decided.
	Consume(tokenHash string) error
	DeleteExpired() error
}

type PasswordResetRepositoryImpl struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &PasswordResetRepositoryImpl{db: db}
}

func (r *PasswordResetRepositoryImpl) Replace(userID, tokenHash string, expiresAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.PasswordResetToken{}).Error; err != nil {
			return err
		}
		token := &models.PasswordResetToken{
			UserID:    userID,
			TokenHash: tokenHash,
			ExpiresAt: expiresAt,
		}
		return tx.Create(token).Error
	})
}

func (r *PasswordResetRepositoryImpl) FindByHash(tokenHash string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	err := r.db.Where("token_hash = ?", tokenHash).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *PasswordResetRepositoryImpl) Consume(tokenHash string) error {
	result := r.db.Where("token_hash = ?", tokenHash).Delete(&models.PasswordResetToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResetTokenNotFound
	}
	return nil
}

func (r *PasswordResetRepositoryImpl) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.PasswordResetToken{}).Error
}
