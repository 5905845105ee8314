package repositories

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobboard_backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
	))
	return db
}

func TestReplaceKeepsSingleToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewPasswordResetRepository(db)

	expiry := time.Now().Add(time.Hour)
	require.NoError(t, repo.Replace("user-1", "hash-1", expiry))
	require.NoError(t, repo.Replace("user-1", "hash-2", expiry))

	var count int64
	db.Model(&models.PasswordResetToken{}).Where("user_id = ?", "user-1").Count(&count)
	assert.EqualValues(t, 1, count)

	_, err := repo.FindByHash("hash-1")
	assert.ErrorIs(t, err, ErrResetTokenNotFound)

	stored, err := repo.FindByHash("hash-2")
	require.NoError(t, err)
	assert.Equal(t, "user-1", stored.UserID)
}

func TestConsumeIsSingleWinner(t *testing.T) {
	db := newTestDB(t)
	repo := NewPasswordResetRepository(db)

	require.NoError(t, repo.Replace("user-1", "hash-1", time.Now().Add(time.Hour)))

	// First consume wins, second observes the cleared row.
	require.NoError(t, repo.Consume("hash-1"))
	assert.ErrorIs(t, repo.Consume("hash-1"), ErrResetTokenNotFound)
}

func TestDeleteExpired(t *testing.T) {
	db := newTestDB(t)
	repo := NewPasswordResetRepository(db)

	require.NoError(t, repo.Replace("user-1", "hash-live", time.Now().Add(time.Hour)))
	require.NoError(t, repo.Replace("user-2", "hash-stale", time.Now().Add(-time.Hour)))

	require.NoError(t, repo.DeleteExpired())

	_, err := repo.FindByHash("hash-live")
	assert.NoError(t, err)
	_, err = repo.FindByHash("hash-stale")
	assert.ErrorIs(t, err, ErrResetTokenNotFound)
}

func TestApplicationUniqueIndex(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)

	first := &models.Application{JobID: "job-1", UserID: "user-1"}
	require.NoError(t, repo.Create(first))

	dup := &models.Application{JobID: "job-1", UserID: "user-1"}
	assert.ErrorIs(t, repo.Create(dup), ErrDuplicateApplication)

	// Same user, different job is fine.
	other := &models.Application{JobID: "job-2", UserID: "user-1"}
	assert.NoError(t, repo.Create(other))
}
