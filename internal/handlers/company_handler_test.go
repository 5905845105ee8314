package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/pkg/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, auth.InitJWT("test-secret", 60))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Company{}))

	repos := repositories.NewContainer(db)
	svc := services.NewServiceContainer(repos, email.NoopSender{}, "http://localhost:3000")
	appHandlers := handlers.NewAppHandlers(svc, validator.New())

	router := gin.New()
	routes.RegisterRoutes(router, appHandlers)
	return router, db
}

func seedCompany(t *testing.T, db *gorm.DB, name, emailAddr string, status models.CompanyStatus) *models.Company {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         models.UserRoleCompany,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)

	company := &models.Company{
		UserID: user.ID,
		Name:   name,
		Status: status,
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func TestPublicCompanyListShowsApprovedOnly(t *testing.T) {
	router, db := setupRouter(t)
	approved := seedCompany(t, db, "Acme", "owner@acme.test", models.CompanyStatusApproved)
	seedCompany(t, db, "Pending Co", "owner@pending.test", models.CompanyStatusPending)
	seedCompany(t, db, "Rejected Co", "owner@rejected.test", models.CompanyStatusRejected)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp dto.CompanyListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp.Companies, 1)
	assert.Equal(t, approved.ID, resp.Companies[0].ID)
	assert.Equal(t, int64(1), resp.Total)
}
