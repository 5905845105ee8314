package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func TestUpdateOwnResetsApproval(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	createCompany(t, env.db, owner, models.CompanyStatusApproved)

	updated, err := env.svc.CompanyService.UpdateOwn(owner.ID, &dto.CompanyProfileRequest{
		Name:        "Acme Rebranded",
		Description: "We make everything",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Rebranded", updated.Name)
	assert.Equal(t, models.CompanyStatusPending, updated.Status)

	require.Eventually(t, func() bool {
		return len(env.mail.Submissions()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSetCompanyStatusNotifiesOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusPending)

	updated, err := env.svc.CompanyService.SetStatus(company.ID, models.CompanyStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.CompanyStatusApproved, updated.Status)

	var notifications []models.Notification
	require.NoError(t, env.db.Where("user_id = ?", owner.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeCompanyStatus, notifications[0].Type)
	assert.Equal(t, company.ID, notifications[0].RelatedID)
}

func TestGetOwnMissingCompany(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	_, err := env.svc.CompanyService.GetOwn(user.ID)
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestListCompaniesByStatus(t *testing.T) {
	env := newTestEnv(t)
	ownerA := createUser(t, env.db, "OwnerA", "a@acme.test", models.UserRoleCompany)
	createCompany(t, env.db, ownerA, models.CompanyStatusPending)
	ownerB := createUser(t, env.db, "OwnerB", "b@globex.test", models.UserRoleCompany)
	createCompany(t, env.db, ownerB, models.CompanyStatusApproved)

	resp, err := env.svc.CompanyService.List(repositories.CompanyFilter{Status: models.CompanyStatusPending})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Total)
	require.Len(t, resp.Companies, 1)
	assert.Equal(t, models.CompanyStatusPending, resp.Companies[0].Status)
}
