package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func TestCreateJobRequiresApprovedCompany(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusPending)

	_, err := env.svc.JobService.Create(sessionFor(owner), &dto.CreateJobRequest{Title: "Backend Engineer"})
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotApproved)

	require.NoError(t, env.repos.Companies.UpdateStatus(company.ID, models.CompanyStatusApproved))

	job, err := env.svc.JobService.Create(sessionFor(owner), &dto.CreateJobRequest{Title: "Backend Engineer"})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, job.Status)
	assert.Equal(t, company.ID, job.CompanyID)
}

func TestUpdateJobOwnership(t *testing.T) {
	env := newTestEnv(t)
	ownerA := createUser(t, env.db, "OwnerA", "a@acme.test", models.UserRoleCompany)
	companyA := createCompany(t, env.db, ownerA, models.CompanyStatusApproved)
	job := createJob(t, env.db, companyA, "Backend Engineer")

	ownerB := createUser(t, env.db, "OwnerB", "b@globex.test", models.UserRoleCompany)
	createCompany(t, env.db, ownerB, models.CompanyStatusApproved)

	newTitle := "Senior Backend Engineer"
	_, err := env.svc.JobService.Update(sessionFor(ownerB), job.ID, &dto.UpdateJobRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	updated, err := env.svc.JobService.Update(sessionFor(ownerA), job.ID, &dto.UpdateJobRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
}

func TestCloseJob(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusApproved)
	job := createJob(t, env.db, company, "Backend Engineer")

	closed := models.JobStatusClosed
	updated, err := env.svc.JobService.Update(sessionFor(owner), job.ID, &dto.UpdateJobRequest{Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, updated.Status)
}

func TestPublicListShowsActiveOnly(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusApproved)
	active := createJob(t, env.db, company, "Open role")
	closedJob := createJob(t, env.db, company, "Closed role")
	require.NoError(t, env.repos.Jobs.UpdateStatus(closedJob.ID, models.JobStatusClosed))

	resp, err := env.svc.JobService.List(&dto.JobListQuery{})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, active.ID, resp.Jobs[0].ID)

	// An explicit status filter must not let anonymous callers browse
	// closed jobs.
	resp, err = env.svc.JobService.List(&dto.JobListQuery{Status: string(models.JobStatusClosed)})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, active.ID, resp.Jobs[0].ID)
}

func TestListOwnWorksWhilePending(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusPending)
	createJob(t, env.db, company, "Backend Engineer")

	jobs, err := env.svc.JobService.ListOwn(sessionFor(owner))
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestAdminCreateBypassesApproval(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusPending)

	job, err := env.svc.JobService.AdminCreate(&dto.AdminCreateJobRequest{
		CompanyID: company.ID,
		Title:     "Forced posting",
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, job.Status)

	_, err = env.svc.JobService.AdminCreate(&dto.AdminCreateJobRequest{
		CompanyID: "no-such-company",
		Title:     "Nope",
	})
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestDeleteJob(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusApproved)
	job := createJob(t, env.db, company, "Backend Engineer")

	require.NoError(t, env.svc.JobService.Delete(sessionFor(owner), job.ID))

	_, err := env.svc.JobService.GetByID(job.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}
