package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func TestApplyAndListOwn(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusApproved)
	job := createJob(t, env.db, company, "Backend Engineer")
	seeker := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	application, err := env.svc.ApplicationService.Apply(sessionFor(seeker), job.ID, &dto.ApplyRequest{
		CoverLetter: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)

	applications, err := env.svc.ApplicationService.ListOwn(sessionFor(seeker))
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, job.ID, applications[0].JobID)
}

func TestApplyTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusApproved)
	job := createJob(t, env.db, company, "Backend Engineer")
	seeker := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	_, err := env.svc.ApplicationService.Apply(sessionFor(seeker), job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = env.svc.ApplicationService.Apply(sessionFor(seeker), job.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestApplyToClosedJob(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusApproved)
	job := createJob(t, env.db, company, "Backend Engineer")
	require.NoError(t, env.repos.Jobs.UpdateStatus(job.ID, models.JobStatusClosed))
	seeker := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	_, err := env.svc.ApplicationService.Apply(sessionFor(seeker), job.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrJobNotActive)
}

func TestApplyRequiresJobseekerRole(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusApproved)
	job := createJob(t, env.db, company, "Backend Engineer")

	_, err := env.svc.ApplicationService.Apply(sessionFor(owner), job.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

// Two companies with overlapping applicants: each sees exactly the
// applications to its own jobs, never the other's.
func TestListForCompanyScoping(t *testing.T) {
	env := newTestEnv(t)

	ownerA := createUser(t, env.db, "OwnerA", "a@acme.test", models.UserRoleCompany)
	companyA := createCompany(t, env.db, ownerA, models.CompanyStatusApproved)
	jobA := createJob(t, env.db, companyA, "Job A")

	ownerB := createUser(t, env.db, "OwnerB", "b@globex.test", models.UserRoleCompany)
	companyB := createCompany(t, env.db, ownerB, models.CompanyStatusApproved)
	jobB := createJob(t, env.db, companyB, "Job B")

	seeker := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)
	_, err := env.svc.ApplicationService.Apply(sessionFor(seeker), jobA.ID, &dto.ApplyRequest{})
	require.NoError(t, err)
	_, err = env.svc.ApplicationService.Apply(sessionFor(seeker), jobB.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	respA, err := env.svc.ApplicationService.ListForCompany(sessionFor(ownerA), &dto.ApplicationListQuery{})
	require.NoError(t, err)
	require.Len(t, respA.Applications, 1)
	assert.Equal(t, jobA.ID, respA.Applications[0].JobID)
	assert.Equal(t, "Alice", respA.Applications[0].ApplicantName)

	respB, err := env.svc.ApplicationService.ListForCompany(sessionFor(ownerB), &dto.ApplicationListQuery{})
	require.NoError(t, err)
	require.Len(t, respB.Applications, 1)
	assert.Equal(t, jobB.ID, respB.Applications[0].JobID)
}

func TestListForCompanyForeignJobFilterRejected(t *testing.T) {
	env := newTestEnv(t)

	ownerA := createUser(t, env.db, "OwnerA", "a@acme.test", models.UserRoleCompany)
	createCompany(t, env.db, ownerA, models.CompanyStatusApproved)

	ownerB := createUser(t, env.db, "OwnerB", "b@globex.test", models.UserRoleCompany)
	companyB := createCompany(t, env.db, ownerB, models.CompanyStatusApproved)
	jobB := createJob(t, env.db, companyB, "Job B")

	// Company A filters by a job id belonging to company B.
	_, err := env.svc.ApplicationService.ListForCompany(sessionFor(ownerA), &dto.ApplicationListQuery{
		JobID: jobB.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestListForCompanyRequiresApproval(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	createCompany(t, env.db, owner, models.CompanyStatusPending)

	_, err := env.svc.ApplicationService.ListForCompany(sessionFor(owner), &dto.ApplicationListQuery{})
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotApproved)
}

func TestUpdateStatusAppendsHistory(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusApproved)
	job := createJob(t, env.db, company, "Backend Engineer")
	seeker := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)

	application, err := env.svc.ApplicationService.Apply(sessionFor(seeker), job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	updated, err := env.svc.ApplicationService.UpdateStatus(sessionFor(owner), application.ID, models.ApplicationStatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusShortlisted, updated.Status)

	updated, err = env.svc.ApplicationService.UpdateStatus(sessionFor(owner), application.ID, models.ApplicationStatusHired)
	require.NoError(t, err)

	transitions, err := updated.Transitions()
	require.NoError(t, err)
	require.Len(t, transitions, 2)
	assert.Equal(t, models.ApplicationStatusPending, transitions[0].From)
	assert.Equal(t, models.ApplicationStatusShortlisted, transitions[0].To)
	assert.Equal(t, models.ApplicationStatusShortlisted, transitions[1].From)
	assert.Equal(t, models.ApplicationStatusHired, transitions[1].To)
	assert.Equal(t, owner.ID, transitions[1].ChangedBy)

	// The applicant got an in-app notification per change.
	var notifications int64
	env.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", seeker.ID, models.NotificationTypeApplicationStatus).
		Count(&notifications)
	assert.EqualValues(t, 2, notifications)
}

func TestUpdateStatusForeignApplicationRejected(t *testing.T) {
	env := newTestEnv(t)

	ownerA := createUser(t, env.db, "OwnerA", "a@acme.test", models.UserRoleCompany)
	companyA := createCompany(t, env.db, ownerA, models.CompanyStatusApproved)
	jobA := createJob(t, env.db, companyA, "Job A")

	ownerB := createUser(t, env.db, "OwnerB", "b@globex.test", models.UserRoleCompany)
	createCompany(t, env.db, ownerB, models.CompanyStatusApproved)

	seeker := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)
	application, err := env.svc.ApplicationService.Apply(sessionFor(seeker), jobA.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = env.svc.ApplicationService.UpdateStatus(sessionFor(ownerB), application.ID, models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	createCompany(t, env.db, owner, models.CompanyStatusApproved)

	_, err := env.svc.ApplicationService.UpdateStatus(sessionFor(owner), "some-id", models.ApplicationStatus("bogus"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetApplicationVisibility(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env.db, "Owner", "owner@acme.test", models.UserRoleCompany)
	company := createCompany(t, env.db, owner, models.CompanyStatusApproved)
	job := createJob(t, env.db, company, "Backend Engineer")
	seeker := createUser(t, env.db, "Alice", "alice@example.com", models.UserRoleJobseeker)
	other := createUser(t, env.db, "Eve", "eve@example.com", models.UserRoleJobseeker)

	application, err := env.svc.ApplicationService.Apply(sessionFor(seeker), job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = env.svc.ApplicationService.GetByID(sessionFor(seeker), application.ID)
	assert.NoError(t, err)

	_, err = env.svc.ApplicationService.GetByID(sessionFor(owner), application.ID)
	assert.NoError(t, err)

	_, err = env.svc.ApplicationService.GetByID(sessionFor(other), application.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
