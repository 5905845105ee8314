package models

type UserRole string
type UserStatus string
type CompanyStatus string
type JobStatus string
type ApplicationStatus string
type NotificationType string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleCompany   UserRole = "company"
	UserRoleJobseeker UserRole = "jobseeker"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	CompanyStatusPending  CompanyStatus = "pending"
	CompanyStatusApproved CompanyStatus = "approved"
	CompanyStatusRejected CompanyStatus = "rejected"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"

	NotificationTypeApplicationStatus NotificationType = "application_status"
	NotificationTypeCompanyStatus     NotificationType = "company_status"
	NotificationTypeNewApplication    NotificationType = "new_application"
)

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusInterview, ApplicationStatusHired, ApplicationStatusRejected,
		ApplicationStatusAccepted:
		return true
	}
	return false
}
