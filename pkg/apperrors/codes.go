package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeResetTokenInvalid  ErrorCode = "RESET_TOKEN_INVALID"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeCompanyNotFound     ErrorCode = "COMPANY_NOT_FOUND"
	CodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeProfileNotFound     ErrorCode = "PROFILE_NOT_FOUND"
	CodeNotFound            ErrorCode = "NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists  ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeAlreadyApplied      ErrorCode = "ALREADY_APPLIED"
	CodeCompanyNotApproved  ErrorCode = "COMPANY_NOT_APPROVED"
	CodeCompanyExists       ErrorCode = "COMPANY_ALREADY_EXISTS"
	CodeJobNotActive        ErrorCode = "JOB_NOT_ACTIVE"
	CodeUserSuspended       ErrorCode = "USER_SUSPENDED"
	CodeInvalidStatusChange ErrorCode = "INVALID_STATUS_CHANGE"

	// System
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"
	CodeDependencyError ErrorCode = "DEPENDENCY_ERROR"
)
