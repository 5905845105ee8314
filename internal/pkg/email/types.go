package email

// Sender delivers the transactional messages the job board produces. All
// sends are best-effort from the caller's point of view: delivery failure
// never rolls back the write that triggered the mail.
type Sender interface {
	// SendPasswordReset mails the recovery URL carrying the raw reset token.
	SendPasswordReset(to, resetURL string) error

	// SendPasswordResetConfirmation confirms a completed reset. No secrets.
	SendPasswordResetConfirmation(to string) error

	// SendCompanySubmitted acknowledges a newly submitted company profile.
	SendCompanySubmitted(to, companyName string) error
}

// TemplateData is what the message templates render with.
type TemplateData struct {
	Subject     string
	UserEmail   string
	ActionURL   string
	ActionText  string
	CompanyName string
	Message     string
}
