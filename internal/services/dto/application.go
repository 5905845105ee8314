package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter,omitempty"`
}

type ApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required" validate:"is-application-status"`
}

type ApplicationListQuery struct {
	Status   string `form:"status" validate:"omitempty,is-application-status"`
	JobID    string `form:"job_id"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ApplicationView is the denormalized row returned to companies: job and
// applicant display fields only, nothing outside the caller's scope.
type ApplicationView struct {
	ID             string                   `json:"id"`
	Status         models.ApplicationStatus `json:"status"`
	CoverLetter    string                   `json:"cover_letter,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	JobID          string                   `json:"job_id"`
	JobTitle       string                   `json:"job_title"`
	JobLocation    string                   `json:"job_location"`
	ApplicantName  string                   `json:"applicant_name"`
	ApplicantEmail string                   `json:"applicant_email"`
}

type ApplicationListResponse struct {
	Applications []ApplicationView `json:"applications"`
	Total        int64             `json:"total"`
}
