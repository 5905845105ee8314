package dto

import "jobboard_backend/internal/models"

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	ApplyMethod string `json:"apply_method,omitempty"`
}

// AdminCreateJobRequest is the force-create path: the administrator names
// the target company and may pin any status.
type AdminCreateJobRequest struct {
	CompanyID   string           `json:"company_id" binding:"required"`
	Title       string           `json:"title" binding:"required"`
	Location    string           `json:"location,omitempty"`
	Description string           `json:"description,omitempty"`
	ApplyMethod string           `json:"apply_method,omitempty"`
	Status      models.JobStatus `json:"status,omitempty" validate:"is-job-status"`
}

type UpdateJobRequest struct {
	Title       *string           `json:"title,omitempty"`
	Location    *string           `json:"location,omitempty"`
	Description *string           `json:"description,omitempty"`
	ApplyMethod *string           `json:"apply_method,omitempty"`
	Status      *models.JobStatus `json:"status,omitempty" validate:"omitempty,is-job-status"`
}

type JobListQuery struct {
	Status   string `form:"status" validate:"omitempty,is-job-status"`
	City     string `form:"city"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type JobListResponse struct {
	Jobs  []models.Job `json:"jobs"`
	Total int64        `json:"total"`
}
