package dto

import "jobboard_backend/internal/models"

type CompanyProfileRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty" binding:"omitempty,url"`
	City        string `json:"city,omitempty"`
}

type CompanyStatusRequest struct {
	Status models.CompanyStatus `json:"status" binding:"required" validate:"is-company-status"`
}

type CompanyListResponse struct {
	Companies []models.Company `json:"companies"`
	Total     int64            `json:"total"`
}
