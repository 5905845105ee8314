package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

// AdminHandler groups the moderation and reporting endpoints. Route-level
// middleware restricts all of them to administrators.
type AdminHandler struct {
	*BaseHandler
	userService    services.UserService
	companyService services.CompanyService
	jobService     services.JobService
	statsService   services.StatsService
}

func NewAdminHandler(
	base *BaseHandler,
	userService services.UserService,
	companyService services.CompanyService,
	jobService services.JobService,
	statsService services.StatsService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    base,
		userService:    userService,
		companyService: companyService,
		jobService:     jobService,
		statsService:   statsService,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	criteria := repositories.UserFilter{
		Role:     models.UserRole(c.Query("role")),
		Status:   models.UserStatus(c.Query("status")),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	users, total, err := h.userService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "total": total})
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type userStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required"`
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	var req userStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.SetStatus(c.Param("id"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) ListCompanies(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	criteria := repositories.CompanyFilter{
		Status:   models.CompanyStatus(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	response, err := h.companyService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) SetCompanyStatus(c *gin.Context) {
	var req dto.CompanyStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	company, err := h.companyService.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req dto.AdminCreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.AdminCreate(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	response, err := h.jobService.AdminList(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) UserStats(c *gin.Context) {
	stats, err := h.statsService.UserStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) JobStats(c *gin.Context) {
	stats, err := h.statsService.JobStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ApplicationStats(c *gin.Context) {
	stats, err := h.statsService.ApplicationStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) RegistrationStats(c *gin.Context) {
	days := ParseQueryInt(c, "days", 30)
	stats, err := h.statsService.RegistrationStats(days)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
