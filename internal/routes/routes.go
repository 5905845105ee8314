package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
)

// RegisterRoutes registers all HTTP routes under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/refresh", h.AuthHandler.RefreshToken)
		auth.POST("/logout", h.AuthHandler.Logout)
		auth.POST("/request-password-reset", h.AuthHandler.RequestPasswordReset)
		auth.GET("/verify-reset-token", h.AuthHandler.VerifyResetToken)
		auth.POST("/reset-password", h.AuthHandler.ResetPassword)

		authed := auth.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/me", h.AuthHandler.Me)
			authed.POST("/change-password", h.AuthHandler.ChangePassword)
		}
	}

	// Public board
	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.JobHandler.List)
		jobs.GET("/:id", h.JobHandler.GetByID)

		jobs.POST("/:id/apply",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(models.UserRoleJobseeker),
			h.ApplicationHandler.Apply,
		)
	}

	companies := api.Group("/companies")
	{
		companies.GET("", h.CompanyHandler.List)
		companies.GET("/:id", h.CompanyHandler.GetByID)
	}

	// Company console
	company := api.Group("/company")
	company.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCompany))
	{
		company.GET("/profile", h.CompanyHandler.GetOwn)
		company.PUT("/profile", h.CompanyHandler.UpdateOwn)
		company.GET("/jobs", h.JobHandler.ListOwn)
		company.POST("/jobs", h.JobHandler.Create)
		company.PUT("/jobs/:id", h.JobHandler.Update)
		company.DELETE("/jobs/:id", h.JobHandler.Delete)
		company.GET("/applications", h.ApplicationHandler.ListForCompany)
		company.PATCH("/applications/:id/status", h.ApplicationHandler.UpdateStatus)
	}

	// Jobseeker area
	me := api.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/applications",
			middleware.RequireRoles(models.UserRoleJobseeker),
			h.ApplicationHandler.ListOwn,
		)
		me.GET("/profile",
			middleware.RequireRoles(models.UserRoleJobseeker),
			h.ProfileHandler.Get,
		)
		me.PUT("/profile",
			middleware.RequireRoles(models.UserRoleJobseeker),
			h.ProfileHandler.Update,
		)
		me.GET("/notifications", h.NotificationHandler.List)
		me.GET("/notifications/unread-count", h.NotificationHandler.UnreadCount)
		me.PATCH("/notifications/:id/read", h.NotificationHandler.MarkRead)
	}

	applications := api.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.GET("/:id", h.ApplicationHandler.GetByID)
	}

	// Admin console
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.AdminHandler.ListUsers)
		admin.GET("/users/:id", h.AdminHandler.GetUser)
		admin.PATCH("/users/:id/status", h.AdminHandler.SetUserStatus)
		admin.DELETE("/users/:id", h.AdminHandler.DeleteUser)
		admin.GET("/companies", h.AdminHandler.ListCompanies)
		admin.PATCH("/companies/:id/status", h.AdminHandler.SetCompanyStatus)
		admin.GET("/jobs", h.AdminHandler.ListJobs)
		admin.POST("/jobs", h.AdminHandler.CreateJob)
		admin.GET("/stats/users", h.AdminHandler.UserStats)
		admin.GET("/stats/jobs", h.AdminHandler.JobStats)
		admin.GET("/stats/applications", h.AdminHandler.ApplicationStats)
		admin.GET("/stats/registrations", h.AdminHandler.RegistrationStats)
	}
}
