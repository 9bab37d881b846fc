package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/campushire/internal/app/controllers"
	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/profile", authController.Me)

		// Student routes
		student := authenticated.Group("/student")
		student.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			student.PUT("/profile", profileController.UpdateStudentProfile)
			student.GET("/jobs", jobController.EligibleJobs)
			student.GET("/applications", applicationController.StudentApplications)
			student.POST("/applications", applicationController.Apply)
		}

		// Company routes
		company := authenticated.Group("/company")
		company.Use(authMiddleware.RoleRequired(models.RoleCompany))
		{
			company.PUT("/profile", profileController.UpdateCompanyProfile)
			company.POST("/jobs", jobController.PostJob)
			company.GET("/jobs", jobController.CompanyJobs)
			company.GET("/applications", applicationController.CompanyApplications)
			company.PUT("/applications/:id/status", applicationController.UpdateStatus)
			company.GET("/students", statsController.Students)
			company.GET("/stats", statsController.CompanyStats)
		}

		// Placement cell routes
		tnp := authenticated.Group("/tnp")
		tnp.Use(authMiddleware.RoleRequired(models.RoleTnp))
		{
			tnp.PUT("/profile", profileController.UpdateOfficerProfile)
			tnp.GET("/students", statsController.Students)
			tnp.GET("/companies", statsController.Companies)
			tnp.GET("/jobs", jobController.AllJobs)
			tnp.GET("/placements", statsController.Placements)
			tnp.GET("/overview", statsController.Overview)
		}
	}
}
