package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/portal/internal/app/controllers"
	"github.com/placementcell/portal/internal/middleware"
)

// Setup registers every API route with its guards.
func Setup(router *gin.Engine, ctrls *controllers.Controllers, authMw *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrls.AuthController.Register)
		auth.POST("/login", ctrls.AuthController.Login)
		auth.GET("/verify", authMw.RequireAuth(), ctrls.AuthController.Verify)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", authMw.OptionalAuth(), ctrls.JobController.List)
		jobs.GET("/:id", authMw.OptionalAuth(), ctrls.JobController.Get)
		jobs.POST("/:id/apply", authMw.RequireAuth(), middleware.RequireRoles("student"), ctrls.JobController.Apply)
	}

	companies := api.Group("/companies")
	{
		companies.GET("", ctrls.CompanyController.List)
		companies.GET("/:id", ctrls.CompanyController.Get)
	}

	students := api.Group("/students", authMw.RequireAuth(), middleware.RequireRoles("student"))
	{
		students.GET("/profile", ctrls.StudentController.GetProfile)
		students.PUT("/profile", ctrls.StudentController.UpdateProfile)
		students.GET("/applications", ctrls.StudentController.ListApplications)
	}

	notifications := api.Group("/notifications", authMw.RequireAuth(), middleware.RequireRoles("student"))
	{
		notifications.GET("", ctrls.NotificationController.List)
		notifications.PUT("/:id/read", ctrls.NotificationController.MarkRead)
	}

	admin := api.Group("/admin", authMw.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("/dashboard", ctrls.AdminController.Dashboard)
		admin.GET("/students", ctrls.AdminController.ListStudents)
		admin.GET("/students/:id", ctrls.AdminController.GetStudent)
		admin.PATCH("/students/:id/status", ctrls.AdminController.SetStudentStatus)
		admin.GET("/applications", ctrls.AdminController.ListApplications)
		admin.PUT("/applications/:id/status", ctrls.AdminController.UpdateApplicationStatus)
		admin.POST("/companies", ctrls.AdminController.CreateCompany)
		admin.PUT("/companies/:id", ctrls.AdminController.UpdateCompany)
		admin.POST("/jobs", ctrls.AdminController.CreateJob)
		admin.PATCH("/jobs/:id/close", ctrls.AdminController.CloseJob)
	}
}
