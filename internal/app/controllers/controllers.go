package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/portal/internal/app/services"
	"github.com/placementcell/portal/internal/pkg/apperrors"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController         *AuthController
	StudentController      *StudentController
	JobController          *JobController
	CompanyController      *CompanyController
	AdminController        *AdminController
	NotificationController *NotificationController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:         NewAuthController(svcs.AuthService),
		StudentController:      NewStudentController(svcs.StudentService),
		JobController:          NewJobController(svcs.JobService),
		CompanyController:      NewCompanyController(svcs.CompanyService),
		AdminController:        NewAdminController(svcs.AdminService, svcs.CompanyService, svcs.JobService),
		NotificationController: NewNotificationController(svcs.NotificationService),
	}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("invalid " + name + " parameter")
	}
	return id, nil
}
