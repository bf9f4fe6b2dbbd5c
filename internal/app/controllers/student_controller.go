package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/app/services"
	"github.com/placementcell/portal/internal/middleware"
	"github.com/placementcell/portal/internal/pkg/apperrors"
)

// StudentController handles the student's own profile and history.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetProfile handles GET /api/students/profile
func (ctrl *StudentController) GetProfile(c *gin.Context) {
	caller, ok := middleware.GetStudent(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	student, err := ctrl.studentService.GetProfile(c.Request.Context(), caller.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudentProfileResponse{
		Success: true,
		Student: dto.NewStudentResponse(student),
	})
}

// UpdateProfile handles PUT /api/students/profile
func (ctrl *StudentController) UpdateProfile(c *gin.Context) {
	caller, ok := middleware.GetStudent(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	var req dto.UpdateStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Validation failed").WithErrors(dto.FieldErrorsFromBinding(err)))
		return
	}

	student, err := ctrl.studentService.UpdateProfile(c.Request.Context(), caller.ID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudentProfileResponse{
		Success: true,
		Student: dto.NewStudentResponse(student),
	})
}

// ListApplications handles GET /api/students/applications
func (ctrl *StudentController) ListApplications(c *gin.Context) {
	caller, ok := middleware.GetStudent(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	apps, err := ctrl.studentService.ListApplications(c.Request.Context(), caller.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewApplicationResponse(&apps[i]))
	}

	c.JSON(http.StatusOK, dto.StudentApplicationsResponse{
		Success:      true,
		Applications: out,
	})
}
