package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/app/repositories"
	"github.com/placementcell/portal/internal/app/services"
	"github.com/placementcell/portal/internal/middleware"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/helpers"
)

// AdminController handles the placement-cell management endpoints.
type AdminController struct {
	adminService   *services.AdminService
	companyService *services.CompanyService
	jobService     *services.JobService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, companyService *services.CompanyService, jobService *services.JobService) *AdminController {
	return &AdminController{
		adminService:   adminService,
		companyService: companyService,
		jobService:     jobService,
	}
}

// Dashboard handles GET /api/admin/dashboard
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	stats, recent, err := ctrl.adminService.Dashboard(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	recentOut := make([]dto.ApplicationResponse, 0, len(recent))
	for i := range recent {
		recentOut = append(recentOut, dto.NewApplicationResponse(&recent[i]))
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Success:            true,
		Stats:              *stats,
		RecentApplications: recentOut,
	})
}

// ListStudents handles GET /api/admin/students
func (ctrl *AdminController) ListStudents(c *gin.Context) {
	var req dto.StudentFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid query parameters"))
		return
	}

	filter := repositories.StudentFilter{
		Branch:   req.Branch,
		Class:    req.Class,
		Status:   req.Status,
		IsPlaced: req.IsPlaced,
		Search:   req.Search,
	}

	page, pageSize := helpers.ParsePaginationParams(c, 20)
	students, total, err := ctrl.adminService.ListStudents(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, dto.NewStudentResponse(&students[i]))
	}

	c.JSON(http.StatusOK, dto.StudentListResponse{
		Success:    true,
		Students:   out,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	})
}

// GetStudent handles GET /api/admin/students/:id
func (ctrl *AdminController) GetStudent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	student, err := ctrl.adminService.GetStudent(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudentProfileResponse{
		Success: true,
		Student: dto.NewStudentResponse(student),
	})
}

// SetStudentStatus handles PATCH /api/admin/students/:id/status
func (ctrl *AdminController) SetStudentStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=active inactive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Validation failed").WithErrors(dto.FieldErrorsFromBinding(err)))
		return
	}

	if err := ctrl.adminService.SetStudentStatus(c.Request.Context(), id, models.AccountStatus(req.Status)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Student status updated"))
}

// ListApplications handles GET /api/admin/applications
func (ctrl *AdminController) ListApplications(c *gin.Context) {
	var req dto.ApplicationFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid query parameters"))
		return
	}

	filter := repositories.ApplicationFilter{
		JobID:     req.JobID,
		StudentID: req.StudentID,
		Status:    req.Status,
	}

	page, pageSize := helpers.ParsePaginationParams(c, 20)
	apps, total, err := ctrl.adminService.ListApplications(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewApplicationResponse(&apps[i]))
	}

	c.JSON(http.StatusOK, dto.ApplicationListResponse{
		Success:      true,
		Applications: out,
		Pagination:   helpers.NewPaginationInfo(total, page, pageSize),
	})
}

// UpdateApplicationStatus handles PUT /api/admin/applications/:id/status
func (ctrl *AdminController) UpdateApplicationStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Validation failed").WithErrors(dto.FieldErrorsFromBinding(err)))
		return
	}

	app, err := ctrl.adminService.UpdateApplicationStatus(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Application status updated",
		"application": dto.NewApplicationResponse(app),
	})
}

// CreateCompany handles POST /api/admin/companies
func (ctrl *AdminController) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Validation failed").WithErrors(dto.FieldErrorsFromBinding(err)))
		return
	}

	company, err := ctrl.companyService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CompanyDetailResponse{
		Success: true,
		Company: dto.NewCompanyResponse(company),
	})
}

// UpdateCompany handles PUT /api/admin/companies/:id
func (ctrl *AdminController) UpdateCompany(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Validation failed").WithErrors(dto.FieldErrorsFromBinding(err)))
		return
	}

	company, err := ctrl.companyService.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompanyDetailResponse{
		Success: true,
		Company: dto.NewCompanyResponse(company),
	})
}

// CreateJob handles POST /api/admin/jobs
func (ctrl *AdminController) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Validation failed").WithErrors(dto.FieldErrorsFromBinding(err)))
		return
	}

	job, err := ctrl.jobService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"job":     dto.NewJobResponse(job),
	})
}

// CloseJob handles PATCH /api/admin/jobs/:id/close
func (ctrl *AdminController) CloseJob(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.jobService.Close(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Job closed"))
}
