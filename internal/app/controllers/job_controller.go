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

// JobController handles the job board endpoints.
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// List handles GET /api/jobs
func (ctrl *JobController) List(c *gin.Context) {
	var req dto.JobFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid query parameters"))
		return
	}

	filter := repositories.JobFilter{
		Status:     req.Status,
		JobType:    req.JobType,
		CompanyID:  req.CompanyID,
		Branch:     req.Branch,
		MinPackage: req.MinPackage,
		Search:     req.Search,
	}

	// Non-admin callers only ever see open postings regardless of filter.
	identity, _ := middleware.GetIdentity(c)
	if identity == nil || identity.Kind != models.SubjectAdmin {
		filter.Status = string(models.JobOpen)
	}

	page, pageSize := helpers.ParsePaginationParams(c, 20)
	jobs, total, err := ctrl.jobService.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, dto.NewJobResponse(&jobs[i]))
	}

	c.JSON(http.StatusOK, dto.JobListResponse{
		Success:    true,
		Jobs:       out,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	})
}

// Get handles GET /api/jobs/:id
func (ctrl *JobController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	identity, _ := middleware.GetIdentity(c)
	job, standing, err := ctrl.jobService.Get(c.Request.Context(), id, identity)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	// Drafts and closed postings stay hidden from non-admin callers.
	if job.Status != models.JobOpen && (identity == nil || identity.Kind != models.SubjectAdmin) {
		middleware.HandleAPIError(c, apperrors.ErrJobNotFound)
		return
	}

	resp := dto.JobDetailResponse{
		Success: true,
		Job:     dto.NewJobResponse(job),
	}
	if standing != nil {
		resp.Eligible = &standing.Eligible
		resp.HasApplied = &standing.HasApplied
		resp.Reasons = standing.Reasons
	}

	c.JSON(http.StatusOK, resp)
}

// Apply handles POST /api/jobs/:id/apply
func (ctrl *JobController) Apply(c *gin.Context) {
	student, ok := middleware.GetStudent(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	applicationID, err := ctrl.jobService.Apply(c.Request.Context(), student, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ApplyResponse{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationID: applicationID,
	})
}
