package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/app/repositories"
	"github.com/placementcell/portal/internal/app/services"
	"github.com/placementcell/portal/internal/middleware"
	"github.com/placementcell/portal/internal/pkg/helpers"
)

// CompanyController handles the company directory endpoints.
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// List handles GET /api/companies
func (ctrl *CompanyController) List(c *gin.Context) {
	filter := repositories.CompanyFilter{
		Industry: c.Query("industry"),
		Search:   c.Query("search"),
	}

	page, pageSize := helpers.ParsePaginationParams(c, 20)
	companies, total, err := ctrl.companyService.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, dto.NewCompanyResponse(&companies[i]))
	}

	c.JSON(http.StatusOK, dto.CompanyListResponse{
		Success:    true,
		Companies:  out,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	})
}

// Get handles GET /api/companies/:id
func (ctrl *CompanyController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	company, jobs, err := ctrl.companyService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	jobsOut := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		jobsOut = append(jobsOut, dto.NewJobResponse(&jobs[i]))
	}

	c.JSON(http.StatusOK, dto.CompanyDetailResponse{
		Success: true,
		Company: dto.NewCompanyResponse(company),
		Jobs:    jobsOut,
	})
}
