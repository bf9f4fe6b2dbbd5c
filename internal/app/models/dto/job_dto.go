package dto

import (
	"time"

	"github.com/placementcell/portal/internal/app/models"
)

// JobResponse is the wire representation of a job posting.
type JobResponse struct {
	ID                  int64    `json:"job_id"`
	CompanyID           int64    `json:"company_id"`
	CompanyName         string   `json:"company_name"`
	CompanyType         string   `json:"company_type,omitempty"`
	CompanyLogoPath     string   `json:"logo_path,omitempty"`
	Title               string   `json:"job_title"`
	Description         string   `json:"job_description"`
	JobType             string   `json:"job_type"`
	Location            string   `json:"location"`
	PackageOffered      float64  `json:"package_offered"`
	TotalPositions      int      `json:"total_positions"`
	MinCGPA             *float64 `json:"min_cgpa"`
	MaxBacklogs         *int     `json:"max_backlogs"`
	Min10thMarks        *float64 `json:"min_10th_marks"`
	Min12thMarks        *float64 `json:"min_12th_marks"`
	EligibleBranches    []string `json:"eligible_branches"`
	ApplicationDeadline *string  `json:"application_deadline"`
	Status              string   `json:"status"`
	ApplicationsCount   int      `json:"applications_count"`
	CreatedAt           string   `json:"created_at"`
}

// NewJobResponse maps a job model to its wire form.
func NewJobResponse(j *models.JobPosting) JobResponse {
	var deadline *string
	if j.ApplicationDeadline != nil {
		s := j.ApplicationDeadline.Format(time.RFC3339)
		deadline = &s
	}

	branches := j.EligibleBranches
	if branches == nil {
		branches = []string{}
	}

	return JobResponse{
		ID:                  j.ID,
		CompanyID:           j.CompanyID,
		CompanyName:         j.CompanyName,
		CompanyType:         j.CompanyType,
		CompanyLogoPath:     j.CompanyLogoPath,
		Title:               j.Title,
		Description:         j.Description,
		JobType:             j.Type,
		Location:            j.Location,
		PackageOffered:      j.PackageOffered,
		TotalPositions:      j.TotalPositions,
		MinCGPA:             j.MinCGPA,
		MaxBacklogs:         j.MaxBacklogs,
		Min10thMarks:        j.Min10thMarks,
		Min12thMarks:        j.Min12thMarks,
		EligibleBranches:    branches,
		ApplicationDeadline: deadline,
		Status:              string(j.Status),
		ApplicationsCount:   j.ApplicationsCount,
		CreatedAt:           j.CreatedAt.Format(time.RFC3339),
	}
}

// JobDetailResponse augments a job with the caller's standing, when known.
type JobDetailResponse struct {
	Success    bool        `json:"success"`
	Job        JobResponse `json:"job"`
	Eligible   *bool       `json:"eligible,omitempty"`
	HasApplied *bool       `json:"has_applied,omitempty"`
	Reasons    []string    `json:"ineligibility_reasons,omitempty"`
}

// JobListResponse is the paginated job listing.
type JobListResponse struct {
	Success    bool           `json:"success"`
	Jobs       []JobResponse  `json:"jobs"`
	Pagination PaginationInfo `json:"pagination"`
}

// JobFilterRequest captures job listing filters.
type JobFilterRequest struct {
	Status     string  `form:"status"`
	JobType    string  `form:"job_type"`
	CompanyID  int64   `form:"company_id"`
	Branch     string  `form:"branch"`
	MinPackage float64 `form:"min_package"`
	Search     string  `form:"search"`
	Page       int     `form:"page,default=1"`
	Limit      int     `form:"limit,default=20"`
}

// CreateJobRequest is the admin payload for posting a job.
type CreateJobRequest struct {
	CompanyID           int64    `json:"company_id" binding:"required"`
	Title               string   `json:"job_title" binding:"required,min=2,max=200"`
	Description         string   `json:"job_description"`
	JobType             string   `json:"job_type" binding:"required,oneof=full_time internship"`
	Location            string   `json:"location"`
	PackageOffered      float64  `json:"package_offered" binding:"gte=0"`
	TotalPositions      int      `json:"total_positions" binding:"omitempty,gte=1"`
	MinCGPA             *float64 `json:"min_cgpa,omitempty" binding:"omitempty,gte=0,lte=10"`
	MaxBacklogs         *int     `json:"max_backlogs,omitempty" binding:"omitempty,gte=0"`
	Min10thMarks        *float64 `json:"min_10th_marks,omitempty" binding:"omitempty,gte=0,lte=100"`
	Min12thMarks        *float64 `json:"min_12th_marks,omitempty" binding:"omitempty,gte=0,lte=100"`
	EligibleBranches    []string `json:"eligible_branches,omitempty"`
	ApplicationDeadline *string  `json:"application_deadline,omitempty"`
	Status              string   `json:"status,omitempty" binding:"omitempty,oneof=open closed draft"`
}

// ApplyResponse confirms a submitted application.
type ApplyResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID int64  `json:"application_id"`
}
