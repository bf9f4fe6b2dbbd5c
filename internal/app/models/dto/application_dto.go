package dto

import (
	"time"

	"github.com/placementcell/portal/internal/app/models"
)

// ApplicationResponse is the wire representation of a job application.
type ApplicationResponse struct {
	ID              int64    `json:"application_id"`
	JobID           int64    `json:"job_id"`
	JobTitle        string   `json:"job_title,omitempty"`
	JobType         string   `json:"job_type,omitempty"`
	PackageOffered  float64  `json:"package_offered,omitempty"`
	Location        string   `json:"location,omitempty"`
	CompanyName     string   `json:"company_name,omitempty"`
	StudentID       int64    `json:"student_id"`
	StudentName     string   `json:"student_name,omitempty"`
	StudentRollNo   string   `json:"roll_no,omitempty"`
	Status          string   `json:"status"`
	Feedback        *string  `json:"feedback"`
	InterviewScore  *float64 `json:"interview_score"`
	ApplicationDate string   `json:"application_date"`
}

// NewApplicationResponse maps an application model to its wire form.
func NewApplicationResponse(a *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		JobID:           a.JobID,
		JobTitle:        a.JobTitle,
		JobType:         a.JobType,
		PackageOffered:  a.PackageOffered,
		Location:        a.Location,
		CompanyName:     a.CompanyName,
		StudentID:       a.StudentID,
		StudentName:     a.StudentName,
		StudentRollNo:   a.StudentRollNo,
		Status:          string(a.Status),
		Feedback:        a.Feedback,
		InterviewScore:  a.InterviewScore,
		ApplicationDate: a.ApplicationDate.Format(time.RFC3339),
	}
}

// ApplicationListResponse is the paginated application listing.
type ApplicationListResponse struct {
	Success      bool                  `json:"success"`
	Applications []ApplicationResponse `json:"applications"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// StudentApplicationsResponse is a student's own application history.
type StudentApplicationsResponse struct {
	Success      bool                  `json:"success"`
	Applications []ApplicationResponse `json:"applications"`
}

// ApplicationFilterRequest captures admin application-list filters.
type ApplicationFilterRequest struct {
	JobID     int64  `form:"job_id"`
	StudentID int64  `form:"student_id"`
	Status    string `form:"status"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
}

// UpdateApplicationStatusRequest is the admin payload for moving an
// application through its lifecycle.
type UpdateApplicationStatusRequest struct {
	Status         string   `json:"status" binding:"required,oneof=applied shortlisted rejected selected waitlisted"`
	Feedback       *string  `json:"feedback,omitempty"`
	InterviewScore *float64 `json:"interview_score,omitempty" binding:"omitempty,gte=0,lte=100"`
}
