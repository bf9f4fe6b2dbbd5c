package dto

import (
	"time"

	"github.com/placementcell/portal/internal/app/models"
)

// DashboardStats aggregates placement activity counters. Student and company
// totals count active accounts only.
type DashboardStats struct {
	TotalStudents       int64   `json:"total_students"`
	PlacedStudents      int64   `json:"placed_students"`
	PlacementPercentage float64 `json:"placement_percentage"`
	TotalCompanies      int64   `json:"total_companies"`
	OpenJobs            int64   `json:"open_jobs"`
	TotalApplications   int64   `json:"total_applications"`
	PendingReviews      int64   `json:"pending_reviews"`
}

// DashboardResponse is the admin dashboard payload.
type DashboardResponse struct {
	Success            bool                  `json:"success"`
	Stats              DashboardStats        `json:"stats"`
	RecentApplications []ApplicationResponse `json:"recent_applications"`
}

// AdminUserResponse is the wire representation of an admin account.
type AdminUserResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
	LastLogin *string `json:"last_login"`
}

// NewAdminUserResponse maps an admin model to its wire form.
func NewAdminUserResponse(a *models.AdminUser) AdminUserResponse {
	var lastLogin *string
	if a.LastLogin != nil {
		s := a.LastLogin.Format(time.RFC3339)
		lastLogin = &s
	}
	return AdminUserResponse{
		ID:        a.ID,
		Username:  a.Username,
		FullName:  a.FullName,
		Email:     a.Email,
		Role:      string(a.Role),
		IsActive:  a.IsActive,
		LastLogin: lastLogin,
	}
}
