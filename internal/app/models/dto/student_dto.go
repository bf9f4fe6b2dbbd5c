package dto

import (
	"time"

	"github.com/placementcell/portal/internal/app/models"
)

// StudentResponse is the wire representation of a student record.
type StudentResponse struct {
	ID               int64    `json:"student_id"`
	RollNo           string   `json:"roll_no"`
	FullName         string   `json:"full_name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Branch           string   `json:"branch"`
	Class            string   `json:"class"`
	Division         *string  `json:"division"`
	Marks10th        float64  `json:"marks_10th"`
	Marks12th        float64  `json:"marks_12th"`
	CurrentCGPA      float64  `json:"current_cgpa"`
	ActiveBacklog    bool     `json:"active_backlog"`
	IsPlaced         bool     `json:"is_placed"`
	PlacementPackage *float64 `json:"placement_package"`
	Status           string   `json:"status"`
	RegistrationDate string   `json:"registration_date"`
}

// NewStudentResponse maps a student model to its wire form.
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:               s.ID,
		RollNo:           s.RollNo,
		FullName:         s.FullName,
		Email:            s.Email,
		Phone:            s.Phone,
		Branch:           s.Branch,
		Class:            string(s.Class),
		Division:         s.Division,
		Marks10th:        s.Marks10th,
		Marks12th:        s.Marks12th,
		CurrentCGPA:      s.CurrentCGPA,
		ActiveBacklog:    s.ActiveBacklog,
		IsPlaced:         s.IsPlaced,
		PlacementPackage: s.PlacementPackage,
		Status:           string(s.Status),
		RegistrationDate: s.RegistrationDate.Format(time.RFC3339),
	}
}

// StudentProfileResponse wraps the caller's own profile.
type StudentProfileResponse struct {
	Success bool            `json:"success"`
	Student StudentResponse `json:"student"`
}

// UpdateStudentProfileRequest carries the self-editable profile fields.
type UpdateStudentProfileRequest struct {
	FullName      *string  `json:"full_name,omitempty" binding:"omitempty,min=2,max=100"`
	Phone         *string  `json:"phone,omitempty"`
	Division      *string  `json:"division,omitempty"`
	CurrentCGPA   *float64 `json:"current_cgpa,omitempty" binding:"omitempty,gte=0,lte=10"`
	ActiveBacklog *bool    `json:"active_backlog,omitempty"`
}

// StudentListResponse is the paginated admin view of students.
type StudentListResponse struct {
	Success    bool              `json:"success"`
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// StudentFilterRequest captures admin student-list filters.
type StudentFilterRequest struct {
	Branch   string `form:"branch"`
	Class    string `form:"class"`
	Status   string `form:"status"`
	IsPlaced *bool  `form:"is_placed"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=20"`
}
