package models

import (
	"time"
)

// Student defines the student model based on the 'students' table.
// Rows are never physically deleted; Status flips to inactive instead.
type Student struct {
	ID               int64         `json:"student_id" db:"student_id"`
	RollNo           string        `json:"roll_no" db:"roll_no"`
	FullName         string        `json:"full_name" db:"full_name"`
	Email            string        `json:"email" db:"email"`
	PasswordHash     string        `json:"-" db:"password_hash"`
	Phone            string        `json:"phone" db:"phone"`
	Branch           string        `json:"branch" db:"branch"`
	Class            StudentClass  `json:"class" db:"class"`
	Division         *string       `json:"division,omitempty" db:"division"`
	Marks10th        float64       `json:"marks_10th" db:"marks_10th"`
	Marks12th        float64       `json:"marks_12th" db:"marks_12th"`
	CurrentCGPA      float64       `json:"current_cgpa" db:"current_cgpa"`
	ActiveBacklog    bool          `json:"active_backlog" db:"active_backlog"`
	IsPlaced         bool          `json:"is_placed" db:"is_placed"`
	PlacementPackage *float64      `json:"placement_package,omitempty" db:"placement_package"`
	PlacedCompanyID  *int64        `json:"placed_company_id,omitempty" db:"placed_company_id"`
	Status           AccountStatus `json:"status" db:"status"`
	RegistrationDate time.Time     `json:"registration_date" db:"registration_date"`
	UpdatedAt        time.Time     `json:"-" db:"updated_at"`
}

// AcademicProfile is the slice of a student record the eligibility predicate
// reads. Kept separate so eligibility stays a pure function over values.
type AcademicProfile struct {
	Branch        string
	CurrentCGPA   float64
	ActiveBacklog bool
	Marks10th     float64
	Marks12th     float64
}

// Academic extracts the eligibility-relevant fields.
func (s *Student) Academic() AcademicProfile {
	return AcademicProfile{
		Branch:        s.Branch,
		CurrentCGPA:   s.CurrentCGPA,
		ActiveBacklog: s.ActiveBacklog,
		Marks10th:     s.Marks10th,
		Marks12th:     s.Marks12th,
	}
}
