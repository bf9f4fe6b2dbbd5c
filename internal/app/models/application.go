package models

import "time"

// Application links one student to one job posting. The (student_id, job_id)
// pair is unique at the store level; the linkage is immutable after insert,
// only status/feedback/score change.
type Application struct {
	ID              int64             `json:"application_id" db:"application_id"`
	StudentID       int64             `json:"student_id" db:"student_id"`
	JobID           int64             `json:"job_id" db:"job_id"`
	Status          ApplicationStatus `json:"status" db:"status"`
	Feedback        *string           `json:"feedback,omitempty" db:"feedback"`
	InterviewScore  *float64          `json:"interview_score,omitempty" db:"interview_score"`
	ApplicationDate time.Time         `json:"application_date" db:"application_date"`
	UpdatedAt       time.Time         `json:"-" db:"updated_at"`

	// Joined fields for listing views.
	JobTitle       string  `json:"job_title,omitempty"`
	JobType        string  `json:"job_type,omitempty"`
	PackageOffered float64 `json:"package_offered,omitempty"`
	Location       string  `json:"location,omitempty"`
	CompanyName    string  `json:"company_name,omitempty"`
	CompanyType    string  `json:"company_type,omitempty"`
	StudentName    string  `json:"student_name,omitempty"`
	StudentRollNo  string  `json:"roll_no,omitempty"`
}
