package models

import "time"

// JobPosting defines the job posting model based on the 'job_postings' table.
// The eligibility fields are predicates evaluated against a student's
// academic profile; a nil/empty predicate places no constraint.
type JobPosting struct {
	ID                  int64      `json:"job_id" db:"job_id"`
	CompanyID           int64      `json:"company_id" db:"company_id"`
	Title               string     `json:"job_title" db:"job_title"`
	Description         string     `json:"job_description" db:"job_description"`
	Type                string     `json:"job_type" db:"job_type"`
	PackageOffered      float64    `json:"package_offered" db:"package_offered"`
	Location            string     `json:"location" db:"location"`
	TotalPositions      int        `json:"total_positions" db:"total_positions"`
	MinCGPA             *float64   `json:"min_cgpa,omitempty" db:"min_cgpa"`
	MaxBacklogs         *int       `json:"max_backlogs,omitempty" db:"max_backlogs"`
	Min10thMarks        *float64   `json:"min_10th_marks,omitempty" db:"min_10th_marks"`
	Min12thMarks        *float64   `json:"min_12th_marks,omitempty" db:"min_12th_marks"`
	EligibleBranches    []string   `json:"eligible_branches,omitempty" db:"eligible_branches"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty" db:"application_deadline"`
	Status              JobStatus  `json:"status" db:"status"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`

	// Joined fields populated by list/detail queries, no own columns.
	CompanyName       string `json:"company_name,omitempty"`
	CompanyType       string `json:"company_type,omitempty"`
	CompanyLogoPath   string `json:"logo_path,omitempty"`
	ApplicationsCount int    `json:"applications_count"`
}

// Requirements is the job side of the eligibility predicate.
type Requirements struct {
	MinCGPA          *float64
	MaxBacklogs      *int
	Min10thMarks     *float64
	Min12thMarks     *float64
	EligibleBranches []string
}

// Requirements extracts the declared predicates of a posting.
func (j *JobPosting) Requirements() Requirements {
	return Requirements{
		MinCGPA:          j.MinCGPA,
		MaxBacklogs:      j.MaxBacklogs,
		Min10thMarks:     j.Min10thMarks,
		Min12thMarks:     j.Min12thMarks,
		EligibleBranches: j.EligibleBranches,
	}
}
