package services

import (
	"testing"

	"github.com/placementcell/portal/internal/app/models"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func TestCheckEligibilityNoConstraints(t *testing.T) {
	t.Parallel()

	profile := models.AcademicProfile{Branch: "Computer", CurrentCGPA: 5.0}
	ok, reasons := CheckEligibility(profile, models.Requirements{})
	if !ok || len(reasons) != 0 {
		t.Fatalf("expected unconstrained job to accept anyone, got ok=%v reasons=%v", ok, reasons)
	}
}

func TestCheckEligibilityBoundariesInclusive(t *testing.T) {
	t.Parallel()

	profile := models.AcademicProfile{
		Branch:      "Computer",
		CurrentCGPA: 7.0,
		Marks10th:   80,
		Marks12th:   75,
	}
	req := models.Requirements{
		MinCGPA:      f64(7.0),
		Min10thMarks: f64(80),
		Min12thMarks: f64(75),
	}

	ok, reasons := CheckEligibility(profile, req)
	if !ok {
		t.Fatalf("exact boundary values must pass, got reasons=%v", reasons)
	}
}

func TestCheckEligibilityFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile models.AcademicProfile
		req     models.Requirements
		reasons int
	}{
		{
			name:    "cgpa below minimum",
			profile: models.AcademicProfile{Branch: "IT", CurrentCGPA: 6.99},
			req:     models.Requirements{MinCGPA: f64(7.0)},
			reasons: 1,
		},
		{
			name:    "branch not in list",
			profile: models.AcademicProfile{Branch: "Civil", CurrentCGPA: 9},
			req:     models.Requirements{EligibleBranches: []string{"Computer", "IT"}},
			reasons: 1,
		},
		{
			name:    "active backlog with zero allowed",
			profile: models.AcademicProfile{Branch: "IT", ActiveBacklog: true},
			req:     models.Requirements{MaxBacklogs: intp(0)},
			reasons: 1,
		},
		{
			name:    "every criterion fails",
			profile: models.AcademicProfile{Branch: "Civil", CurrentCGPA: 5, ActiveBacklog: true, Marks10th: 50, Marks12th: 50},
			req: models.Requirements{
				MinCGPA:          f64(7),
				MaxBacklogs:      intp(0),
				Min10thMarks:     f64(60),
				Min12thMarks:     f64(60),
				EligibleBranches: []string{"Computer"},
			},
			reasons: 5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, reasons := CheckEligibility(tt.profile, tt.req)
			if ok {
				t.Fatal("expected ineligible")
			}
			if len(reasons) != tt.reasons {
				t.Fatalf("expected %d reasons, got %d: %v", tt.reasons, len(reasons), reasons)
			}
		})
	}
}

func TestCheckEligibilityBranchCaseInsensitive(t *testing.T) {
	t.Parallel()

	profile := models.AcademicProfile{Branch: "computer"}
	req := models.Requirements{EligibleBranches: []string{"Computer"}}

	if ok, _ := CheckEligibility(profile, req); !ok {
		t.Fatal("branch comparison must ignore case")
	}
}

func TestCheckEligibilityBacklogAllowed(t *testing.T) {
	t.Parallel()

	profile := models.AcademicProfile{Branch: "IT", ActiveBacklog: true}
	req := models.Requirements{MaxBacklogs: intp(2)}

	if ok, _ := CheckEligibility(profile, req); !ok {
		t.Fatal("a nonzero backlog allowance must not reject an active backlog")
	}
}
