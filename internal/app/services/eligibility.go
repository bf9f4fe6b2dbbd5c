package services

import (
	"fmt"
	"strings"

	"github.com/placementcell/portal/internal/app/models"
)

// CheckEligibility evaluates a student's academic profile against a job's
// declared requirements. Every boundary is inclusive: a CGPA exactly equal to
// the minimum passes. A nil or empty requirement places no constraint.
// The returned reasons name each failed criterion.
func CheckEligibility(profile models.AcademicProfile, req models.Requirements) (bool, []string) {
	var reasons []string

	if len(req.EligibleBranches) > 0 && !branchAllowed(profile.Branch, req.EligibleBranches) {
		reasons = append(reasons, fmt.Sprintf("branch %s is not eligible", profile.Branch))
	}
	if req.MinCGPA != nil && profile.CurrentCGPA < *req.MinCGPA {
		reasons = append(reasons, fmt.Sprintf("CGPA %.2f is below the required %.2f", profile.CurrentCGPA, *req.MinCGPA))
	}
	if req.MaxBacklogs != nil && *req.MaxBacklogs == 0 && profile.ActiveBacklog {
		reasons = append(reasons, "active backlogs are not allowed")
	}
	if req.Min10thMarks != nil && profile.Marks10th < *req.Min10thMarks {
		reasons = append(reasons, fmt.Sprintf("10th marks %.2f are below the required %.2f", profile.Marks10th, *req.Min10thMarks))
	}
	if req.Min12thMarks != nil && profile.Marks12th < *req.Min12thMarks {
		reasons = append(reasons, fmt.Sprintf("12th marks %.2f are below the required %.2f", profile.Marks12th, *req.Min12thMarks))
	}

	return len(reasons) == 0, reasons
}

// branchAllowed compares branches case-insensitively.
func branchAllowed(branch string, allowed []string) bool {
	for _, b := range allowed {
		if strings.EqualFold(strings.TrimSpace(b), strings.TrimSpace(branch)) {
			return true
		}
	}
	return false
}
