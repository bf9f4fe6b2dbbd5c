package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/repositories"
	"github.com/placementcell/portal/internal/pkg/apperrors"
)

func eligibleStudent() *models.Student {
	return &models.Student{
		ID:          1,
		Branch:      "Computer",
		CurrentCGPA: 8.0,
		Marks10th:   85,
		Marks12th:   80,
	}
}

func openJob() *models.JobPosting {
	return &models.JobPosting{
		ID:        1,
		CompanyID: 1,
		Title:     "Backend Engineer",
		Type:      "full_time",
		Status:    models.JobOpen,
	}
}

func newTestJobService(jobs *fakeJobStore, apps *fakeApplicationStore) *JobService {
	return NewJobService(jobs, apps, newFakeCompanyStore())
}

func TestApply(t *testing.T) {
	t.Parallel()

	apps := newFakeApplicationStore()
	svc := newTestJobService(newFakeJobStore(openJob()), apps)

	id, err := svc.Apply(context.Background(), eligibleStudent(), 1)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if id == 0 {
		t.Fatal("expected nonzero application id")
	}

	exists, _ := apps.ExistsByStudentAndJob(context.Background(), 1, 1)
	if !exists {
		t.Fatal("application not persisted")
	}
}

func TestApplyClosedJob(t *testing.T) {
	t.Parallel()

	job := openJob()
	job.Status = models.JobClosed
	svc := newTestJobService(newFakeJobStore(job), newFakeApplicationStore())

	_, err := svc.Apply(context.Background(), eligibleStudent(), 1)
	if !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound for closed posting, got %v", err)
	}
}

func TestApplyDeadlinePassed(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour)
	job := openJob()
	job.ApplicationDeadline = &past
	svc := newTestJobService(newFakeJobStore(job), newFakeApplicationStore())

	_, err := svc.Apply(context.Background(), eligibleStudent(), 1)
	if !errors.Is(err, apperrors.ErrDeadlinePassed) {
		t.Fatalf("expected ErrDeadlinePassed, got %v", err)
	}
}

// Eligibility is advisory; a student below the posted criteria may still apply.
func TestApplyIneligibleStudentAllowed(t *testing.T) {
	t.Parallel()

	minCGPA := 9.0
	job := openJob()
	job.MinCGPA = &minCGPA
	apps := newFakeApplicationStore()
	svc := newTestJobService(newFakeJobStore(job), apps)

	id, err := svc.Apply(context.Background(), eligibleStudent(), 1)
	if err != nil {
		t.Fatalf("apply below cgpa floor: %v", err)
	}
	if id == 0 {
		t.Fatal("expected nonzero application id")
	}
}

func TestListFiltersByBranchAndPackage(t *testing.T) {
	t.Parallel()

	restricted := openJob()
	restricted.EligibleBranches = []string{"IT", "Mechanical"}
	restricted.PackageOffered = 4.5

	openToAll := &models.JobPosting{
		ID:             2,
		CompanyID:      1,
		Title:          "Platform Engineer",
		Type:           "full_time",
		Status:         models.JobOpen,
		PackageOffered: 12.0,
	}
	svc := newTestJobService(newFakeJobStore(restricted, openToAll), newFakeApplicationStore())

	// Branch filter keeps unrestricted postings and drops mismatches.
	jobs, total, err := svc.List(context.Background(), repositories.JobFilter{Branch: "Computer"}, 1, 20)
	if err != nil {
		t.Fatalf("list by branch: %v", err)
	}
	if total != 1 || len(jobs) != 1 || jobs[0].ID != 2 {
		t.Fatalf("branch filter: got %d jobs (total %d), want only the unrestricted posting", len(jobs), total)
	}

	jobs, total, err = svc.List(context.Background(), repositories.JobFilter{MinPackage: 10}, 1, 20)
	if err != nil {
		t.Fatalf("list by min package: %v", err)
	}
	if total != 1 || len(jobs) != 1 || jobs[0].ID != 2 {
		t.Fatalf("min package filter: got %d jobs (total %d), want only the 12 LPA posting", len(jobs), total)
	}
}

func TestApplyDuplicate(t *testing.T) {
	t.Parallel()

	svc := newTestJobService(newFakeJobStore(openJob()), newFakeApplicationStore())
	student := eligibleStudent()

	if _, err := svc.Apply(context.Background(), student, 1); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	_, err := svc.Apply(context.Background(), student, 1)
	if !errors.Is(err, apperrors.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestApplyMissingJob(t *testing.T) {
	t.Parallel()

	svc := newTestJobService(newFakeJobStore(), newFakeApplicationStore())

	_, err := svc.Apply(context.Background(), eligibleStudent(), 99)
	if !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestGetAnnotatesStudentStanding(t *testing.T) {
	t.Parallel()

	minCGPA := 9.0
	job := openJob()
	job.MinCGPA = &minCGPA
	svc := newTestJobService(newFakeJobStore(job), newFakeApplicationStore())

	_, standing, err := svc.Get(context.Background(), 1, models.StudentIdentity(eligibleStudent()))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if standing == nil {
		t.Fatal("expected standing for student viewer")
	}
	if standing.Eligible {
		t.Error("student below CGPA floor reported eligible")
	}
	if len(standing.Reasons) == 0 {
		t.Error("expected ineligibility reasons")
	}
	if standing.HasApplied {
		t.Error("no application submitted yet")
	}
}

func TestGetAnonymousViewerHasNoStanding(t *testing.T) {
	t.Parallel()

	svc := newTestJobService(newFakeJobStore(openJob()), newFakeApplicationStore())

	_, standing, err := svc.Get(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if standing != nil {
		t.Fatal("anonymous viewers must not receive standing")
	}
}
