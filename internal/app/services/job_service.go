package services

import (
	"context"
	"time"

	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/app/repositories"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/logger"
)

// JobStanding is the viewer-specific slice of a job detail response.
type JobStanding struct {
	Eligible   bool
	HasApplied bool
	Reasons    []string
}

// JobService handles job posting reads and student applications.
type JobService struct {
	jobRepo         JobStore
	applicationRepo ApplicationStore
	companyRepo     CompanyStore
}

// NewJobService creates a new JobService
func NewJobService(jobRepo JobStore, applicationRepo ApplicationStore, companyRepo CompanyStore) *JobService {
	return &JobService{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		companyRepo:     companyRepo,
	}
}

// List returns job postings matching the filter.
func (s *JobService) List(ctx context.Context, filter repositories.JobFilter, page, pageSize int) ([]models.JobPosting, int64, error) {
	return s.jobRepo.List(ctx, filter, page, pageSize)
}

// Get returns one posting. When the viewer is a student, the posting is
// annotated with their eligibility and application standing.
func (s *JobService) Get(ctx context.Context, jobID int64, viewer *models.Identity) (*models.JobPosting, *JobStanding, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}

	if viewer == nil || viewer.Kind != models.SubjectStudent {
		return job, nil, nil
	}

	eligible, reasons := CheckEligibility(viewer.Student.Academic(), job.Requirements())
	applied, err := s.applicationRepo.ExistsByStudentAndJob(ctx, viewer.Student.ID, jobID)
	if err != nil {
		return nil, nil, err
	}

	return job, &JobStanding{Eligible: eligible, HasApplied: applied, Reasons: reasons}, nil
}

// Apply submits a student's application. Preconditions run in order: the
// posting must be open, the deadline must not have passed, and no earlier
// application may exist. Eligibility is advisory only and never blocks an
// application. The unique index backs the duplicate check against
// concurrent submissions.
func (s *JobService) Apply(ctx context.Context, student *models.Student, jobID int64) (int64, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return 0, err
	}

	if job.Status != models.JobOpen {
		return 0, apperrors.ErrJobNotFound
	}
	if job.ApplicationDeadline != nil && time.Now().After(*job.ApplicationDeadline) {
		return 0, apperrors.ErrDeadlinePassed
	}

	applied, err := s.applicationRepo.ExistsByStudentAndJob(ctx, student.ID, jobID)
	if err != nil {
		return 0, err
	}
	if applied {
		return 0, apperrors.ErrDuplicateApplication
	}

	id, err := s.applicationRepo.Create(ctx, student.ID, jobID)
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("student_id", student.ID).Int64("job_id", jobID).
		Int64("application_id", id).Msg("Application submitted")
	return id, nil
}

// Create posts a new job on behalf of an admin.
func (s *JobService) Create(ctx context.Context, req dto.CreateJobRequest) (*models.JobPosting, error) {
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	var deadline *time.Time
	if req.ApplicationDeadline != nil && *req.ApplicationDeadline != "" {
		t, err := time.Parse(time.RFC3339, *req.ApplicationDeadline)
		if err != nil {
			return nil, apperrors.NewBadRequestError("application_deadline must be an RFC3339 timestamp")
		}
		deadline = &t
	}

	status := models.JobStatus(req.Status)
	if status == "" {
		status = models.JobOpen
	}

	positions := req.TotalPositions
	if positions <= 0 {
		positions = 1
	}

	job := &models.JobPosting{
		CompanyID:           req.CompanyID,
		Title:               req.Title,
		Description:         req.Description,
		Type:                req.JobType,
		PackageOffered:      req.PackageOffered,
		Location:            req.Location,
		TotalPositions:      positions,
		MinCGPA:             req.MinCGPA,
		MaxBacklogs:         req.MaxBacklogs,
		Min10thMarks:        req.Min10thMarks,
		Min12thMarks:        req.Min12thMarks,
		EligibleBranches:    req.EligibleBranches,
		ApplicationDeadline: deadline,
		Status:              status,
	}

	id, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("job_id", id).Int64("company_id", req.CompanyID).Msg("Job posted")
	return s.jobRepo.GetByID(ctx, id)
}

// Close marks a posting closed.
func (s *JobService) Close(ctx context.Context, jobID int64) error {
	return s.jobRepo.UpdateStatus(ctx, jobID, models.JobClosed)
}
