package services

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/app/repositories"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/logger"
)

// AdminService handles the placement-cell side: dashboard, student oversight
// and application review.
type AdminService struct {
	tx               TxRunner
	studentRepo      StudentStore
	companyRepo      CompanyStore
	jobRepo          JobStore
	applicationRepo  ApplicationStore
	notificationRepo NotificationStore
}

// NewAdminService creates a new AdminService
func NewAdminService(tx TxRunner, studentRepo StudentStore, companyRepo CompanyStore,
	jobRepo JobStore, applicationRepo ApplicationStore, notificationRepo NotificationStore) *AdminService {
	return &AdminService{
		tx:               tx,
		studentRepo:      studentRepo,
		companyRepo:      companyRepo,
		jobRepo:          jobRepo,
		applicationRepo:  applicationRepo,
		notificationRepo: notificationRepo,
	}
}

// recentApplicationCount bounds the dashboard activity feed.
const recentApplicationCount = 5

// Dashboard aggregates the placement activity counters along with the most
// recent applications. Student and company counts cover active accounts only.
func (s *AdminService) Dashboard(ctx context.Context) (*dto.DashboardStats, []models.Application, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.TotalStudents, err = s.studentRepo.CountActive(ctx); err != nil {
		return nil, nil, err
	}
	if stats.PlacedStudents, err = s.studentRepo.CountPlaced(ctx); err != nil {
		return nil, nil, err
	}
	if stats.TotalCompanies, err = s.companyRepo.CountActive(ctx); err != nil {
		return nil, nil, err
	}
	if stats.OpenJobs, err = s.jobRepo.CountOpen(ctx); err != nil {
		return nil, nil, err
	}
	if stats.TotalApplications, err = s.applicationRepo.CountAll(ctx); err != nil {
		return nil, nil, err
	}
	if stats.PendingReviews, err = s.applicationRepo.CountByStatus(ctx, models.ApplicationApplied); err != nil {
		return nil, nil, err
	}

	if stats.TotalStudents > 0 {
		pct := float64(stats.PlacedStudents) / float64(stats.TotalStudents) * 100
		stats.PlacementPercentage = math.Round(pct*100) / 100
	}

	recent, _, err := s.applicationRepo.List(ctx, repositories.ApplicationFilter{}, 1, recentApplicationCount)
	if err != nil {
		return nil, nil, err
	}

	return stats, recent, nil
}

// ListStudents returns students matching the filter.
func (s *AdminService) ListStudents(ctx context.Context, filter repositories.StudentFilter, page, pageSize int) ([]models.Student, int64, error) {
	return s.studentRepo.List(ctx, filter, page, pageSize)
}

// GetStudent returns one student record.
func (s *AdminService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// SetStudentStatus flips the soft-deactivation flag on an account.
func (s *AdminService) SetStudentStatus(ctx context.Context, id int64, status models.AccountStatus) error {
	if status != models.StatusActive && status != models.StatusInactive {
		return apperrors.ErrInvalidStatus
	}
	if err := s.studentRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	logger.Info().Int64("student_id", id).Str("status", string(status)).Msg("Student status changed")
	return nil
}

// ListApplications returns applications matching the filter.
func (s *AdminService) ListApplications(ctx context.Context, filter repositories.ApplicationFilter, page, pageSize int) ([]models.Application, int64, error) {
	return s.applicationRepo.List(ctx, filter, page, pageSize)
}

// UpdateApplicationStatus moves an application along its lifecycle. The status
// graph is enforced here: applied may become shortlisted or rejected,
// shortlisted may become selected, rejected or waitlisted, and terminal states
// never move again. A selection also marks the student placed and notifies
// them, all inside one transaction.
func (s *AdminService) UpdateApplicationStatus(ctx context.Context, id int64, req dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	if !models.IsValidApplicationStatus(req.Status) {
		return nil, apperrors.ErrInvalidStatus
	}
	target := models.ApplicationStatus(req.Status)

	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(app.Status, target) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus,
			fmt.Sprintf("cannot move application from %s to %s", app.Status, target))
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.applicationRepo.UpdateStatus(ctx, tx, id, target, req.Feedback, req.InterviewScore); err != nil {
			return err
		}

		if target == models.ApplicationSelected && app.Status != models.ApplicationSelected {
			job, err := s.jobRepo.GetByID(ctx, app.JobID)
			if err != nil {
				return err
			}
			pkg := job.PackageOffered
			if err := s.studentRepo.MarkPlaced(ctx, tx, app.StudentID, job.CompanyID, &pkg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChange(ctx, app, target)

	logger.Info().Int64("application_id", id).
		Str("from", string(app.Status)).Str("to", string(target)).
		Msg("Application status updated")

	return s.applicationRepo.GetByID(ctx, id)
}

// notifyStatusChange records a best-effort notification; failures are logged,
// never surfaced to the admin.
func (s *AdminService) notifyStatusChange(ctx context.Context, app *models.Application, target models.ApplicationStatus) {
	if target == app.Status {
		return
	}

	n := &models.Notification{
		StudentID: app.StudentID,
		Title:     "Application update",
		Message: fmt.Sprintf("Your application for %s at %s is now %s",
			app.JobTitle, app.CompanyName, target),
	}
	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		logger.Warn().Err(err).Int64("student_id", app.StudentID).Msg("Could not create notification")
	}
}
