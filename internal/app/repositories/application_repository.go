package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/dberrors"
	"github.com/placementcell/portal/internal/pkg/logger"
)

// ApplicationFilter narrows admin application listings.
type ApplicationFilter struct {
	JobID     int64
	StudentID int64
	Status    string
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var applicationSelectColumns = []string{
	"a.application_id", "a.student_id", "a.job_id", "a.status",
	"a.feedback", "a.interview_score", "a.application_date", "a.updated_at",
	"j.job_title", "j.job_type", "j.package_offered", "COALESCE(j.location, '') AS location",
	"c.company_name", "COALESCE(c.company_type, '') AS company_type",
	"s.full_name AS student_name", "s.roll_no",
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID, &a.StudentID, &a.JobID, &a.Status,
		&a.Feedback, &a.InterviewScore, &a.ApplicationDate, &a.UpdatedAt,
		&a.JobTitle, &a.JobType, &a.PackageOffered, &a.Location,
		&a.CompanyName, &a.CompanyType,
		&a.StudentName, &a.StudentRollNo,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepository) joinedSelect() squirrel.SelectBuilder {
	return r.sb.Select(applicationSelectColumns...).
		From("applications a").
		Join("job_postings j ON a.job_id = j.job_id").
		Join("companies c ON j.company_id = c.company_id").
		Join("students s ON a.student_id = s.student_id")
}

// Create inserts a new application. The unique (student_id, job_id) index
// turns a concurrent double-apply into ErrDuplicateApplication.
func (r *ApplicationRepository) Create(ctx context.Context, studentID, jobID int64) (int64, error) {
	sql, args, err := r.sb.Insert("applications").
		Columns("student_id", "job_id", "status").
		Values(studentID, jobID, models.ApplicationApplied).
		Suffix("RETURNING application_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert application query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrDuplicateApplication
		}
		logger.Error().Err(err).Int64("student_id", studentID).Int64("job_id", jobID).
			Msg("Error inserting application")
		return 0, fmt.Errorf("failed to insert application: %w", err)
	}
	return id, nil
}

// GetByID retrieves an application with its job, company and student context.
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.joinedSelect().
		Where(squirrel.Eq{"a.application_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select application query: %w", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}
	return app, nil
}

// ExistsByStudentAndJob reports whether the student already applied to the job.
func (r *ApplicationRepository) ExistsByStudentAndJob(ctx context.Context, studentID, jobID int64) (bool, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("applications").
		Where(squirrel.Eq{"student_id": studentID, "job_id": jobID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count applications: %w", err)
	}
	return n > 0, nil
}

// ListByStudent retrieves every application belonging to a student, newest first.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Application, error) {
	sql, args, err := r.joinedSelect().
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.application_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("student_id", studentID).Msg("Error listing student applications")
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate application rows: %w", err)
	}
	return apps, nil
}

// List retrieves applications matching the filter with pagination.
func (r *ApplicationRepository) List(ctx context.Context, filter ApplicationFilter, page, pageSize int) ([]models.Application, int64, error) {
	where := squirrel.And{}
	if filter.JobID > 0 {
		where = append(where, squirrel.Eq{"a.job_id": filter.JobID})
	}
	if filter.StudentID > 0 {
		where = append(where, squirrel.Eq{"a.student_id": filter.StudentID})
	}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"a.status": filter.Status})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("applications a").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error counting applications")
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}
	if totalItems == 0 {
		return []models.Application{}, 0, nil
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := r.joinedSelect().
		Where(where).
		OrderBy("a.application_date DESC").
		Limit(uint64(pageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing applications")
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := make([]models.Application, 0, pageSize)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate application rows: %w", err)
	}

	return apps, totalItems, nil
}

// UpdateStatus applies a reviewed status plus optional feedback and score.
// The caller validates the transition before reaching the store.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status models.ApplicationStatus, feedback *string, score *float64) error {
	update := r.sb.Update("applications").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"application_id": id})
	if feedback != nil {
		update = update.Set("feedback", feedback)
	}
	if score != nil {
		update = update.Set("interview_score", score)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update application query: %w", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// CountAll returns the total number of applications.
func (r *ApplicationRepository) CountAll(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, squirrel.And{})
}

// CountByStatus returns the number of applications in one status.
func (r *ApplicationRepository) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	return r.countWhere(ctx, squirrel.And{squirrel.Eq{"status": status}})
}

func (r *ApplicationRepository) countWhere(ctx context.Context, where squirrel.And) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("applications").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count applications query: %w", err)
	}
	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return n, nil
}
