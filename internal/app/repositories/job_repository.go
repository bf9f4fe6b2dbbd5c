package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/logger"
)

// JobFilter narrows job listings.
type JobFilter struct {
	Status     string
	JobType    string
	CompanyID  int64
	Branch     string
	MinPackage float64
	Search     string
}

// JobRepository handles job posting database operations
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var jobSelectColumns = []string{
	"j.job_id", "j.company_id", "j.job_title", "j.job_description", "j.job_type",
	"j.package_offered", "j.location", "j.total_positions",
	"j.min_cgpa", "j.max_backlogs", "j.min_10th_marks", "j.min_12th_marks",
	"j.eligible_branches", "j.application_deadline", "j.status", "j.created_at",
	"c.company_name", "COALESCE(c.company_type, '') AS company_type",
	"COALESCE(c.logo_path, '') AS logo_path",
	"(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.job_id) AS applications_count",
}

func scanJob(row pgx.Row) (*models.JobPosting, error) {
	var j models.JobPosting
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Type,
		&j.PackageOffered, &j.Location, &j.TotalPositions,
		&j.MinCGPA, &j.MaxBacklogs, &j.Min10thMarks, &j.Min12thMarks,
		&j.EligibleBranches, &j.ApplicationDeadline, &j.Status, &j.CreatedAt,
		&j.CompanyName, &j.CompanyType, &j.CompanyLogoPath, &j.ApplicationsCount,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create inserts a new job posting and returns its generated ID.
func (r *JobRepository) Create(ctx context.Context, job *models.JobPosting) (int64, error) {
	sql, args, err := r.sb.Insert("job_postings").
		Columns("company_id", "job_title", "job_description", "job_type",
			"package_offered", "location", "total_positions",
			"min_cgpa", "max_backlogs", "min_10th_marks", "min_12th_marks",
			"eligible_branches", "application_deadline", "status").
		Values(job.CompanyID, job.Title, job.Description, job.Type,
			job.PackageOffered, job.Location, job.TotalPositions,
			job.MinCGPA, job.MaxBacklogs, job.Min10thMarks, job.Min12thMarks,
			job.EligibleBranches, job.ApplicationDeadline, job.Status).
		Suffix("RETURNING job_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert job query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error inserting job posting")
		return 0, fmt.Errorf("failed to insert job posting: %w", err)
	}
	return id, nil
}

// GetByID retrieves a job posting with its company context.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	sql, args, err := r.sb.Select(jobSelectColumns...).
		From("job_postings j").
		Join("companies c ON j.company_id = c.company_id").
		Where(squirrel.Eq{"j.job_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select job query: %w", err)
	}

	job, err := scanJob(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}
	return job, nil
}

// List retrieves job postings matching the filter with pagination.
func (r *JobRepository) List(ctx context.Context, filter JobFilter, page, pageSize int) ([]models.JobPosting, int64, error) {
	where := squirrel.And{}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"j.status": filter.Status})
	}
	if filter.JobType != "" {
		where = append(where, squirrel.Eq{"j.job_type": filter.JobType})
	}
	if filter.CompanyID > 0 {
		where = append(where, squirrel.Eq{"j.company_id": filter.CompanyID})
	}
	if filter.Branch != "" {
		// A posting with no branch restriction matches every branch.
		where = append(where, squirrel.Or{
			squirrel.Expr("j.eligible_branches IS NULL"),
			squirrel.Expr("? = ANY(j.eligible_branches)", filter.Branch),
		})
	}
	if filter.MinPackage > 0 {
		where = append(where, squirrel.GtOrEq{"j.package_offered": filter.MinPackage})
	}
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"j.job_title": pattern},
			squirrel.ILike{"c.company_name": pattern},
		})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("job_postings j").
		Join("companies c ON j.company_id = c.company_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count jobs query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error counting job postings")
		return nil, 0, fmt.Errorf("failed to count job postings: %w", err)
	}
	if totalItems == 0 {
		return []models.JobPosting{}, 0, nil
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := r.sb.Select(jobSelectColumns...).
		From("job_postings j").
		Join("companies c ON j.company_id = c.company_id").
		Where(where).
		OrderBy("j.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing job postings")
		return nil, 0, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	jobs := make([]models.JobPosting, 0, pageSize)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate job rows: %w", err)
	}

	return jobs, totalItems, nil
}

// UpdateStatus moves a posting through its lifecycle.
func (r *JobRepository) UpdateStatus(ctx context.Context, id int64, status models.JobStatus) error {
	sql, args, err := r.sb.Update("job_postings").
		Set("status", status).
		Where(squirrel.Eq{"job_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update job status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// CountOpen returns the number of currently open postings.
func (r *JobRepository) CountOpen(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("job_postings").
		Where(squirrel.Eq{"status": models.JobOpen}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count open jobs query: %w", err)
	}
	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count open jobs: %w", err)
	}
	return n, nil
}
