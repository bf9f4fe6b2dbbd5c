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
	"github.com/placementcell/portal/internal/pkg/dberrors"
	"github.com/placementcell/portal/internal/pkg/logger"
)

// StudentFilter narrows admin student listings.
type StudentFilter struct {
	Branch   string
	Class    string
	Status   string
	IsPlaced *bool
	Search   string
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentColumns = []string{
	"student_id", "roll_no", "full_name", "email", "password_hash", "phone",
	"branch", "class", "division", "marks_10th", "marks_12th", "current_cgpa",
	"active_backlog", "is_placed", "placement_package", "placed_company_id",
	"status", "registration_date", "updated_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.RollNo, &s.FullName, &s.Email, &s.PasswordHash, &s.Phone,
		&s.Branch, &s.Class, &s.Division, &s.Marks10th, &s.Marks12th, &s.CurrentCGPA,
		&s.ActiveBacklog, &s.IsPlaced, &s.PlacementPackage, &s.PlacedCompanyID,
		&s.Status, &s.RegistrationDate, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student row and returns its generated ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("roll_no", "full_name", "email", "password_hash", "phone",
			"branch", "class", "division", "marks_10th", "marks_12th",
			"current_cgpa", "active_backlog").
		Values(student.RollNo, student.FullName, student.Email, student.PasswordHash,
			student.Phone, student.Branch, student.Class, student.Division,
			student.Marks10th, student.Marks12th, student.CurrentCGPA, student.ActiveBacklog).
		Suffix("RETURNING student_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "students_email_key"):
			return 0, apperrors.NewCustomError(apperrors.ErrDuplicateIdentity,
				"a student with this email already exists")
		case dberrors.IsDuplicateConstraintError(err, "students_roll_no_key"):
			return 0, apperrors.NewCustomError(apperrors.ErrDuplicateIdentity,
				"a student with this roll number already exists")
		case dberrors.IsUniqueViolation(err):
			return 0, apperrors.ErrDuplicateIdentity
		}
		logger.Error().Err(err).Msg("Error inserting student")
		return 0, fmt.Errorf("failed to insert student: %w", err)
	}
	return id, nil
}

// GetByID retrieves a student by primary key.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student by id: %w", err)
	}
	return student, nil
}

// GetByEmail retrieves a student by email address.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student by email: %w", err)
	}
	return student, nil
}

// UpdateProfile applies the self-editable profile fields.
func (r *StudentRepository) UpdateProfile(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("full_name", student.FullName).
		Set("phone", student.Phone).
		Set("division", student.Division).
		Set("current_cgpa", student.CurrentCGPA).
		Set("active_backlog", student.ActiveBacklog).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"student_id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("student_id", student.ID).Msg("Error updating student profile")
		return fmt.Errorf("failed to update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateStatus flips the soft-deactivation flag.
func (r *StudentRepository) UpdateStatus(ctx context.Context, id int64, status models.AccountStatus) error {
	sql, args, err := r.sb.Update("students").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"student_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update student status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// MarkPlaced records a placement outcome inside an existing transaction.
func (r *StudentRepository) MarkPlaced(ctx context.Context, tx pgx.Tx, studentID, companyID int64, pkg *float64) error {
	sql, args, err := r.sb.Update("students").
		Set("is_placed", true).
		Set("placement_package", pkg).
		Set("placed_company_id", companyID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark placed query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to mark student placed: %w", err)
	}
	return nil
}

// List retrieves students matching the filter with pagination.
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter, page, pageSize int) ([]models.Student, int64, error) {
	where := squirrel.And{}
	if filter.Branch != "" {
		where = append(where, squirrel.Eq{"branch": filter.Branch})
	}
	if filter.Class != "" {
		where = append(where, squirrel.Eq{"class": filter.Class})
	}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"status": filter.Status})
	}
	if filter.IsPlaced != nil {
		where = append(where, squirrel.Eq{"is_placed": *filter.IsPlaced})
	}
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"roll_no": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("students").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}
	if totalItems == 0 {
		return []models.Student{}, 0, nil
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(where).
		OrderBy("roll_no ASC").
		Limit(uint64(pageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing students")
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0, pageSize)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate student rows: %w", err)
	}

	return students, totalItems, nil
}

// CountActive returns the number of active student accounts.
func (r *StudentRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, squirrel.And{squirrel.Eq{"status": models.StatusActive}})
}

// CountPlaced returns the number of placed students.
func (r *StudentRepository) CountPlaced(ctx context.Context) (int64, error) {
	return r.count(ctx, squirrel.And{squirrel.Eq{"is_placed": true}})
}

func (r *StudentRepository) count(ctx context.Context, where squirrel.And) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("students").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}
	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return n, nil
}
