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

// AdminRepository handles admin account database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var adminColumns = []string{
	"admin_id", "username", "full_name", "email", "password_hash",
	"role", "is_active", "last_login", "created_at",
}

func scanAdmin(row pgx.Row) (*models.AdminUser, error) {
	var a models.AdminUser
	err := row.Scan(
		&a.ID, &a.Username, &a.FullName, &a.Email, &a.PasswordHash,
		&a.Role, &a.IsActive, &a.LastLogin, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new admin account and returns its generated ID.
func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) (int64, error) {
	sql, args, err := r.sb.Insert("admin_users").
		Columns("username", "full_name", "email", "password_hash", "role", "is_active").
		Values(admin.Username, admin.FullName, admin.Email, admin.PasswordHash, admin.Role, admin.IsActive).
		Suffix("RETURNING admin_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert admin query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrDuplicateIdentity
		}
		logger.Error().Err(err).Msg("Error inserting admin user")
		return 0, fmt.Errorf("failed to insert admin user: %w", err)
	}
	return id, nil
}

// GetByID retrieves an admin account by primary key.
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admin_users").
		Where(squirrel.Eq{"admin_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin by id: %w", err)
	}
	return admin, nil
}

// GetByEmail retrieves an admin account by email address.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admin_users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}
	return admin, nil
}

// UpdateLastLogin stamps a successful authentication.
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("admin_users").
		Set("last_login", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"admin_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update last login query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Warn().Err(err).Int64("admin_id", id).Msg("Failed to update admin last login")
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// ExistsByUsername reports whether the username is already taken.
func (r *AdminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("admin_users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build count admins query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count admins: %w", err)
	}
	return n > 0, nil
}
