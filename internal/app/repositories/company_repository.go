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

// CompanyFilter narrows company listings.
type CompanyFilter struct {
	Industry string
	Search   string
}

// CompanyRepository handles company database operations
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var companyColumns = []string{
	"company_id", "company_name", "company_type", "industry",
	"company_description", "website", "logo_path", "status", "created_at",
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Type, &c.Industry,
		&c.Description, &c.Website, &c.LogoPath, &c.Status, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new company and returns its generated ID.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) (int64, error) {
	sql, args, err := r.sb.Insert("companies").
		Columns("company_name", "company_type", "industry", "company_description", "website", "logo_path").
		Values(company.Name, company.Type, company.Industry, company.Description, company.Website, company.LogoPath).
		Suffix("RETURNING company_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert company query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		logger.Error().Err(err).Msg("Error inserting company")
		return 0, fmt.Errorf("failed to insert company: %w", err)
	}
	return id, nil
}

// GetByID retrieves a company by primary key.
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	sql, args, err := r.sb.Select(companyColumns...).
		From("companies").
		Where(squirrel.Eq{"company_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select company query: %w", err)
	}

	company, err := scanCompany(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company by id: %w", err)
	}
	return company, nil
}

// Update rewrites a company's editable fields.
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	sql, args, err := r.sb.Update("companies").
		Set("company_name", company.Name).
		Set("company_type", company.Type).
		Set("industry", company.Industry).
		Set("company_description", company.Description).
		Set("website", company.Website).
		Set("logo_path", company.LogoPath).
		Set("status", company.Status).
		Where(squirrel.Eq{"company_id": company.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update company query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		logger.Error().Err(err).Int64("company_id", company.ID).Msg("Error updating company")
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

// List retrieves companies matching the filter with pagination.
func (r *CompanyRepository) List(ctx context.Context, filter CompanyFilter, page, pageSize int) ([]models.Company, int64, error) {
	where := squirrel.And{squirrel.Eq{"status": models.StatusActive}}
	if filter.Industry != "" {
		where = append(where, squirrel.Eq{"industry": filter.Industry})
	}
	if filter.Search != "" {
		where = append(where, squirrel.ILike{"company_name": "%" + strings.TrimSpace(filter.Search) + "%"})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("companies").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count companies query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error counting companies")
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}
	if totalItems == 0 {
		return []models.Company{}, 0, nil
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := r.sb.Select(companyColumns...).
		From("companies").
		Where(where).
		OrderBy("company_name ASC").
		Limit(uint64(pageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing companies")
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]models.Company, 0, pageSize)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate company rows: %w", err)
	}

	return companies, totalItems, nil
}

// CountActive returns the number of active companies.
func (r *CompanyRepository) CountActive(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("companies").
		Where(squirrel.Eq{"status": models.StatusActive}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count companies query: %w", err)
	}
	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return n, nil
}
