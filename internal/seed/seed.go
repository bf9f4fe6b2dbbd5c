package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/pkg/auth"
	"github.com/placementcell/portal/internal/pkg/logger"
)

// defaultAdmins are created on first boot so the portal is reachable before
// any manual provisioning. The password comes from SEED_ADMIN_PASSWORD.
var defaultAdmins = []models.AdminUser{
	{Username: "superadmin", FullName: "Super Administrator", Email: "superadmin@placement.local", Role: models.RoleSuperAdmin},
	{Username: "tpo", FullName: "Training & Placement Officer", Email: "tpo@placement.local", Role: models.RoleTPO},
	{Username: "coordinator", FullName: "Placement Coordinator", Email: "coordinator@placement.local", Role: models.RoleCoordinator},
}

// Run inserts the default admin accounts if they are missing. Existing rows
// are left untouched.
func Run(ctx context.Context, db *pgxpool.Pool) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for _, admin := range defaultAdmins {
		tag, err := db.Exec(ctx, `
			INSERT INTO admin_users (username, full_name, email, password_hash, role, is_active)
			VALUES ($1, $2, $3, $4, $5, TRUE)
			ON CONFLICT (username) DO NOTHING`,
			admin.Username, admin.FullName, admin.Email, hash, admin.Role)
		if err != nil {
			return fmt.Errorf("failed to seed admin %s: %w", admin.Username, err)
		}
		if tag.RowsAffected() > 0 {
			logger.Info().Str("username", admin.Username).Str("role", string(admin.Role)).
				Msg("Seeded admin account")
		}
	}

	return nil
}
