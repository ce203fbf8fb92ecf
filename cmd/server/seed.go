package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/platform/postgres"
	"github.com/andreluoliveira82/car-api/internal/store"
)

// Initial admin credentials. The password must be changed after first login.
const (
	seedAdminUsername = "admin"
	seedAdminFullName = "Administrador"
	seedAdminEmail    = "admin@carapi.com"
	seedAdminPassword = "Admin123!"
)

// seedAdmin creates the initial admin account when no admin exists yet. The
// check and the insert run in one transaction so concurrent startups cannot
// seed twice.
func (app *application) seedAdmin(ctx context.Context) error {
	return store.RunInTransaction(ctx, app.db, func(ctx context.Context, tx *sql.Tx) error {
		users := postgres.NewUserStore(tx, app.logger)

		exists, err := users.ExistsAdmin(ctx)
		if err != nil {
			return fmt.Errorf("failed to check for existing admin: %w", err)
		}
		if exists {
			app.logger.Debug("admin account already present, skipping seed")
			return nil
		}

		hashed, err := app.hasher.Hash(seedAdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := &domain.User{
			Username:       seedAdminUsername,
			FullName:       seedAdminFullName,
			Email:          seedAdminEmail,
			HashedPassword: hashed,
			Role:           domain.RoleAdmin,
			IsActive:       true,
		}

		if err := users.Create(ctx, admin); err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}

		app.logger.Info("initial admin account created", "user_id", admin.ID)
		return nil
	})
}
