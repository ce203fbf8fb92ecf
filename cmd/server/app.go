package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/andreluoliveira82/car-api/internal/config"
	"github.com/andreluoliveira82/car-api/internal/platform/postgres"
	"github.com/andreluoliveira82/car-api/internal/service/auth"
	"github.com/andreluoliveira82/car-api/internal/store"
	"github.com/andreluoliveira82/car-api/internal/validation"
)

// application holds the wired dependencies of the running server. It is
// built once in main and owns the database handle.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore  store.UserStore
	brandStore store.BrandStore
	carStore   store.CarStore

	tokenService auth.TokenService
	hasher       auth.PasswordHasher
	rules        *validation.Rules
}

// newApplication opens the database and wires the stores and services.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		userStore:    postgres.NewUserStore(db, logger),
		brandStore:   postgres.NewBrandStore(db, logger),
		carStore:     postgres.NewCarStore(db, logger),
		tokenService: tokenService,
		hasher:       auth.NewBcryptHasher(),
		rules:        validation.NewRules(cfg.Limits),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}
