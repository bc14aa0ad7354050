package database

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Migrations struct {
	migrate *migrate.Migrate
	logger  *zap.Logger
}

func NewMigrations(databaseURI string, logger *zap.Logger) (*Migrations, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, apperrors.NewValueError("unable to create migration source", utils.Caller(), err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURI)
	if err != nil {
		return nil, apperrors.NewValueError("unable to create migrate instance", utils.Caller(), err)
	}

	return &Migrations{
		migrate: m,
		logger:  logger,
	}, nil
}

func (m *Migrations) MigrateUp() error {
	err := m.migrate.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperrors.NewValueError("unable to apply migrations", utils.Caller(), err)
	}

	return nil
}
