package repository

import (
	"context"
	_ "embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	db "github.com/growclear66-coder/EAARNbIT/internal/database"
	"github.com/growclear66-coder/EAARNbIT/internal/settings/model"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

//go:embed queries/select_config.sql
var selectConfig string

//go:embed queries/update_config.sql
var updateConfig string

// defaultMinWithdrawalAmount is used when the config row is absent.
const defaultMinWithdrawalAmount = 100

type PostgresSettingsRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
}

func NewPostgresSettingsRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{
		postgresPool: postgresPool,
		logger:       logger,
	}
}

func (r *PostgresSettingsRepository) Select(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	err := r.postgresPool.DB.QueryRow(ctx, selectConfig).Scan(&settings.MinWithdrawalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			settings.MinWithdrawalAmount = decimal.NewFromInt(defaultMinWithdrawalAmount)
			return &settings, nil
		}
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return &settings, nil
}

func (r *PostgresSettingsRepository) Update(ctx context.Context, settings model.Settings) error {
	_, err := r.postgresPool.DB.Exec(ctx, updateConfig, settings.MinWithdrawalAmount)
	if err != nil {
		return apperrors.NewValueError("update failed", utils.Caller(), err)
	}

	return nil
}
