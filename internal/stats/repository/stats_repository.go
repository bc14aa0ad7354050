package repository

import (
	"context"
	_ "embed"

	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	db "github.com/growclear66-coder/EAARNbIT/internal/database"
	"github.com/growclear66-coder/EAARNbIT/internal/stats/model"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

//go:embed queries/select_dashboard_stats.sql
var selectDashboardStats string

type PostgresStatsRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
}

func NewPostgresStatsRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresStatsRepository {
	return &PostgresStatsRepository{
		postgresPool: postgresPool,
		logger:       logger,
	}
}

// SelectDashboardStats is a best-effort read outside the transaction
// protocol; it never drives a mutation decision.
func (r *PostgresStatsRepository) SelectDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	err := r.postgresPool.DB.QueryRow(ctx, selectDashboardStats).
		Scan(&stats.TotalUsers, &stats.TotalBalance, &stats.TotalWithdrawals, &stats.PendingWithdrawals)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return &stats, nil
}
