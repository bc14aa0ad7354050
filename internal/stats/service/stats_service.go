package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/stats/handler/dto"
	"github.com/growclear66-coder/EAARNbIT/internal/stats/model"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

type StatsRepository interface {
	SelectDashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type StatsUseCase struct {
	repository StatsRepository
	logger     *zap.Logger
}

func NewStatsService(repository StatsRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (s *StatsUseCase) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, err := s.repository.SelectDashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	response := dto.MapToDashboardStatsResponse(*stats)
	return &response, nil
}
