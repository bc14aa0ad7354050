package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/settings/handler/dto"
	"github.com/growclear66-coder/EAARNbIT/internal/settings/model"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

type SettingsRepository interface {
	Select(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, settings model.Settings) error
}

type SettingsUseCase struct {
	repository SettingsRepository
	logger     *zap.Logger
}

func NewSettingsService(repository SettingsRepository, logger *zap.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (s *SettingsUseCase) GetConfig(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.repository.Select(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return &dto.SettingsResponse{MinWithdrawalAmount: settings.MinWithdrawalAmount}, nil
}

func (s *SettingsUseCase) UpdateConfig(ctx context.Context, request dto.SettingsUpdateRequest) error {
	if !request.MinWithdrawalAmount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}

	err := s.repository.Update(ctx, model.Settings{MinWithdrawalAmount: request.MinWithdrawalAmount})
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}

// MinWithdrawalAmount is the read path the withdrawal engine validates against.
func (s *SettingsUseCase) MinWithdrawalAmount(ctx context.Context) (decimal.Decimal, error) {
	settings, err := s.repository.Select(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return settings.MinWithdrawalAmount, nil
}
