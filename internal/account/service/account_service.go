package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/account/handler/dto"
	"github.com/growclear66-coder/EAARNbIT/internal/account/model"
	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/metrics"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

const maxUpdateAttempts = 5

type AccountRepository interface {
	SelectByID(ctx context.Context, accountID string) (*model.Account, error)
	SelectAll(ctx context.Context) ([]model.Account, error)
	Update(ctx context.Context, account model.Account) error
}

type AccountUseCase struct {
	repository AccountRepository
	logger     *zap.Logger
}

func NewAccountService(repository AccountRepository, logger *zap.Logger) *AccountUseCase {
	return &AccountUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (a *AccountUseCase) GetAll(ctx context.Context) ([]dto.AccountResponse, error) {
	accounts, err := a.repository.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, dto.MapToAccountResponse(account))
	}

	return responses, nil
}

// ToggleBlock flips the block flag. Blocking is a flag, never a deletion:
// blocked accounts keep their balance and history.
func (a *AccountUseCase) ToggleBlock(ctx context.Context, accountID string) (bool, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		account, err := a.repository.SelectByID(ctx, accountID)
		if err != nil {
			return false, fmt.Errorf("%s %w", utils.Caller(), err)
		}

		account.IsBlocked = !account.IsBlocked

		err = a.repository.Update(ctx, *account)
		if errors.Is(err, apperrors.ErrVersionConflict) {
			metrics.VersionConflicts.Inc()
			continue
		}
		if err != nil {
			return false, fmt.Errorf("%s %w", utils.Caller(), err)
		}

		return account.IsBlocked, nil
	}

	return false, apperrors.ErrTemporarilyUnavailable
}
