package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	accountmodel "github.com/growclear66-coder/EAARNbIT/internal/account/model"
	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/metrics"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
	"github.com/growclear66-coder/EAARNbIT/internal/withdrawal/handler/dto"
	"github.com/growclear66-coder/EAARNbIT/internal/withdrawal/model"
)

const maxUpdateAttempts = 5

// WithdrawalRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_withdrawal_dependencies.go -package=mock github.com/growclear66-coder/EAARNbIT/internal/withdrawal/service WithdrawalRepository,AccountRepository,SettingsProvider,TransactionManager
type WithdrawalRepository interface {
	Insert(ctx context.Context, withdrawal model.Withdrawal) error
	SelectByID(ctx context.Context, id string) (*model.Withdrawal, error)
	UpdatePendingStatus(ctx context.Context, id string, status model.Status) error
	SelectByLogin(ctx context.Context, userLogin string) ([]model.Withdrawal, error)
	SelectAll(ctx context.Context) ([]model.Withdrawal, error)
}

type AccountRepository interface {
	SelectByLogin(ctx context.Context, userLogin string) (*accountmodel.Account, error)
	SelectByID(ctx context.Context, accountID string) (*accountmodel.Account, error)
	Update(ctx context.Context, account accountmodel.Account) error
}

type SettingsProvider interface {
	MinWithdrawalAmount(ctx context.Context) (decimal.Decimal, error)
}

type TransactionManager interface {
	DoWithSettings(ctx context.Context, s trm.Settings, fn func(ctx context.Context) error) error
}

type WithdrawalUseCase struct {
	withdrawals WithdrawalRepository
	accounts    AccountRepository
	settings    SettingsProvider
	trManager   TransactionManager
	trSettings  trm.Settings
	logger      *zap.Logger
	now         func() time.Time
}

func NewWithdrawalService(
	withdrawals WithdrawalRepository,
	accounts AccountRepository,
	settings SettingsProvider,
	trManager TransactionManager,
	trSettings trm.Settings,
	logger *zap.Logger,
) *WithdrawalUseCase {
	return &WithdrawalUseCase{
		withdrawals: withdrawals,
		accounts:    accounts,
		settings:    settings,
		trManager:   trManager,
		trSettings:  trSettings,
		logger:      logger,
		now:         time.Now,
	}
}

// Create debits the account and appends a PENDING request in one transaction;
// both effects commit together or neither does.
func (w *WithdrawalUseCase) Create(ctx context.Context, userLogin string, amount decimal.Decimal, destination string) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}

	minAmount, err := w.settings.MinWithdrawalAmount(ctx)
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	if amount.LessThan(minAmount) {
		return apperrors.ErrBelowMinWithdrawal
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		account, errSelect := w.accounts.SelectByLogin(ctx, userLogin)
		if errSelect != nil {
			return fmt.Errorf("%s %w", utils.Caller(), errSelect)
		}

		if account.IsBlocked {
			return apperrors.ErrAccountBlocked
		}

		if account.Balance.LessThan(amount) {
			return apperrors.ErrInsufficientFunds
		}

		account.Balance = account.Balance.Sub(amount)

		withdrawal := model.Withdrawal{
			ID:           uuid.New().String(),
			AccountID:    account.ID,
			AccountLogin: account.UserLogin,
			Amount:       amount,
			Destination:  destination,
			Status:       model.StatusPending,
			CreatedAt:    w.now(),
		}

		errTx := w.trManager.DoWithSettings(ctx, w.trSettings, func(ctx context.Context) error {
			if errUpdate := w.accounts.Update(ctx, *account); errUpdate != nil {
				return errUpdate
			}
			return w.withdrawals.Insert(ctx, withdrawal)
		})
		if errors.Is(errTx, apperrors.ErrVersionConflict) {
			metrics.VersionConflicts.Inc()
			continue
		}
		if errTx != nil {
			return fmt.Errorf("%s %w", utils.Caller(), errTx)
		}

		metrics.WithdrawalsCreated.Inc()
		return nil
	}

	return apperrors.ErrTemporarilyUnavailable
}

// Process moves a PENDING request to its terminal status. Rejection credits
// the amount back to the account inside the same transaction; if the account
// is gone the transaction rolls back and the request stays PENDING so an
// operator can retry, the refund is never dropped.
func (w *WithdrawalUseCase) Process(ctx context.Context, requestID string, approve bool) error {
	newStatus := model.StatusRejected
	if approve {
		newStatus = model.StatusApproved
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		errTx := w.trManager.DoWithSettings(ctx, w.trSettings, func(ctx context.Context) error {
			withdrawal, errSelect := w.withdrawals.SelectByID(ctx, requestID)
			if errSelect != nil {
				return errSelect
			}

			if withdrawal.Status != model.StatusPending {
				return apperrors.ErrAlreadyProcessed
			}

			if !approve {
				account, errAccount := w.accounts.SelectByID(ctx, withdrawal.AccountID)
				if errors.Is(errAccount, apperrors.ErrAccountNotFound) {
					return apperrors.ErrRefundTargetMissing
				}
				if errAccount != nil {
					return errAccount
				}

				account.Balance = account.Balance.Add(withdrawal.Amount)
				if errUpdate := w.accounts.Update(ctx, *account); errUpdate != nil {
					return errUpdate
				}
			}

			return w.withdrawals.UpdatePendingStatus(ctx, requestID, newStatus)
		})
		if errors.Is(errTx, apperrors.ErrVersionConflict) {
			metrics.VersionConflicts.Inc()
			continue
		}
		if errTx != nil {
			return fmt.Errorf("%s %w", utils.Caller(), errTx)
		}

		metrics.WithdrawalsProcessed.WithLabelValues(string(newStatus)).Inc()
		return nil
	}

	return apperrors.ErrTemporarilyUnavailable
}

func (w *WithdrawalUseCase) GetByUser(ctx context.Context, userLogin string) ([]dto.WithdrawalResponse, error) {
	withdrawals, err := w.withdrawals.SelectByLogin(ctx, userLogin)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return mapToResponses(withdrawals), nil
}

func (w *WithdrawalUseCase) GetAll(ctx context.Context) ([]dto.WithdrawalResponse, error) {
	withdrawals, err := w.withdrawals.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return mapToResponses(withdrawals), nil
}

func mapToResponses(withdrawals []model.Withdrawal) []dto.WithdrawalResponse {
	responses := make([]dto.WithdrawalResponse, 0, len(withdrawals))
	for _, withdrawal := range withdrawals {
		responses = append(responses, dto.MapToWithdrawalResponse(withdrawal))
	}
	return responses
}
