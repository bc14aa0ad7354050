package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/account/model"
	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/metrics"
	"github.com/growclear66-coder/EAARNbIT/internal/tap/handler/dto"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

const (
	// maxBatchSize caps one flush at roughly 15 taps/s over a 5s interval,
	// anything above is rejected wholesale as automation.
	maxBatchSize = 200

	// sessionLimit is the tap ceiling per earning window.
	sessionLimit = 1000

	// conversionRate coins become one currency unit.
	conversionRate = 1000

	cooldownDuration  = 5 * time.Minute
	maxUpdateAttempts = 5
)

const (
	AdvisoryLimitReached = "Session limit reached. 5 minute cooldown started."
	AdvisoryConverted    = "1000 coins converted to 1 balance unit."
)

type AccountRepository interface {
	SelectByLogin(ctx context.Context, userLogin string) (*model.Account, error)
	Update(ctx context.Context, account model.Account) error
}

type TapUseCase struct {
	accounts AccountRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewTapService(accounts AccountRepository, logger *zap.Logger) *TapUseCase {
	return &TapUseCase{
		accounts: accounts,
		logger:   logger,
		now:      time.Now,
	}
}

// RegisterTaps credits a batched count of taps to the account's coin
// accumulator under the session cap, drains full thousands of coins into the
// balance and returns the committed snapshot. The whole credit is one
// optimistic transaction: on a version conflict the new state is recomputed
// from the freshly read account, so concurrent batches compose additively.
func (t *TapUseCase) RegisterTaps(ctx context.Context, userLogin string, count int) (*dto.AccountSnapshot, error) {
	if count < 1 {
		return nil, apperrors.ErrInvalidTapCount
	}

	if count > maxBatchSize {
		return nil, apperrors.ErrSuspiciousActivity
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		account, err := t.accounts.SelectByLogin(ctx, userLogin)
		if err != nil {
			return nil, fmt.Errorf("%s %w", utils.Caller(), err)
		}

		if account.IsBlocked {
			return nil, apperrors.ErrAccountBlocked
		}

		now := t.now()

		if account.CooldownUntil != nil && now.Before(*account.CooldownUntil) {
			return nil, apperrors.ErrCooldownActive
		}

		// Lazy reset: an elapsed cooldown is cleared inside the same
		// transaction as the credit, never by a background timer.
		if account.CooldownUntil != nil {
			account.CooldownUntil = nil
			account.SessionTaps = 0
		}

		credited := count
		if remaining := sessionLimit - account.SessionTaps; credited > remaining {
			credited = remaining
		}

		account.SessionTaps += credited
		account.Coins += int64(credited)

		advisory := ""
		if account.SessionTaps == sessionLimit {
			cooldownUntil := now.Add(cooldownDuration)
			account.CooldownUntil = &cooldownUntil
			advisory = AdvisoryLimitReached
		}

		converted := false
		for account.Coins >= conversionRate {
			account.Coins -= conversionRate
			account.Balance = account.Balance.Add(decimal.NewFromInt(1))
			account.TotalEarned = account.TotalEarned.Add(decimal.NewFromInt(1))
			converted = true
		}
		if converted && advisory == "" {
			advisory = AdvisoryConverted
		}

		err = t.accounts.Update(ctx, *account)
		if errors.Is(err, apperrors.ErrVersionConflict) {
			metrics.VersionConflicts.Inc()
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s %w", utils.Caller(), err)
		}

		metrics.TapsCredited.Add(float64(credited))
		if converted {
			metrics.Conversions.Inc()
		}

		snapshot := dto.MapToAccountSnapshot(*account, advisory)
		return &snapshot, nil
	}

	return nil, apperrors.ErrTemporarilyUnavailable
}

// GetSnapshot returns the current account state without mutation.
func (t *TapUseCase) GetSnapshot(ctx context.Context, userLogin string) (*dto.AccountSnapshot, error) {
	account, err := t.accounts.SelectByLogin(ctx, userLogin)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	snapshot := dto.MapToAccountSnapshot(*account, "")
	return &snapshot, nil
}
