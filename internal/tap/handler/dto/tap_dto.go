package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/growclear66-coder/EAARNbIT/internal/account/model"
)

type TapRequest struct {
	Count int `json:"count" validate:"required,gte=1"`
}

// AccountSnapshot is the post-transaction view of the account. The client
// treats it as authoritative and discards its own optimistic projection.
type AccountSnapshot struct {
	Balance       decimal.Decimal `json:"balance"`
	TotalEarned   decimal.Decimal `json:"total_earned"`
	Coins         int64           `json:"coins"`
	SessionTaps   int             `json:"session_taps"`
	CooldownUntil *time.Time      `json:"cooldown_until,omitempty"`
	Advisory      string          `json:"advisory,omitempty"`
}

func MapToAccountSnapshot(account model.Account, advisory string) AccountSnapshot {
	return AccountSnapshot{
		Balance:       account.Balance,
		TotalEarned:   account.TotalEarned,
		Coins:         account.Coins,
		SessionTaps:   account.SessionTaps,
		CooldownUntil: account.CooldownUntil,
		Advisory:      advisory,
	}
}
