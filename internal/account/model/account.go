package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the ledger record for one user: spendable balance, the coin
// accumulator and the session/cooldown counters guarding tap credits.
type Account struct {
	ID            string          `db:"id"`
	UserLogin     string          `db:"user_login"`
	Balance       decimal.Decimal `db:"balance"`
	TotalEarned   decimal.Decimal `db:"total_earned"`
	Coins         int64           `db:"coins"`
	SessionTaps   int             `db:"session_taps"`
	CooldownUntil *time.Time      `db:"cooldown_until"`
	IsBlocked     bool            `db:"is_blocked"`
	Version       int64           `db:"version"`
	CreatedAt     time.Time       `db:"created_at"`
}
