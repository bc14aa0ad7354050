package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Withdrawal is one payout request. It is created PENDING with the amount
// already debited from the account and moves exactly once to APPROVED or
// REJECTED; rejection credits the amount back.
type Withdrawal struct {
	ID           string          `db:"id"`
	AccountID    string          `db:"account_id"`
	AccountLogin string          `db:"account_login"`
	Amount       decimal.Decimal `db:"amount"`
	Destination  string          `db:"destination"`
	Status       Status          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
}
