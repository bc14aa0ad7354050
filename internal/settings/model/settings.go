package model

import "github.com/shopspring/decimal"

type Settings struct {
	MinWithdrawalAmount decimal.Decimal `db:"min_withdrawal_amount"`
}
