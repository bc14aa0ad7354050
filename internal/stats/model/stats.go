package model

import "github.com/shopspring/decimal"

type DashboardStats struct {
	TotalUsers         int64
	TotalBalance       decimal.Decimal
	TotalWithdrawals   int64
	PendingWithdrawals int64
}
