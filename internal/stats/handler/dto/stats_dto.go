package dto

import (
	"github.com/shopspring/decimal"

	"github.com/growclear66-coder/EAARNbIT/internal/stats/model"
)

type DashboardStatsResponse struct {
	TotalUsers         int64           `json:"total_users"`
	TotalBalance       decimal.Decimal `json:"total_balance"`
	TotalWithdrawals   int64           `json:"total_withdrawals"`
	PendingWithdrawals int64           `json:"pending_withdrawals"`
}

func MapToDashboardStatsResponse(stats model.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalUsers:         stats.TotalUsers,
		TotalBalance:       stats.TotalBalance,
		TotalWithdrawals:   stats.TotalWithdrawals,
		PendingWithdrawals: stats.PendingWithdrawals,
	}
}
