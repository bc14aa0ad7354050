package dto

import "github.com/shopspring/decimal"

type SettingsResponse struct {
	MinWithdrawalAmount decimal.Decimal `json:"min_withdrawal_amount"`
}

type SettingsUpdateRequest struct {
	MinWithdrawalAmount decimal.Decimal `json:"min_withdrawal_amount" validate:"required"`
}
