package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/growclear66-coder/EAARNbIT/internal/withdrawal/model"
)

type WithdrawalCreateRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
}

type WithdrawalProcessRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

type WithdrawalResponse struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	AccountLogin string          `json:"account_login"`
	Amount       decimal.Decimal `json:"amount"`
	Destination  string          `json:"destination"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
}

func MapToWithdrawalResponse(withdrawal model.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:           withdrawal.ID,
		AccountID:    withdrawal.AccountID,
		AccountLogin: withdrawal.AccountLogin,
		Amount:       withdrawal.Amount,
		Destination:  withdrawal.Destination,
		Status:       string(withdrawal.Status),
		CreatedAt:    withdrawal.CreatedAt.Format(time.RFC3339),
	}
}
