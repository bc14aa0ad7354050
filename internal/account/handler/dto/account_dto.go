package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/growclear66-coder/EAARNbIT/internal/account/model"
)

type AccountResponse struct {
	ID            string          `json:"id"`
	Login         string          `json:"login"`
	Balance       decimal.Decimal `json:"balance"`
	TotalEarned   decimal.Decimal `json:"total_earned"`
	Coins         int64           `json:"coins"`
	SessionTaps   int             `json:"session_taps"`
	CooldownUntil string          `json:"cooldown_until,omitempty"`
	IsBlocked     bool            `json:"is_blocked"`
	CreatedAt     string          `json:"created_at"`
}

func MapToAccountResponse(account model.Account) AccountResponse {
	response := AccountResponse{
		ID:          account.ID,
		Login:       account.UserLogin,
		Balance:     account.Balance,
		TotalEarned: account.TotalEarned,
		Coins:       account.Coins,
		SessionTaps: account.SessionTaps,
		IsBlocked:   account.IsBlocked,
		CreatedAt:   account.CreatedAt.Format(time.RFC3339),
	}
	if account.CooldownUntil != nil {
		response.CooldownUntil = account.CooldownUntil.Format(time.RFC3339)
	}
	return response
}

type BlockResponse struct {
	ID        string `json:"id"`
	IsBlocked bool   `json:"is_blocked"`
}
