package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/account/handler/dto"
	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/middleware"
)

// AccountService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_account_service.go -package=mock github.com/growclear66-coder/EAARNbIT/internal/account/handler AccountService
type AccountService interface {
	GetAll(ctx context.Context) ([]dto.AccountResponse, error)
	ToggleBlock(ctx context.Context, accountID string) (bool, error)
}

type AccountHandler struct {
	accountService AccountService
	logger         *zap.Logger
	jwtAuth        *middleware.JWTAuth
}

func NewAccountHandler(e *echo.Echo, service AccountService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *AccountHandler {
	handler := &AccountHandler{
		accountService: service,
		logger:         logger,
		jwtAuth:        jwtAuth,
	}

	adminAccounts := e.Group("/api/admin", jwtAuth.JWTAuth(), jwtAuth.AdminAuth())
	adminAccounts.GET("/users", handler.GetAccounts)
	adminAccounts.POST("/users/:id/block", handler.ToggleBlock)

	return handler
}

// @Summary       List accounts
// @Description   Get every user ledger account for administrative review.
// @Tags          Admin API
// @Produce       json
// @Success       200    {array}    dto.AccountResponse
// @Failure       401
// @Failure       403
// @Failure       500
// @Security      JWT
// @Router        /api/admin/users [get]
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	accounts, err := h.accountService.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Internal server error: unable to get accounts", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, accounts)
}

// @Summary       Block or unblock an account
// @Description   Toggle the block flag on a user ledger account.
// @Tags          Admin API
// @Produce       json
// @Param         id    path    string    true    "Account id."
// @Success       200    {object}    dto.BlockResponse
// @Failure       401
// @Failure       403
// @Failure       404
// @Failure       500
// @Security      JWT
// @Router        /api/admin/users/{id}/block [post]
func (h *AccountHandler) ToggleBlock(c echo.Context) error {
	accountID := c.Param("id")

	blocked, err := h.accountService.ToggleBlock(c.Request().Context(), accountID)

	if errors.Is(err, apperrors.ErrAccountNotFound) {
		h.logger.Warn("Account not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if errors.Is(err, apperrors.ErrTemporarilyUnavailable) {
		h.logger.Warn("Retry budget exhausted", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to toggle block", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, dto.BlockResponse{ID: accountID, IsBlocked: blocked})
}
