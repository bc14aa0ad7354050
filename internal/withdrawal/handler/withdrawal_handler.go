package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/middleware"
	"github.com/growclear66-coder/EAARNbIT/internal/withdrawal/handler/dto"
)

// WithdrawalService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_withdrawal_service.go -package=mock github.com/growclear66-coder/EAARNbIT/internal/withdrawal/handler WithdrawalService
type WithdrawalService interface {
	Create(ctx context.Context, userLogin string, amount decimal.Decimal, destination string) error
	Process(ctx context.Context, requestID string, approve bool) error
	GetByUser(ctx context.Context, userLogin string) ([]dto.WithdrawalResponse, error)
	GetAll(ctx context.Context) ([]dto.WithdrawalResponse, error)
}

type WithdrawalHandler struct {
	withdrawalService WithdrawalService
	logger            *zap.Logger
	jwtAuth           *middleware.JWTAuth
}

func NewWithdrawalHandler(e *echo.Echo, service WithdrawalService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *WithdrawalHandler {
	handler := &WithdrawalHandler{
		withdrawalService: service,
		logger:            logger,
		jwtAuth:           jwtAuth,
	}

	protectedWithdrawals := e.Group("/api/user", jwtAuth.JWTAuth())
	protectedWithdrawals.POST("/withdrawals", handler.CreateWithdrawal)
	protectedWithdrawals.GET("/withdrawals", handler.GetWithdrawals)

	adminWithdrawals := e.Group("/api/admin", jwtAuth.JWTAuth(), jwtAuth.AdminAuth())
	adminWithdrawals.GET("/withdrawals", handler.GetAllWithdrawals)
	adminWithdrawals.POST("/withdrawals/:id", handler.ProcessWithdrawal)

	return handler
}

// @Summary       Create withdrawal request
// @Description   Debit the balance and create a PENDING withdrawal request.
// @Tags          Withdrawal API
// @Accept        json
// @Param         withdrawal   body       dto.WithdrawalCreateRequest   true   "Amount and payout destination."
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       402
// @Failure       403
// @Failure       500
// @Failure       503
// @Security      JWT
// @Router        /api/user/withdrawals [post]
func (h *WithdrawalHandler) CreateWithdrawal(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.WithdrawalCreateRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	err := h.withdrawalService.Create(c.Request().Context(), userLogin, request.Amount, request.Destination)

	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrBelowMinWithdrawal):
		h.logger.Warn("Bad Request: invalid amount", zap.Error(err))
		return c.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrAccountBlocked):
		h.logger.Warn("Blocked account withdrawal", zap.String("userLogin", userLogin))
		return c.NoContent(http.StatusForbidden)
	case errors.Is(err, apperrors.ErrAccountNotFound):
		h.logger.Warn("Account not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		h.logger.Warn("Bad Request: insufficient funds", zap.Error(err))
		return c.NoContent(http.StatusPaymentRequired)
	case errors.Is(err, apperrors.ErrTemporarilyUnavailable):
		h.logger.Warn("Retry budget exhausted", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	case err != nil:
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// @Summary       Get withdrawals list
// @Description   Get the user's withdrawal requests, newest first.
// @Tags          Withdrawal API
// @Produce       json
// @Success       200    {array}     dto.WithdrawalResponse
// @Success       204
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	withdrawals, err := h.withdrawalService.GetByUser(c.Request().Context(), userLogin)
	if errors.Is(err, apperrors.ErrNoWithdrawals) {
		h.logger.Info("No withdrawals found", zap.Error(err))
		return c.NoContent(http.StatusNoContent)
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to get withdrawals", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, withdrawals)
}

// @Summary       List all withdrawal requests
// @Description   Administrative view of every withdrawal request, newest first.
// @Tags          Admin API
// @Produce       json
// @Success       200    {array}     dto.WithdrawalResponse
// @Failure       401
// @Failure       403
// @Failure       500
// @Security      JWT
// @Router        /api/admin/withdrawals [get]
func (h *WithdrawalHandler) GetAllWithdrawals(c echo.Context) error {
	withdrawals, err := h.withdrawalService.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Internal server error: unable to get withdrawals", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, withdrawals)
}

// @Summary       Process withdrawal request
// @Description   Approve or reject a PENDING withdrawal; rejection refunds the debited amount.
// @Tags          Admin API
// @Accept        json
// @Param         id         path    string                         true    "Withdrawal request id."
// @Param         decision   body    dto.WithdrawalProcessRequest   true    "Approve or reject."
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       404
// @Failure       409
// @Failure       500
// @Failure       503
// @Security      JWT
// @Router        /api/admin/withdrawals/{id} [post]
func (h *WithdrawalHandler) ProcessWithdrawal(c echo.Context) error {
	requestID := c.Param("id")

	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.WithdrawalProcessRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	err := h.withdrawalService.Process(c.Request().Context(), requestID, *request.Approve)

	switch {
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		h.logger.Warn("Withdrawal not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrAlreadyProcessed):
		h.logger.Warn("Withdrawal already processed", zap.String("requestID", requestID))
		return c.NoContent(http.StatusConflict)
	case errors.Is(err, apperrors.ErrRefundTargetMissing):
		h.logger.Error("Refund target missing, request kept pending", zap.String("requestID", requestID))
		return c.String(http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrTemporarilyUnavailable):
		h.logger.Warn("Retry budget exhausted", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	case err != nil:
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
