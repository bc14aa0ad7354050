package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/middleware"
	"github.com/growclear66-coder/EAARNbIT/internal/tap/handler/dto"
)

// TapService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_tap_service.go -package=mock github.com/growclear66-coder/EAARNbIT/internal/tap/handler TapService
type TapService interface {
	RegisterTaps(ctx context.Context, userLogin string, count int) (*dto.AccountSnapshot, error)
	GetSnapshot(ctx context.Context, userLogin string) (*dto.AccountSnapshot, error)
}

type TapHandler struct {
	tapService TapService
	logger     *zap.Logger
	jwtAuth    *middleware.JWTAuth
}

func NewTapHandler(e *echo.Echo, service TapService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *TapHandler {
	handler := &TapHandler{
		tapService: service,
		logger:     logger,
		jwtAuth:    jwtAuth,
	}

	protectedTaps := e.Group("/api/user", jwtAuth.JWTAuth())
	protectedTaps.POST("/taps", handler.RegisterTaps)
	protectedTaps.GET("/balance", handler.GetBalance)

	return handler
}

// @Summary       Register a batch of taps
// @Description   Credit a batched tap count to the coin accumulator and return the committed snapshot.
// @Tags          Tap API
// @Accept        json
// @Produce       json
// @Param         taps   body       dto.TapRequest   true   "Accumulated tap count since the last flush."
// @Success       200    {object}   dto.AccountSnapshot
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       429
// @Failure       500
// @Failure       503
// @Security      JWT
// @Router        /api/user/taps [post]
func (h *TapHandler) RegisterTaps(c echo.Context) error {
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

	request := new(dto.TapRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	snapshot, err := h.tapService.RegisterTaps(c.Request().Context(), userLogin, request.Count)

	switch {
	case errors.Is(err, apperrors.ErrInvalidTapCount):
		h.logger.Warn("Bad Request: invalid tap count", zap.Error(err))
		return c.String(http.StatusBadRequest, "Invalid request data")
	case errors.Is(err, apperrors.ErrSuspiciousActivity):
		h.logger.Warn("Suspicious batch rejected", zap.String("userLogin", userLogin), zap.Int("count", request.Count))
		return c.String(http.StatusBadRequest, "Suspicious activity detected")
	case errors.Is(err, apperrors.ErrAccountBlocked):
		h.logger.Warn("Blocked account tapped", zap.String("userLogin", userLogin))
		return c.NoContent(http.StatusForbidden)
	case errors.Is(err, apperrors.ErrAccountNotFound):
		h.logger.Warn("Account not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrCooldownActive):
		h.logger.Info("Cooldown active", zap.String("userLogin", userLogin))
		return c.String(http.StatusTooManyRequests, "Cooldown active")
	case errors.Is(err, apperrors.ErrTemporarilyUnavailable):
		h.logger.Warn("Retry budget exhausted", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	case err != nil:
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// @Summary       Get account snapshot
// @Description   Get the current balance, coin accumulator and session state.
// @Tags          Tap API
// @Produce       json
// @Success       200    {object}   dto.AccountSnapshot
// @Failure       401
// @Failure       404
// @Failure       500
// @Security      JWT
// @Router        /api/user/balance [get]
func (h *TapHandler) GetBalance(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	snapshot, err := h.tapService.GetSnapshot(c.Request().Context(), userLogin)

	if errors.Is(err, apperrors.ErrAccountNotFound) {
		h.logger.Warn("Account not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to get snapshot", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, snapshot)
}
