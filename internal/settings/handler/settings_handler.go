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
	"github.com/growclear66-coder/EAARNbIT/internal/settings/handler/dto"
)

// SettingsService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_settings_service.go -package=mock github.com/growclear66-coder/EAARNbIT/internal/settings/handler SettingsService
type SettingsService interface {
	GetConfig(ctx context.Context) (*dto.SettingsResponse, error)
	UpdateConfig(ctx context.Context, request dto.SettingsUpdateRequest) error
}

type SettingsHandler struct {
	settingsService SettingsService
	logger          *zap.Logger
	jwtAuth         *middleware.JWTAuth
}

func NewSettingsHandler(e *echo.Echo, service SettingsService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *SettingsHandler {
	handler := &SettingsHandler{
		settingsService: service,
		logger:          logger,
		jwtAuth:         jwtAuth,
	}

	adminConfig := e.Group("/api/admin", jwtAuth.JWTAuth(), jwtAuth.AdminAuth())
	adminConfig.GET("/config", handler.GetConfig)
	adminConfig.PUT("/config", handler.UpdateConfig)

	return handler
}

// @Summary       Get system config
// @Tags          Admin API
// @Produce       json
// @Success       200    {object}    dto.SettingsResponse
// @Failure       401
// @Failure       403
// @Failure       500
// @Security      JWT
// @Router        /api/admin/config [get]
func (h *SettingsHandler) GetConfig(c echo.Context) error {
	settings, err := h.settingsService.GetConfig(c.Request().Context())
	if err != nil {
		h.logger.Error("Internal server error: unable to get config", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, settings)
}

// @Summary       Update system config
// @Tags          Admin API
// @Accept        json
// @Param         config   body    dto.SettingsUpdateRequest    true    "New config values."
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       500
// @Security      JWT
// @Router        /api/admin/config [put]
func (h *SettingsHandler) UpdateConfig(c echo.Context) error {
	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.SettingsUpdateRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	err := h.settingsService.UpdateConfig(c.Request().Context(), *request)

	if errors.Is(err, apperrors.ErrInvalidAmount) {
		h.logger.Warn("Bad Request: invalid amount", zap.Error(err))
		return c.String(http.StatusBadRequest, err.Error())
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to update config", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
