package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/middleware"
	"github.com/growclear66-coder/EAARNbIT/internal/stats/handler/dto"
)

// StatsService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_stats_service.go -package=mock github.com/growclear66-coder/EAARNbIT/internal/stats/handler StatsService
type StatsService interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type StatsHandler struct {
	statsService StatsService
	logger       *zap.Logger
	jwtAuth      *middleware.JWTAuth
}

func NewStatsHandler(e *echo.Echo, service StatsService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *StatsHandler {
	handler := &StatsHandler{
		statsService: service,
		logger:       logger,
		jwtAuth:      jwtAuth,
	}

	adminStats := e.Group("/api/admin", jwtAuth.JWTAuth(), jwtAuth.AdminAuth())
	adminStats.GET("/stats", handler.GetDashboardStats)

	return handler
}

// @Summary       Dashboard stats
// @Description   Aggregate counters for the admin dashboard. Best-effort, may lag live state.
// @Tags          Admin API
// @Produce       json
// @Success       200    {object}    dto.DashboardStatsResponse
// @Failure       401
// @Failure       403
// @Failure       500
// @Security      JWT
// @Router        /api/admin/stats [get]
func (h *StatsHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.statsService.GetDashboardStats(c.Request().Context())
	if err != nil {
		h.logger.Error("Internal server error: unable to get stats", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, stats)
}
