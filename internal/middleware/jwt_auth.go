package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

const RoleAdmin = "ADMIN"

type JWTAuth struct {
	jwtManager *utils.JWTManager
	logger     *zap.Logger
}

func InitJWTAuth(jwtManager *utils.JWTManager, logger *zap.Logger) *JWTAuth {
	j := &JWTAuth{
		jwtManager: jwtManager,
		logger:     logger,
	}
	return j
}

func (j *JWTAuth) JWTAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Request().Cookie(j.jwtManager.TokenName)
			if err != nil {
				j.logger.Info("authentification failed", zap.Error(err))
				return c.NoContent(http.StatusUnauthorized)
			}
			userLogin, userRole, err := j.jwtManager.GetUserClaims(cookie.Value)
			if err != nil {
				j.logger.Info("authentification failed", zap.Error(err))
				return c.NoContent(http.StatusUnauthorized)
			}
			c.Set("userLogin", userLogin)
			c.Set("userRole", userRole)
			j.logger.Info("authenticated", zap.String("userLogin", userLogin))
			return next(c)
		}
	}
}

func (j *JWTAuth) AdminAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("userRole").(string)
			if !ok || role != RoleAdmin {
				j.logger.Info("admin access denied", zap.String("userRole", role))
				return c.NoContent(http.StatusForbidden)
			}
			return next(c)
		}
	}
}
