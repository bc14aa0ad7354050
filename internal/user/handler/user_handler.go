package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/user/handler/dto"
	"github.com/growclear66-coder/EAARNbIT/internal/user/model"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

// UserService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_user_service.go -package=mock github.com/growclear66-coder/EAARNbIT/internal/user/handler UserService
type UserService interface {
	Register(ctx context.Context, request dto.UserRegisterRequest) error
	Login(ctx context.Context, request dto.UserLoginRequest) (*model.User, error)
}

type UserHandler struct {
	userService UserService
	jwtManager  *utils.JWTManager
	logger      *zap.Logger
}

func NewUserHandler(e *echo.Echo, service UserService, jwtManager *utils.JWTManager, logger *zap.Logger) *UserHandler {
	handler := &UserHandler{
		userService: service,
		jwtManager:  jwtManager,
		logger:      logger,
	}

	e.POST("/api/user/register", handler.RegisterUser)
	e.POST("/api/user/login", handler.LoginUser)

	return handler
}

// @Summary       User registration
// @Description   User registration by login and password, provisions a zeroed ledger account.
// @Tags          User API
// @Accept        json
// @Param         user   body       dto.UserRegisterRequest   true   "User login and password."
// @Success       200
// @Failure       400
// @Failure       409
// @Failure       500
// @Router        /api/user/register [post]
func (h *UserHandler) RegisterUser(c echo.Context) error {
	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.UserRegisterRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	err := h.userService.Register(c.Request().Context(), *request)

	if errors.Is(err, apperrors.ErrLoginAlreadyExists) {
		h.logger.Error("Non unique login", zap.Error(err))
		return c.NoContent(http.StatusConflict)
	}

	if err != nil {
		h.logger.Error("Unable to register user", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	errJWT := h.setAuthorizationCookie(c, request.Login, model.RoleUser)
	if errJWT != nil {
		h.logger.Error("Unable to set authorization cookie", zap.Error(errJWT))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// @Summary       User authorization
// @Description   User authorization by login and password.
// @Tags          User API
// @Accept        json
// @Param         user   body       dto.UserLoginRequest   true   "User login and password."
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       500
// @Router        /api/user/login [post]
func (h *UserHandler) LoginUser(c echo.Context) error {
	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.UserLoginRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	user, err := h.userService.Login(c.Request().Context(), *request)

	if errors.Is(err, apperrors.ErrInvalidPassword) {
		h.logger.Error("Invalid password", zap.Error(err))
		return c.NoContent(http.StatusUnauthorized)
	}

	if errors.Is(err, apperrors.ErrUserNotFound) {
		h.logger.Error("User not found", zap.Error(err))
		return c.NoContent(http.StatusUnauthorized)
	}

	if err != nil {
		h.logger.Error("Unable to login user", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	errCookie := h.setAuthorizationCookie(c, user.Login, user.Role)
	if errCookie != nil {
		h.logger.Error("Unable to set authorization cookie", zap.Error(errCookie))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

func (h *UserHandler) setAuthorizationCookie(c echo.Context, login string, role string) error {
	token, err := h.jwtManager.BuildJWTString(login, role)
	if err != nil {
		h.logger.Error("Unable to create token", zap.Error(err))
		return err
	}

	cookie := &http.Cookie{
		Name:  h.jwtManager.TokenName,
		Value: token,
	}
	c.SetCookie(cookie)

	return nil
}
