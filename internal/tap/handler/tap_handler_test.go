package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/config"
	"github.com/growclear66-coder/EAARNbIT/internal/middleware"
	mock "github.com/growclear66-coder/EAARNbIT/internal/mocks"
	"github.com/growclear66-coder/EAARNbIT/internal/tap/handler/dto"
	"github.com/growclear66-coder/EAARNbIT/internal/user/model"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

var cfgMock = &config.Config{
	Address:     "localhost:7000",
	DatabaseURI: "user=postgres password=postgres host=localhost database=earnbit sslmode=disable",
	Secret:      "supersecretkey",
	TokenName:   "token",
}

type TapHandlersSuite struct {
	suite.Suite
	h          *TapHandler
	tapService *mock.MockTapService
	echo       *echo.Echo
	ctrl       *gomock.Controller
	jwtManager *utils.JWTManager
}

func TestTapHandlersSuite(t *testing.T) {
	suite.Run(t, new(TapHandlersSuite))
}

func (s *TapHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	jwtManager := utils.InitJWTManager(cfgMock.TokenName, cfgMock.Secret, logger)
	jwtAuth := middleware.InitJWTAuth(jwtManager, logger)
	s.jwtManager = jwtManager
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.tapService = mock.NewMockTapService(s.ctrl)
	s.h = NewTapHandler(s.echo, s.tapService, logger, jwtAuth)
}

func (s *TapHandlersSuite) TestRegisterTaps() {
	login := "awesome_login"

	cookie, errCookie := s.createCookie(login, model.RoleUser)
	require.NoError(s.T(), errCookie)

	snapshot := &dto.AccountSnapshot{
		Balance:     decimal.NewFromInt(5),
		TotalEarned: decimal.NewFromInt(5),
		Coins:       3,
		SessionTaps: 103,
		Advisory:    "1000 coins converted to 1 balance unit.",
	}

	response, errMarshal := json.Marshal(snapshot)
	require.NoError(s.T(), errMarshal)

	validRequest, errMarshal := json.Marshal(dto.TapRequest{Count: 5})
	require.NoError(s.T(), errMarshal)

	invalidRequest, errMarshal := json.Marshal(dto.TapRequest{Count: 0})
	require.NoError(s.T(), errMarshal)

	testCases := []struct {
		name         string
		method       string
		header       http.Header
		cookie       *http.Cookie
		path         string
		prepare      func()
		expectedCode int
		expectedBody []byte
		body         string
	}{
		{
			name:   "Unauthorized - 401",
			method: http.MethodPost,
			path:   "http://localhost:7000/api/user/taps",
			prepare: func() {
				s.tapService.EXPECT().RegisterTaps(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnauthorized,
			body:         string(validRequest),
		},
		{
			name:   "UnsupportedMediaType - 415",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {""}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/taps",
			prepare: func() {
				s.tapService.EXPECT().RegisterTaps(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnsupportedMediaType,
			body:         string(validRequest),
		},
		{
			name:   "Bad Request - 400",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/taps",
			prepare: func() {
				s.tapService.EXPECT().RegisterTaps(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
			body:         string(invalidRequest),
		},
		{
			name:   "Suspicious batch - 400",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/taps",
			prepare: func() {
				s.tapService.EXPECT().RegisterTaps(gomock.Any(), login, 5).Times(1).Return(nil, apperrors.ErrSuspiciousActivity)
			},
			expectedCode: http.StatusBadRequest,
			body:         string(validRequest),
		},
		{
			name:   "Blocked account - 403",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/taps",
			prepare: func() {
				s.tapService.EXPECT().RegisterTaps(gomock.Any(), login, 5).Times(1).Return(nil, apperrors.ErrAccountBlocked)
			},
			expectedCode: http.StatusForbidden,
			body:         string(validRequest),
		},
		{
			name:   "Cooldown active - 429",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/taps",
			prepare: func() {
				s.tapService.EXPECT().RegisterTaps(gomock.Any(), login, 5).Times(1).Return(nil, apperrors.ErrCooldownActive)
			},
			expectedCode: http.StatusTooManyRequests,
			body:         string(validRequest),
		},
		{
			name:   "ServiceUnavailable - 503",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/taps",
			prepare: func() {
				s.tapService.EXPECT().RegisterTaps(gomock.Any(), login, 5).Times(1).Return(nil, apperrors.ErrTemporarilyUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
			body:         string(validRequest),
		},
		{
			name:   "InternalServerError - 500",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/taps",
			prepare: func() {
				s.tapService.EXPECT().RegisterTaps(gomock.Any(), login, 5).Times(1).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
			body:         string(validRequest),
		},
		{
			name:   "Success - 200",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/taps",
			prepare: func() {
				s.tapService.EXPECT().RegisterTaps(gomock.Any(), login, 5).Times(1).Return(snapshot, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: response,
			body:         string(validRequest),
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			if test.cookie != nil {
				request.AddCookie(test.cookie)
			}
			request.Header.Set("Content-Type", test.header.Get("Content-Type"))

			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
			if test.expectedBody != nil {
				var result dto.AccountSnapshot
				jsonErr := json.Unmarshal(w.Body.Bytes(), &result)
				require.NoError(t, jsonErr)

				var expected dto.AccountSnapshot
				jsonErrExp := json.Unmarshal(test.expectedBody, &expected)
				require.NoError(t, jsonErrExp)

				assert.Equal(t, expected, result)
			}
		})
	}
}

func (s *TapHandlersSuite) TestGetBalance() {
	login := "awesome_login"

	cookie, errCookie := s.createCookie(login, model.RoleUser)
	require.NoError(s.T(), errCookie)

	snapshot := &dto.AccountSnapshot{
		Balance:     decimal.NewFromInt(100),
		TotalEarned: decimal.NewFromInt(120),
		Coins:       450,
		SessionTaps: 450,
	}

	response, errMarshal := json.Marshal(snapshot)
	require.NoError(s.T(), errMarshal)

	testCases := []struct {
		name         string
		method       string
		cookie       *http.Cookie
		path         string
		prepare      func()
		expectedCode int
		expectedBody []byte
	}{
		{
			name:   "Unauthorized - 401",
			method: http.MethodGet,
			path:   "http://localhost:7000/api/user/balance",
			prepare: func() {
				s.tapService.EXPECT().GetSnapshot(gomock.Any(), login).Times(0)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "NotFound - 404",
			method: http.MethodGet,
			cookie: cookie,
			path:   "http://localhost:7000/api/user/balance",
			prepare: func() {
				s.tapService.EXPECT().GetSnapshot(gomock.Any(), login).Times(1).Return(nil, apperrors.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "InternalServerError - 500",
			method: http.MethodGet,
			cookie: cookie,
			path:   "http://localhost:7000/api/user/balance",
			prepare: func() {
				s.tapService.EXPECT().GetSnapshot(gomock.Any(), login).Times(1).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:   "Success - 200",
			method: http.MethodGet,
			cookie: cookie,
			path:   "http://localhost:7000/api/user/balance",
			prepare: func() {
				s.tapService.EXPECT().GetSnapshot(gomock.Any(), login).Times(1).Return(snapshot, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: response,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(test.method, test.path, nil)
			if test.cookie != nil {
				request.AddCookie(test.cookie)
			}

			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
			if test.expectedBody != nil {
				var result dto.AccountSnapshot
				jsonErr := json.Unmarshal(w.Body.Bytes(), &result)
				require.NoError(t, jsonErr)

				var expected dto.AccountSnapshot
				jsonErrExp := json.Unmarshal(test.expectedBody, &expected)
				require.NoError(t, jsonErrExp)

				assert.Equal(t, expected, result)
			}
		})
	}
}

func (s *TapHandlersSuite) createCookie(login string, role string) (*http.Cookie, error) {
	token, err := s.jwtManager.BuildJWTString(login, role)

	cookie := &http.Cookie{
		Name:  s.jwtManager.TokenName,
		Value: token,
	}

	return cookie, err
}
