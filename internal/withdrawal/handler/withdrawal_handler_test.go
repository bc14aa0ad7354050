package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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
	"github.com/growclear66-coder/EAARNbIT/internal/user/model"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
	"github.com/growclear66-coder/EAARNbIT/internal/withdrawal/handler/dto"
)

var cfgMock = &config.Config{
	Address:     "localhost:7000",
	DatabaseURI: "user=postgres password=postgres host=localhost database=earnbit sslmode=disable",
	Secret:      "supersecretkey",
	TokenName:   "token",
}

type WithdrawalHandlersSuite struct {
	suite.Suite
	h                 *WithdrawalHandler
	withdrawalService *mock.MockWithdrawalService
	echo              *echo.Echo
	ctrl              *gomock.Controller
	jwtManager        *utils.JWTManager
}

func TestWithdrawalHandlersSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalHandlersSuite))
}

func (s *WithdrawalHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	jwtManager := utils.InitJWTManager(cfgMock.TokenName, cfgMock.Secret, logger)
	jwtAuth := middleware.InitJWTAuth(jwtManager, logger)
	s.jwtManager = jwtManager
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.withdrawalService = mock.NewMockWithdrawalService(s.ctrl)
	s.h = NewWithdrawalHandler(s.echo, s.withdrawalService, logger, jwtAuth)
}

func (s *WithdrawalHandlersSuite) TestCreateWithdrawal() {
	login := "awesome_login"

	cookie, errCookie := s.createCookie(login, model.RoleUser)
	require.NoError(s.T(), errCookie)

	validCreateRequest := dto.WithdrawalCreateRequest{
		Amount:      decimal.NewFromInt(150),
		Destination: "card-1234",
	}

	validReq, errMarshal := json.Marshal(validCreateRequest)
	require.NoError(s.T(), errMarshal)

	invalidCreateRequest := dto.WithdrawalCreateRequest{
		Amount: decimal.NewFromInt(150),
	}

	invalidReq, errMarshal := json.Marshal(invalidCreateRequest)
	require.NoError(s.T(), errMarshal)

	testCases := []struct {
		name         string
		method       string
		header       http.Header
		cookie       *http.Cookie
		path         string
		prepare      func()
		expectedCode int
		body         string
	}{
		{
			name:   "Unauthorized - 401",
			method: http.MethodPost,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnauthorized,
			body:         string(validReq),
		},
		{
			name:   "UnsupportedMediaType - 415",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {""}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnsupportedMediaType,
			body:         string(validReq),
		},
		{
			name:   "Bad Request - 400",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
			body:         string(invalidReq),
		},
		{
			name:   "Below minimum - 400",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(apperrors.ErrBelowMinWithdrawal)
			},
			expectedCode: http.StatusBadRequest,
			body:         string(validReq),
		},
		{
			name:   "PaymentRequired - 402",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(apperrors.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
			body:         string(validReq),
		},
		{
			name:   "Blocked account - 403",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(apperrors.ErrAccountBlocked)
			},
			expectedCode: http.StatusForbidden,
			body:         string(validReq),
		},
		{
			name:   "ServiceUnavailable - 503",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(apperrors.ErrTemporarilyUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
			body:         string(validReq),
		},
		{
			name:   "InternalServerError - 500",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
			body:         string(validReq),
		},
		{
			name:   "Success - 200",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().Create(gomock.Any(), login, gomock.Any(), "card-1234").Times(1).Return(nil)
			},
			expectedCode: http.StatusOK,
			body:         string(validReq),
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
		})
	}
}

func (s *WithdrawalHandlersSuite) TestGetWithdrawals() {
	login := "awesome_login"

	cookie, errCookie := s.createCookie(login, model.RoleUser)
	require.NoError(s.T(), errCookie)

	withdrawalResponse := []dto.WithdrawalResponse{
		{
			ID:           "c56c2a2f-96d1-4a2f-a6b3-8f1d7e9b4f22",
			AccountID:    "7cb1a353-2c2b-4a2a-9d43-d9b5d2a8a9f1",
			AccountLogin: login,
			Amount:       decimal.NewFromInt(150),
			Destination:  "card-1234",
			Status:       "PENDING",
			CreatedAt:    time.Now().Format(time.RFC3339),
		},
	}

	response, errMarshal := json.Marshal(withdrawalResponse)
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
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().GetByUser(gomock.Any(), login).Times(0)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "NoContent - 204",
			method: http.MethodGet,
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().GetByUser(gomock.Any(), login).Times(1).Return(nil, apperrors.ErrNoWithdrawals)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "InternalServerError - 500",
			method: http.MethodGet,
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().GetByUser(gomock.Any(), login).Times(1).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:   "Success - 200",
			method: http.MethodGet,
			cookie: cookie,
			path:   "http://localhost:7000/api/user/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().GetByUser(gomock.Any(), login).Times(1).Return(withdrawalResponse, nil)
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
				var result []dto.WithdrawalResponse
				jsonErr := json.Unmarshal(w.Body.Bytes(), &result)
				require.NoError(t, jsonErr)

				var expected []dto.WithdrawalResponse
				jsonErrExp := json.Unmarshal(test.expectedBody, &expected)
				require.NoError(t, jsonErrExp)

				assert.Equal(t, expected, result)
			}
		})
	}
}

func (s *WithdrawalHandlersSuite) TestProcessWithdrawal() {
	adminCookie, errCookie := s.createCookie("admin_login", middleware.RoleAdmin)
	require.NoError(s.T(), errCookie)

	userCookie, errCookie := s.createCookie("awesome_login", model.RoleUser)
	require.NoError(s.T(), errCookie)

	approve := true
	validProcessRequest := dto.WithdrawalProcessRequest{Approve: &approve}

	validReq, errMarshal := json.Marshal(validProcessRequest)
	require.NoError(s.T(), errMarshal)

	requestID := "c56c2a2f-96d1-4a2f-a6b3-8f1d7e9b4f22"

	testCases := []struct {
		name         string
		method       string
		header       http.Header
		cookie       *http.Cookie
		path         string
		prepare      func()
		expectedCode int
		body         string
	}{
		{
			name:   "Unauthorized - 401",
			method: http.MethodPost,
			path:   "http://localhost:7000/api/admin/withdrawals/" + requestID,
			prepare: func() {
				s.withdrawalService.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnauthorized,
			body:         string(validReq),
		},
		{
			name:   "Forbidden for non-admin - 403",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: userCookie,
			path:   "http://localhost:7000/api/admin/withdrawals/" + requestID,
			prepare: func() {
				s.withdrawalService.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusForbidden,
			body:         string(validReq),
		},
		{
			name:   "Bad Request - 400",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: adminCookie,
			path:   "http://localhost:7000/api/admin/withdrawals/" + requestID,
			prepare: func() {
				s.withdrawalService.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
			body:         "{}",
		},
		{
			name:   "NotFound - 404",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: adminCookie,
			path:   "http://localhost:7000/api/admin/withdrawals/" + requestID,
			prepare: func() {
				s.withdrawalService.EXPECT().Process(gomock.Any(), requestID, true).Times(1).Return(apperrors.ErrWithdrawalNotFound)
			},
			expectedCode: http.StatusNotFound,
			body:         string(validReq),
		},
		{
			name:   "AlreadyProcessed - 409",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: adminCookie,
			path:   "http://localhost:7000/api/admin/withdrawals/" + requestID,
			prepare: func() {
				s.withdrawalService.EXPECT().Process(gomock.Any(), requestID, true).Times(1).Return(apperrors.ErrAlreadyProcessed)
			},
			expectedCode: http.StatusConflict,
			body:         string(validReq),
		},
		{
			name:   "RefundTargetMissing - 409",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: adminCookie,
			path:   "http://localhost:7000/api/admin/withdrawals/" + requestID,
			prepare: func() {
				s.withdrawalService.EXPECT().Process(gomock.Any(), requestID, true).Times(1).Return(apperrors.ErrRefundTargetMissing)
			},
			expectedCode: http.StatusConflict,
			body:         string(validReq),
		},
		{
			name:   "ServiceUnavailable - 503",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: adminCookie,
			path:   "http://localhost:7000/api/admin/withdrawals/" + requestID,
			prepare: func() {
				s.withdrawalService.EXPECT().Process(gomock.Any(), requestID, true).Times(1).Return(apperrors.ErrTemporarilyUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
			body:         string(validReq),
		},
		{
			name:   "Success - 200",
			method: http.MethodPost,
			header: map[string][]string{"Content-Type": {"application/json"}},
			cookie: adminCookie,
			path:   "http://localhost:7000/api/admin/withdrawals/" + requestID,
			prepare: func() {
				s.withdrawalService.EXPECT().Process(gomock.Any(), requestID, true).Times(1).Return(nil)
			},
			expectedCode: http.StatusOK,
			body:         string(validReq),
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
		})
	}
}

func (s *WithdrawalHandlersSuite) TestGetAllWithdrawals() {
	adminCookie, errCookie := s.createCookie("admin_login", middleware.RoleAdmin)
	require.NoError(s.T(), errCookie)

	userCookie, errCookie := s.createCookie("awesome_login", model.RoleUser)
	require.NoError(s.T(), errCookie)

	testCases := []struct {
		name         string
		method       string
		cookie       *http.Cookie
		path         string
		prepare      func()
		expectedCode int
	}{
		{
			name:   "Forbidden for non-admin - 403",
			method: http.MethodGet,
			cookie: userCookie,
			path:   "http://localhost:7000/api/admin/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().GetAll(gomock.Any()).Times(0)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Success - 200",
			method: http.MethodGet,
			cookie: adminCookie,
			path:   "http://localhost:7000/api/admin/withdrawals",
			prepare: func() {
				s.withdrawalService.EXPECT().GetAll(gomock.Any()).Times(1).Return([]dto.WithdrawalResponse{}, nil)
			},
			expectedCode: http.StatusOK,
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
		})
	}
}

func (s *WithdrawalHandlersSuite) createCookie(login string, role string) (*http.Cookie, error) {
	token, err := s.jwtManager.BuildJWTString(login, role)

	cookie := &http.Cookie{
		Name:  s.jwtManager.TokenName,
		Value: token,
	}

	return cookie, err
}
