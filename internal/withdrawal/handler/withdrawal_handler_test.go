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

	"github.com/msavelyev/adledger/internal/apperrors"
	"github.com/msavelyev/adledger/internal/middleware"
	mock "github.com/msavelyev/adledger/internal/mocks"
	"github.com/msavelyev/adledger/internal/utils"
	"github.com/msavelyev/adledger/internal/withdrawal/handler/dto"
	"github.com/msavelyev/adledger/internal/withdrawal/model"
)

type WithdrawalHandlersSuite struct {
	suite.Suite
	h                 *WithdrawalHandler
	withdrawalService *mock.MockWithdrawalService
	echo              *echo.Echo
	ctrl              *gomock.Controller
	jwtManager        *utils.JWTManager
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalHandlersSuite))
}

func (w *WithdrawalHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	jwtManager := utils.InitJWTManager("token", "supersecretkey", logger)
	jwtAuth := middleware.InitJWTAuth(jwtManager, logger)
	w.jwtManager = jwtManager
	w.ctrl = gomock.NewController(w.T())
	w.echo = echo.New()
	w.withdrawalService = mock.NewMockWithdrawalService(w.ctrl)
	w.h = NewWithdrawalHandler(w.echo, w.withdrawalService, logger, jwtAuth)
}

func (w *WithdrawalHandlersSuite) TestRequestWithdrawal() {
	withdrawalRequest := dto.WithdrawalRequest{
		Amount:      decimal.NewFromInt(100),
		Method:      "card",
		Destination: "2377225624",
	}

	validReq, errMarshal := json.Marshal(withdrawalRequest)
	require.NoError(w.T(), errMarshal)

	invalidWithdrawalRequest := dto.WithdrawalRequest{
		Method:      "card",
		Destination: "2377225624",
	}

	invalidReq, errMarshal := json.Marshal(invalidWithdrawalRequest)
	require.NoError(w.T(), errMarshal)

	withdrawalResponse := &dto.WithdrawalResponse{
		ID:          "9a6f1c2e-0b34-47f3-8f2c-6f1f0f9d11bb",
		Amount:      decimal.NewFromInt(100),
		Method:      "card",
		Destination: "2377225624",
		Status:      "pending",
		RequestedAt: time.Now().Format(time.RFC3339),
	}

	testCases := []struct {
		name         string
		method       string
		header       http.Header
		path         string
		prepare      func()
		expectedCode int
		body         string
	}{
		{
			name:   "UnsupportedMediaType - 415",
			method: http.MethodPost,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			header: map[string][]string{"Content-Type": {""}},
			prepare: func() {
				w.withdrawalService.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnsupportedMediaType,
			body:         string(validReq),
		},
		{
			name:   "Bad Request - 400",
			method: http.MethodPost,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			header: map[string][]string{"Content-Type": {"application/json"}},
			prepare: func() {
				w.withdrawalService.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
			body:         string(invalidReq),
		},
		{
			name:   "NotFound - 404",
			method: http.MethodPost,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			header: map[string][]string{"Content-Type": {"application/json"}},
			prepare: func() {
				w.withdrawalService.EXPECT().Request(gomock.Any(), int64(123456), withdrawalRequest).Times(1).Return(nil, apperrors.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			body:         string(validReq),
		},
		{
			name:   "Forbidden - 403",
			method: http.MethodPost,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			header: map[string][]string{"Content-Type": {"application/json"}},
			prepare: func() {
				w.withdrawalService.EXPECT().Request(gomock.Any(), int64(123456), withdrawalRequest).Times(1).Return(nil, apperrors.ErrUserBanned)
			},
			expectedCode: http.StatusForbidden,
			body:         string(validReq),
		},
		{
			name:   "UnprocessableEntity below minimum - 422",
			method: http.MethodPost,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			header: map[string][]string{"Content-Type": {"application/json"}},
			prepare: func() {
				w.withdrawalService.EXPECT().Request(gomock.Any(), int64(123456), withdrawalRequest).Times(1).Return(nil, apperrors.ErrBelowMinimum)
			},
			expectedCode: http.StatusUnprocessableEntity,
			body:         string(validReq),
		},
		{
			name:   "UnprocessableEntity bad destination - 422",
			method: http.MethodPost,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			header: map[string][]string{"Content-Type": {"application/json"}},
			prepare: func() {
				w.withdrawalService.EXPECT().Request(gomock.Any(), int64(123456), withdrawalRequest).Times(1).Return(nil, apperrors.ErrBadDestination)
			},
			expectedCode: http.StatusUnprocessableEntity,
			body:         string(validReq),
		},
		{
			name:   "PaymentRequired - 402",
			method: http.MethodPost,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			header: map[string][]string{"Content-Type": {"application/json"}},
			prepare: func() {
				w.withdrawalService.EXPECT().Request(gomock.Any(), int64(123456), withdrawalRequest).Times(1).Return(nil, apperrors.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
			body:         string(validReq),
		},
		{
			name:   "InternalServerError - 500",
			method: http.MethodPost,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			header: map[string][]string{"Content-Type": {"application/json"}},
			prepare: func() {
				w.withdrawalService.EXPECT().Request(gomock.Any(), int64(123456), withdrawalRequest).Times(1).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
			body:         string(validReq),
		},
		{
			name:   "Busy - 503",
			method: http.MethodPost,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			header: map[string][]string{"Content-Type": {"application/json"}},
			prepare: func() {
				w.withdrawalService.EXPECT().Request(gomock.Any(), int64(123456), withdrawalRequest).Times(1).Return(nil, apperrors.ErrBusy)
			},
			expectedCode: http.StatusServiceUnavailable,
			body:         string(validReq),
		},
		{
			name:   "Success - 200",
			method: http.MethodPost,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			header: map[string][]string{"Content-Type": {"application/json"}},
			prepare: func() {
				w.withdrawalService.EXPECT().Request(gomock.Any(), int64(123456), withdrawalRequest).Times(1).Return(withdrawalResponse, nil)
			},
			expectedCode: http.StatusOK,
			body:         string(validReq),
		},
	}

	for _, test := range testCases {
		w.T().Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			request.Header.Set("Content-Type", test.header.Get("Content-Type"))
			rec := httptest.NewRecorder()
			w.echo.ServeHTTP(rec, request)

			assert.Equal(t, test.expectedCode, rec.Code)
		})
	}
}

func (w *WithdrawalHandlersSuite) TestGetWithdrawals() {
	withdrawalResponse := []dto.WithdrawalResponse{
		{
			ID:          "9a6f1c2e-0b34-47f3-8f2c-6f1f0f9d11bb",
			Amount:      decimal.NewFromInt(100),
			Method:      "card",
			Destination: "2377225624",
			Status:      "pending",
			RequestedAt: time.Now().Format(time.RFC3339),
		},
		{
			ID:          "1b7e2d3f-4c56-48a9-9d01-2e3f4a5b6c7d",
			Amount:      decimal.NewFromInt(250),
			Method:      "card",
			Destination: "2377225624",
			Status:      "paid",
			RequestedAt: time.Now().Format(time.RFC3339),
		},
	}

	response, errMarshal := json.Marshal(withdrawalResponse)
	require.NoError(w.T(), errMarshal)

	testCases := []struct {
		name         string
		method       string
		path         string
		prepare      func()
		expectedCode int
		expectedBody []byte
	}{
		{
			name:   "NoContent - 204",
			method: http.MethodGet,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			prepare: func() {
				w.withdrawalService.EXPECT().GetByUser(gomock.Any(), int64(123456)).Times(1).Return(nil, apperrors.ErrNoWithdrawals)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "InternalServerError - 500",
			method: http.MethodGet,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			prepare: func() {
				w.withdrawalService.EXPECT().GetByUser(gomock.Any(), int64(123456)).Times(1).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:   "Success - 200",
			method: http.MethodGet,
			path:   "http://localhost:8000/api/user/123456/withdrawals",
			prepare: func() {
				w.withdrawalService.EXPECT().GetByUser(gomock.Any(), int64(123456)).Times(1).Return(withdrawalResponse, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: response,
		},
	}

	for _, test := range testCases {
		w.T().Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(test.method, test.path, nil)
			rec := httptest.NewRecorder()
			w.echo.ServeHTTP(rec, request)

			assert.Equal(t, test.expectedCode, rec.Code)
			if test.expectedBody != nil {
				var result []dto.WithdrawalResponse
				jsonErr := json.Unmarshal(rec.Body.Bytes(), &result)
				require.NoError(t, jsonErr)

				var expected []dto.WithdrawalResponse
				jsonErrExp := json.Unmarshal(test.expectedBody, &expected)
				require.NoError(t, jsonErrExp)

				assert.Equal(t, expected, result)
			}
		})
	}
}

func (w *WithdrawalHandlersSuite) TestGetByStatus() {
	cookie, errCookie := w.createCookie("admin")
	require.NoError(w.T(), errCookie)

	withdrawalResponse := []dto.WithdrawalResponse{
		{
			ID:          "9a6f1c2e-0b34-47f3-8f2c-6f1f0f9d11bb",
			Amount:      decimal.NewFromInt(100),
			Method:      "card",
			Destination: "2377225624",
			Status:      "pending",
			RequestedAt: time.Now().Format(time.RFC3339),
		},
	}

	testCases := []struct {
		name         string
		method       string
		cookie       *http.Cookie
		path         string
		prepare      func()
		expectedCode int
	}{
		{
			name:   "Unauthorized - 401",
			method: http.MethodGet,
			path:   "http://localhost:8000/api/admin/withdrawals",
			prepare: func() {
				w.withdrawalService.EXPECT().GetByStatus(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Bad Request invalid status - 400",
			method: http.MethodGet,
			cookie: cookie,
			path:   "http://localhost:8000/api/admin/withdrawals?status=bogus",
			prepare: func() {
				w.withdrawalService.EXPECT().GetByStatus(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Default status pending - 200",
			method: http.MethodGet,
			cookie: cookie,
			path:   "http://localhost:8000/api/admin/withdrawals",
			prepare: func() {
				w.withdrawalService.EXPECT().GetByStatus(gomock.Any(), model.StatusPending).Times(1).Return(withdrawalResponse, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "NoContent - 204",
			method: http.MethodGet,
			cookie: cookie,
			path:   "http://localhost:8000/api/admin/withdrawals?status=approved",
			prepare: func() {
				w.withdrawalService.EXPECT().GetByStatus(gomock.Any(), model.StatusApproved).Times(1).Return(nil, apperrors.ErrNoWithdrawals)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, test := range testCases {
		w.T().Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(test.method, test.path, nil)
			if test.cookie != nil {
				request.AddCookie(test.cookie)
			}
			rec := httptest.NewRecorder()
			w.echo.ServeHTTP(rec, request)

			assert.Equal(t, test.expectedCode, rec.Code)
		})
	}
}

func (w *WithdrawalHandlersSuite) TestTransitionWithdrawal() {
	cookie, errCookie := w.createCookie("admin")
	require.NoError(w.T(), errCookie)

	transactionRef := "bank-tx-42"
	transitionRequest := dto.TransitionRequest{
		Status:         "paid",
		TransactionRef: &transactionRef,
		Notes:          "settled manually",
	}

	validReq, errMarshal := json.Marshal(transitionRequest)
	require.NoError(w.T(), errMarshal)

	withdrawalID := "9a6f1c2e-0b34-47f3-8f2c-6f1f0f9d11bb"
	processedAt := time.Now().Format(time.RFC3339)
	withdrawalResponse := &dto.WithdrawalResponse{
		ID:             withdrawalID,
		Amount:         decimal.NewFromInt(100),
		Method:         "card",
		Destination:    "2377225624",
		Status:         "paid",
		TransactionRef: &transactionRef,
		RequestedAt:    time.Now().Format(time.RFC3339),
		ProcessedAt:    &processedAt,
		Notes:          "settled manually",
	}

	testCases := []struct {
		name         string
		method       string
		cookie       *http.Cookie
		path         string
		prepare      func()
		expectedCode int
		body         string
	}{
		{
			name:   "Unauthorized - 401",
			method: http.MethodPatch,
			path:   "http://localhost:8000/api/admin/withdrawals/" + withdrawalID,
			prepare: func() {
				w.withdrawalService.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnauthorized,
			body:         string(validReq),
		},
		{
			name:   "NotFound - 404",
			method: http.MethodPatch,
			cookie: cookie,
			path:   "http://localhost:8000/api/admin/withdrawals/" + withdrawalID,
			prepare: func() {
				w.withdrawalService.EXPECT().Transition(gomock.Any(), withdrawalID, model.StatusPaid, &transactionRef, "settled manually").
					Times(1).Return(nil, apperrors.ErrWithdrawalNotFound)
			},
			expectedCode: http.StatusNotFound,
			body:         string(validReq),
		},
		{
			name:   "Conflict invalid transition - 409",
			method: http.MethodPatch,
			cookie: cookie,
			path:   "http://localhost:8000/api/admin/withdrawals/" + withdrawalID,
			prepare: func() {
				w.withdrawalService.EXPECT().Transition(gomock.Any(), withdrawalID, model.StatusPaid, &transactionRef, "settled manually").
					Times(1).Return(nil, apperrors.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
			body:         string(validReq),
		},
		{
			name:   "Busy - 503",
			method: http.MethodPatch,
			cookie: cookie,
			path:   "http://localhost:8000/api/admin/withdrawals/" + withdrawalID,
			prepare: func() {
				w.withdrawalService.EXPECT().Transition(gomock.Any(), withdrawalID, model.StatusPaid, &transactionRef, "settled manually").
					Times(1).Return(nil, apperrors.ErrBusy)
			},
			expectedCode: http.StatusServiceUnavailable,
			body:         string(validReq),
		},
		{
			name:   "Success - 200",
			method: http.MethodPatch,
			cookie: cookie,
			path:   "http://localhost:8000/api/admin/withdrawals/" + withdrawalID,
			prepare: func() {
				w.withdrawalService.EXPECT().Transition(gomock.Any(), withdrawalID, model.StatusPaid, &transactionRef, "settled manually").
					Times(1).Return(withdrawalResponse, nil)
			},
			expectedCode: http.StatusOK,
			body:         string(validReq),
		},
	}

	for _, test := range testCases {
		w.T().Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			if test.cookie != nil {
				request.AddCookie(test.cookie)
			}
			request.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			w.echo.ServeHTTP(rec, request)

			assert.Equal(t, test.expectedCode, rec.Code)
		})
	}
}

func (w *WithdrawalHandlersSuite) createCookie(login string) (*http.Cookie, error) {
	token, err := w.jwtManager.BuildJWTString(login)

	cookie := &http.Cookie{
		Name:  w.jwtManager.TokenName,
		Value: token,
	}

	return cookie, err
}
