package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	mock "github.com/msavelyev/adledger/internal/mocks"
	"github.com/msavelyev/adledger/internal/offer/handler/dto"
)

type OfferHandlersSuite struct {
	suite.Suite
	h            *OfferHandler
	offerService *mock.MockOfferCatalogService
	echo         *echo.Echo
	ctrl         *gomock.Controller
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlersSuite))
}

func (o *OfferHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	o.ctrl = gomock.NewController(o.T())
	o.echo = echo.New()
	o.offerService = mock.NewMockOfferCatalogService(o.ctrl)
	o.h = NewOfferHandler(o.echo, o.offerService, logger)
}

func (o *OfferHandlersSuite) TestGetOffers() {
	offerResponse := []dto.OfferResponse{
		{
			ID:              "2c1d6f0e-9b07-4a58-8f41-55f1c5a4b7cd",
			Title:           "Awesome ad",
			Description:     "Watch to the end to earn",
			URL:             "https://ads.example.com/awesome",
			Reward:          decimal.NewFromInt(7),
			DurationSeconds: 30,
			Category:        "video",
		},
	}

	response, errMarshal := json.Marshal(offerResponse)
	require.NoError(o.T(), errMarshal)

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
			path:   "http://localhost:8000/api/offers",
			prepare: func() {
				o.offerService.EXPECT().GetActive(gomock.Any()).Times(1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "InternalServerError - 500",
			method: http.MethodGet,
			path:   "http://localhost:8000/api/offers",
			prepare: func() {
				o.offerService.EXPECT().GetActive(gomock.Any()).Times(1).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:   "Success - 200",
			method: http.MethodGet,
			path:   "http://localhost:8000/api/offers",
			prepare: func() {
				o.offerService.EXPECT().GetActive(gomock.Any()).Times(1).Return(offerResponse, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: response,
		},
	}

	for _, test := range testCases {
		o.T().Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(test.method, test.path, nil)
			w := httptest.NewRecorder()
			o.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
			if test.expectedBody != nil {
				var result []dto.OfferResponse
				jsonErr := json.Unmarshal(w.Body.Bytes(), &result)
				require.NoError(t, jsonErr)

				var expected []dto.OfferResponse
				jsonErrExp := json.Unmarshal(test.expectedBody, &expected)
				require.NoError(t, jsonErrExp)

				assert.Equal(t, expected, result)
			}
		})
	}
}
