package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/admin/handler/dto"
	"github.com/msavelyev/adledger/internal/utils"
)

const adminSecret = "supersecretkey"

type AdminHandlersSuite struct {
	suite.Suite
	h          *AdminHandler
	echo       *echo.Echo
	jwtManager *utils.JWTManager
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlersSuite))
}

func (a *AdminHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	jwtManager := utils.InitJWTManager("token", adminSecret, logger)
	a.jwtManager = jwtManager
	a.echo = echo.New()
	a.h = NewAdminHandler(a.echo, jwtManager, adminSecret, logger)
}

func (a *AdminHandlersSuite) TestLogin() {
	validLoginRequest := dto.AdminLoginRequest{
		Login:  "admin",
		Secret: adminSecret,
	}

	validReq, errMarshal := json.Marshal(validLoginRequest)
	require.NoError(a.T(), errMarshal)

	wrongSecretRequest := dto.AdminLoginRequest{
		Login:  "admin",
		Secret: "guessing",
	}

	wrongReq, errMarshal := json.Marshal(wrongSecretRequest)
	require.NoError(a.T(), errMarshal)

	invalidLoginRequest := dto.AdminLoginRequest{
		Login: "admin",
	}

	invalidReq, errMarshal := json.Marshal(invalidLoginRequest)
	require.NoError(a.T(), errMarshal)

	testCases := []struct {
		name         string
		method       string
		path         string
		expectedCode int
		expectCookie bool
		body         string
	}{
		{
			name:         "Bad Request - 400",
			method:       http.MethodPost,
			path:         "http://localhost:8000/api/admin/login",
			expectedCode: http.StatusBadRequest,
			body:         string(invalidReq),
		},
		{
			name:         "Unauthorized - 401",
			method:       http.MethodPost,
			path:         "http://localhost:8000/api/admin/login",
			expectedCode: http.StatusUnauthorized,
			body:         string(wrongReq),
		},
		{
			name:         "Success - 200",
			method:       http.MethodPost,
			path:         "http://localhost:8000/api/admin/login",
			expectedCode: http.StatusOK,
			expectCookie: true,
			body:         string(validReq),
		},
	}

	for _, test := range testCases {
		a.T().Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			request.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			a.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)

			if test.expectCookie {
				cookies := w.Result().Cookies()
				require.Len(t, cookies, 1)
				assert.Equal(t, a.jwtManager.TokenName, cookies[0].Name)

				login, errToken := a.jwtManager.GetUserLogin(cookies[0].Value)
				require.NoError(t, errToken)
				assert.Equal(t, "admin", login)
			}
		})
	}
}
