package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/admin/handler/dto"
	"github.com/msavelyev/adledger/internal/utils"
)

type AdminHandler struct {
	jwtManager *utils.JWTManager
	secret     string
	logger     *zap.Logger
}

func NewAdminHandler(e *echo.Echo, jwtManager *utils.JWTManager, secret string, logger *zap.Logger) *AdminHandler {
	handler := &AdminHandler{
		jwtManager: jwtManager,
		secret:     secret,
		logger:     logger,
	}

	e.POST("/api/admin/login", handler.Login)

	return handler
}

// @Summary       Admin authorization
// @Description   Exchange the shared admin secret for a session token cookie.
// @Tags          Admin API
// @Accept        json
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       500
// @Router        /api/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	request := new(dto.AdminLoginRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	if subtle.ConstantTimeCompare([]byte(request.Secret), []byte(h.secret)) != 1 {
		h.logger.Info("Invalid admin secret", zap.String("login", request.Login))
		return c.NoContent(http.StatusUnauthorized)
	}

	token, err := h.jwtManager.BuildJWTString(request.Login)
	if err != nil {
		h.logger.Error("Unable to create token", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	cookie := &http.Cookie{
		Name:  h.jwtManager.TokenName,
		Value: token,
	}
	c.SetCookie(cookie)

	return c.NoContent(http.StatusOK)
}
