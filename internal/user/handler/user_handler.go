package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	"github.com/msavelyev/adledger/internal/user/handler/dto"
)

// UserService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_user_service.go -package=mock github.com/msavelyev/adledger/internal/user/handler UserService
type UserService interface {
	Register(ctx context.Context, request dto.UserRegisterRequest) (*dto.UserResponse, error)
	GetByExternalID(ctx context.Context, externalID int64) (*dto.UserResponse, error)
}

type UserHandler struct {
	userService UserService
	logger      *zap.Logger
}

func NewUserHandler(e *echo.Echo, service UserService, logger *zap.Logger) *UserHandler {
	handler := &UserHandler{
		userService: service,
		logger:      logger,
	}

	e.POST("/api/user/register", handler.RegisterUser)
	e.GET("/api/user/:externalID", handler.GetUser)

	return handler
}

// @Summary       User registration
// @Description   Register a user by external platform id, optionally crediting the referrer.
// @Tags          User API
// @Accept        json
// @Produce       json
// @Param         user   body       dto.UserRegisterRequest   true   "External id, display name and optional referrer."
// @Success       200    {object}   dto.UserResponse
// @Failure       400
// @Failure       409
// @Failure       500
// @Failure       503
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

	user, err := h.userService.Register(c.Request().Context(), *request)

	if errors.Is(err, apperrors.ErrUserAlreadyExists) {
		h.logger.Info("Non unique external id", zap.Error(err))
		return c.NoContent(http.StatusConflict)
	}

	if errors.Is(err, apperrors.ErrBusy) {
		h.logger.Warn("Ledger busy", zap.Error(err))
		return c.String(http.StatusServiceUnavailable, "busy, try again")
	}

	if err != nil {
		h.logger.Error("Unable to register user", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, user)
}

// @Summary       Get user
// @Description   Get a user's profile and balances by external id.
// @Tags          User API
// @Produce       json
// @Success       200    {object}   dto.UserResponse
// @Failure       404
// @Failure       500
// @Router        /api/user/{externalID} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	externalID, errParse := strconv.ParseInt(c.Param("externalID"), 10, 64)
	if errParse != nil {
		h.logger.Warn("Bad Request: invalid external id", zap.Error(errParse))
		return c.String(http.StatusBadRequest, "Invalid external id")
	}

	user, err := h.userService.GetByExternalID(c.Request().Context(), externalID)

	if errors.Is(err, apperrors.ErrUserNotFound) {
		h.logger.Info("User not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to get user", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, user)
}
