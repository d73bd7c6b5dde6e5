package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	"github.com/msavelyev/adledger/internal/config"
	"github.com/msavelyev/adledger/internal/earning/handler/dto"
	"github.com/msavelyev/adledger/internal/middleware"
	offerdto "github.com/msavelyev/adledger/internal/offer/handler/dto"
)

// EarningService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_earning_service.go -package=mock github.com/msavelyev/adledger/internal/earning/handler EarningService
type EarningService interface {
	RecordAction(ctx context.Context, externalID int64, baseAmount decimal.Decimal, description string) (*dto.ActionResponse, error)
	RecordAdjustment(ctx context.Context, externalID int64, amount decimal.Decimal, description string) error
	GetByUser(ctx context.Context, externalID int64) ([]dto.EarningResponse, error)
}

// OfferService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_offer_service.go -package=mock github.com/msavelyev/adledger/internal/earning/handler OfferService
type OfferService interface {
	GetByID(ctx context.Context, id string) (*offerdto.OfferResponse, error)
}

type EarningHandler struct {
	earningService EarningService
	offerService   OfferService
	actionReward   decimal.Decimal
	logger         *zap.Logger
}

func NewEarningHandler(e *echo.Echo, service EarningService, offerService OfferService, cfg *config.Config, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *EarningHandler {
	handler := &EarningHandler{
		earningService: service,
		offerService:   offerService,
		actionReward:   cfg.ActionReward,
		logger:         logger,
	}

	e.POST("/api/user/:externalID/actions", handler.RecordAction)
	e.GET("/api/user/:externalID/earnings", handler.GetEarnings)

	protectedAdmin := e.Group("/api/admin", jwtAuth.JWTAuth())
	protectedAdmin.POST("/users/:externalID/adjustments", handler.RecordAdjustment)

	return handler
}

// @Summary       Record completed action
// @Description   Credit the user for one completed timed action, subject to cooldown and daily caps.
// @Tags          Earning API
// @Accept        json
// @Produce       json
// @Param         action   body       dto.ActionRequest   true   "Optional offer id the action belongs to."
// @Success       200      {object}   dto.ActionResponse
// @Failure       400
// @Failure       403
// @Failure       404
// @Failure       422
// @Failure       429
// @Failure       503
// @Router        /api/user/{externalID}/actions [post]
func (h *EarningHandler) RecordAction(c echo.Context) error {
	externalID, errParse := strconv.ParseInt(c.Param("externalID"), 10, 64)
	if errParse != nil {
		h.logger.Warn("Bad Request: invalid external id", zap.Error(errParse))
		return c.String(http.StatusBadRequest, "Invalid external id")
	}

	request := new(dto.ActionRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	baseAmount := h.actionReward
	description := "Timed action reward"
	if request.OfferID != "" {
		offer, errOffer := h.offerService.GetByID(c.Request().Context(), request.OfferID)
		if errors.Is(errOffer, apperrors.ErrOfferNotFound) {
			h.logger.Info("Offer not found", zap.String("offerID", request.OfferID))
			return c.NoContent(http.StatusUnprocessableEntity)
		}
		if errOffer != nil {
			h.logger.Error("Internal server error: unable to get offer", zap.Error(errOffer))
			return c.NoContent(http.StatusInternalServerError)
		}
		baseAmount = offer.Reward
		description = "Watched: " + offer.Title
	}

	action, err := h.earningService.RecordAction(c.Request().Context(), externalID, baseAmount, description)

	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		h.logger.Info("User not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrUserBanned):
		h.logger.Info("Banned user denied", zap.Error(err))
		return c.NoContent(http.StatusForbidden)
	case errors.Is(err, apperrors.ErrCooldownActive):
		h.logger.Info("Cooldown active", zap.Error(err))
		return c.String(http.StatusTooManyRequests, "cooldown active")
	case errors.Is(err, apperrors.ErrDailyActionCap):
		h.logger.Info("Daily action cap reached", zap.Error(err))
		return c.String(http.StatusTooManyRequests, "daily action cap reached")
	case errors.Is(err, apperrors.ErrDailyEarningCap):
		h.logger.Info("Daily earning cap reached", zap.Error(err))
		return c.String(http.StatusTooManyRequests, "daily earning cap reached")
	case errors.Is(err, apperrors.ErrBusy):
		h.logger.Warn("Ledger busy", zap.Error(err))
		return c.String(http.StatusServiceUnavailable, "busy, try again")
	case err != nil:
		h.logger.Error("Internal server error: unable to record action", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, action)
}

// @Summary       Get earnings history
// @Description   Get the user's earning events, newest first.
// @Tags          Earning API
// @Produce       json
// @Success       200    {array}    dto.EarningResponse
// @Success       204
// @Failure       404
// @Failure       500
// @Router        /api/user/{externalID}/earnings [get]
func (h *EarningHandler) GetEarnings(c echo.Context) error {
	externalID, errParse := strconv.ParseInt(c.Param("externalID"), 10, 64)
	if errParse != nil {
		h.logger.Warn("Bad Request: invalid external id", zap.Error(errParse))
		return c.String(http.StatusBadRequest, "Invalid external id")
	}

	earnings, err := h.earningService.GetByUser(c.Request().Context(), externalID)

	if errors.Is(err, apperrors.ErrNoEarnings) {
		h.logger.Info("No earnings found", zap.Error(err))
		return c.NoContent(http.StatusNoContent)
	}

	if errors.Is(err, apperrors.ErrUserNotFound) {
		h.logger.Info("User not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to get earnings", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, earnings)
}

// @Summary       Manual balance adjustment
// @Description   Credit a manual admin adjustment to the user's balance.
// @Tags          Admin API
// @Accept        json
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       404
// @Failure       500
// @Security      JWT
// @Router        /api/admin/users/{externalID}/adjustments [post]
func (h *EarningHandler) RecordAdjustment(c echo.Context) error {
	externalID, errParse := strconv.ParseInt(c.Param("externalID"), 10, 64)
	if errParse != nil {
		h.logger.Warn("Bad Request: invalid external id", zap.Error(errParse))
		return c.String(http.StatusBadRequest, "Invalid external id")
	}

	request := new(dto.AdjustmentRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	err := h.earningService.RecordAdjustment(c.Request().Context(), externalID, request.Amount, request.Description)

	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		h.logger.Info("User not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrBadAmount):
		h.logger.Info("Non-positive adjustment", zap.Error(err))
		return c.String(http.StatusBadRequest, "Amount must be positive")
	case err != nil:
		h.logger.Error("Internal server error: unable to record adjustment", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
