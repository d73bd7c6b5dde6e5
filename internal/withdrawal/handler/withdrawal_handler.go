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
	"github.com/msavelyev/adledger/internal/middleware"
	"github.com/msavelyev/adledger/internal/withdrawal/handler/dto"
	"github.com/msavelyev/adledger/internal/withdrawal/model"
)

// WithdrawalService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_withdrawal_service.go -package=mock github.com/msavelyev/adledger/internal/withdrawal/handler WithdrawalService
type WithdrawalService interface {
	Request(ctx context.Context, externalID int64, request dto.WithdrawalRequest) (*dto.WithdrawalResponse, error)
	Transition(ctx context.Context, id string, toStatus model.Status, transactionRef *string, notes string) (*dto.WithdrawalResponse, error)
	GetByUser(ctx context.Context, externalID int64) ([]dto.WithdrawalResponse, error)
	GetByStatus(ctx context.Context, status model.Status) ([]dto.WithdrawalResponse, error)
}

type WithdrawalHandler struct {
	withdrawalService WithdrawalService
	logger            *zap.Logger
	jwtAuth           *middleware.JWTAuth
}

func NewWithdrawalHandler(e *echo.Echo, service WithdrawalService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *WithdrawalHandler {
	handler := &WithdrawalHandler{
		withdrawalService: service,
		logger:            logger,
		jwtAuth:           jwtAuth,
	}

	e.POST("/api/user/:externalID/withdrawals", handler.RequestWithdrawal)
	e.GET("/api/user/:externalID/withdrawals", handler.GetWithdrawals)

	protectedAdmin := e.Group("/api/admin", jwtAuth.JWTAuth())
	protectedAdmin.GET("/withdrawals", handler.GetByStatus)
	protectedAdmin.PATCH("/withdrawals/:id", handler.TransitionWithdrawal)

	return handler
}

// @Summary       Withdrawal request
// @Description   Place a hold on the balance and create a pending withdrawal request.
// @Tags          Withdrawal API
// @Accept        json
// @Produce       json
// @Param         withdrawal   body       dto.WithdrawalRequest   true   "Amount, payout method and destination."
// @Success       200          {object}   dto.WithdrawalResponse
// @Failure       400
// @Failure       402
// @Failure       403
// @Failure       404
// @Failure       422
// @Failure       500
// @Failure       503
// @Router        /api/user/{externalID}/withdrawals [post]
func (h *WithdrawalHandler) RequestWithdrawal(c echo.Context) error {
	externalID, errParse := strconv.ParseInt(c.Param("externalID"), 10, 64)
	if errParse != nil {
		h.logger.Warn("Bad Request: invalid external id", zap.Error(errParse))
		return c.String(http.StatusBadRequest, "Invalid external id")
	}

	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.WithdrawalRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	errRegisterValidator := requestValidator.RegisterValidation("positive_amount", dto.PositiveAmount)
	if errRegisterValidator != nil {
		h.logger.Warn("Unable to register validator", zap.Error(errRegisterValidator))
	}

	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	withdrawal, err := h.withdrawalService.Request(c.Request().Context(), externalID, *request)

	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		h.logger.Info("User not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrUserBanned):
		h.logger.Info("Banned user denied", zap.Error(err))
		return c.NoContent(http.StatusForbidden)
	case errors.Is(err, apperrors.ErrBelowMinimum):
		h.logger.Info("Below minimum withdrawal", zap.Error(err))
		return c.NoContent(http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrBadDestination):
		h.logger.Info("Bad payout destination", zap.Error(err))
		return c.NoContent(http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		h.logger.Info("Insufficient funds", zap.Error(err))
		return c.NoContent(http.StatusPaymentRequired)
	case errors.Is(err, apperrors.ErrBusy):
		h.logger.Warn("Ledger busy", zap.Error(err))
		return c.String(http.StatusServiceUnavailable, "busy, try again")
	case err != nil:
		h.logger.Error("Internal server error: unable to request withdrawal", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, withdrawal)
}

// @Summary       Get withdrawals list
// @Description   Get the user's withdrawal requests, newest first.
// @Tags          Withdrawal API
// @Produce       json
// @Success       200    {array}    dto.WithdrawalResponse
// @Success       204
// @Failure       500
// @Router        /api/user/{externalID}/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(c echo.Context) error {
	externalID, errParse := strconv.ParseInt(c.Param("externalID"), 10, 64)
	if errParse != nil {
		h.logger.Warn("Bad Request: invalid external id", zap.Error(errParse))
		return c.String(http.StatusBadRequest, "Invalid external id")
	}

	withdrawals, err := h.withdrawalService.GetByUser(c.Request().Context(), externalID)

	if errors.Is(err, apperrors.ErrNoWithdrawals) {
		h.logger.Info("No withdrawals found", zap.Error(err))
		return c.NoContent(http.StatusNoContent)
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to get withdrawals", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, withdrawals)
}

// @Summary       List withdrawals by status
// @Description   List withdrawal requests in a given status for manual processing.
// @Tags          Admin API
// @Produce       json
// @Success       200    {array}    dto.WithdrawalResponse
// @Success       204
// @Failure       400
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/admin/withdrawals [get]
func (h *WithdrawalHandler) GetByStatus(c echo.Context) error {
	status := model.Status(c.QueryParam("status"))
	if status == "" {
		status = model.StatusPending
	}

	if !status.IsValid() {
		h.logger.Warn("Bad Request: invalid status", zap.String("status", string(status)))
		return c.String(http.StatusBadRequest, "Invalid status")
	}

	withdrawals, err := h.withdrawalService.GetByStatus(c.Request().Context(), status)

	if errors.Is(err, apperrors.ErrNoWithdrawals) {
		h.logger.Info("No withdrawals found", zap.Error(err))
		return c.NoContent(http.StatusNoContent)
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to get withdrawals", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, withdrawals)
}

// @Summary       Withdrawal status transition
// @Description   Approve, reject or settle a withdrawal request. Rejection restores the held amount.
// @Tags          Admin API
// @Accept        json
// @Produce       json
// @Param         transition   body       dto.TransitionRequest   true   "Target status, optional transaction reference and notes."
// @Success       200          {object}   dto.WithdrawalResponse
// @Failure       400
// @Failure       401
// @Failure       404
// @Failure       409
// @Failure       500
// @Failure       503
// @Security      JWT
// @Router        /api/admin/withdrawals/{id} [patch]
func (h *WithdrawalHandler) TransitionWithdrawal(c echo.Context) error {
	request := new(dto.TransitionRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	withdrawal, err := h.withdrawalService.Transition(
		c.Request().Context(), c.Param("id"), model.Status(request.Status), request.TransactionRef, request.Notes)

	switch {
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		h.logger.Info("Withdrawal not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidTransition):
		h.logger.Info("Invalid transition", zap.Error(err))
		return c.NoContent(http.StatusConflict)
	case errors.Is(err, apperrors.ErrBusy):
		h.logger.Warn("Ledger busy", zap.Error(err))
		return c.String(http.StatusServiceUnavailable, "busy, try again")
	case err != nil:
		h.logger.Error("Internal server error: unable to transition withdrawal", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, withdrawal)
}
