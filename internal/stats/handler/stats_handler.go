package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	"github.com/msavelyev/adledger/internal/stats/handler/dto"
)

// StatsService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_stats_service.go -package=mock github.com/msavelyev/adledger/internal/stats/handler StatsService
type StatsService interface {
	GetByUser(ctx context.Context, externalID int64) (*dto.UserStatsResponse, error)
}

type StatsHandler struct {
	statsService StatsService
	logger       *zap.Logger
}

func NewStatsHandler(e *echo.Echo, service StatsService, logger *zap.Logger) *StatsHandler {
	handler := &StatsHandler{
		statsService: service,
		logger:       logger,
	}

	e.GET("/api/user/:externalID/stats", handler.GetStats)

	return handler
}

// @Summary       Get user statistics
// @Description   Balance, totals, today's earnings and referral counts from one consistent snapshot.
// @Tags          Stats API
// @Produce       json
// @Success       200    {object}   dto.UserStatsResponse
// @Failure       404
// @Failure       500
// @Router        /api/user/{externalID}/stats [get]
func (h *StatsHandler) GetStats(c echo.Context) error {
	externalID, errParse := strconv.ParseInt(c.Param("externalID"), 10, 64)
	if errParse != nil {
		h.logger.Warn("Bad Request: invalid external id", zap.Error(errParse))
		return c.String(http.StatusBadRequest, "Invalid external id")
	}

	stats, err := h.statsService.GetByUser(c.Request().Context(), externalID)

	if errors.Is(err, apperrors.ErrUserNotFound) {
		h.logger.Info("User not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to get stats", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, stats)
}
