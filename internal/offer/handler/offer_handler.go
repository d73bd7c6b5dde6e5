package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/offer/handler/dto"
)

// OfferService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_offer_catalog_service.go -package=mock -mock_names=OfferService=MockOfferCatalogService github.com/msavelyev/adledger/internal/offer/handler OfferService
type OfferService interface {
	GetActive(ctx context.Context) ([]dto.OfferResponse, error)
}

type OfferHandler struct {
	offerService OfferService
	logger       *zap.Logger
}

func NewOfferHandler(e *echo.Echo, service OfferService, logger *zap.Logger) *OfferHandler {
	handler := &OfferHandler{
		offerService: service,
		logger:       logger,
	}

	e.GET("/api/offers", handler.GetOffers)

	return handler
}

func (h *OfferHandler) GetOffers(c echo.Context) error {
	offers, err := h.offerService.GetActive(c.Request().Context())
	if err != nil {
		h.logger.Error("Internal server error: unable to get offers", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	if len(offers) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, offers)
}
