package provider

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
)

// ProviderOffer is the ad network's wire format for one timed offer.
type ProviderOffer struct {
	Ref             string          `json:"ref"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	URL             string          `json:"url"`
	Reward          decimal.Decimal `json:"reward"`
	DurationSeconds int             `json:"duration_seconds"`
	Category        string          `json:"category"`
	Active          bool            `json:"active"`
}

type OfferProvider struct {
	*resty.Client
	logger *zap.Logger
}

func NewOfferProvider(providerEndpoint string, logger *zap.Logger) *OfferProvider {
	offerProvider := &OfferProvider{resty.New(), logger}
	offerProvider.SetBaseURL(providerEndpoint)

	return offerProvider
}

func (o *OfferProvider) QueryOffers() ([]ProviderOffer, error) {
	var offers []ProviderOffer
	r, err := o.R().SetResult(&offers).Get("/api/offers")
	if err != nil {
		o.logger.Error("error while querying offer provider", zap.Error(err))
		return nil, err
	}

	if r.StatusCode() == http.StatusTooManyRequests {
		o.logger.Error("offer provider rate limit hit")
		return nil, apperrors.ErrRateLimit
	}

	if r.StatusCode() != http.StatusOK {
		o.logger.Error("unexpected offer provider status", zap.Int("status", r.StatusCode()))
		return nil, apperrors.ErrProviderUnavailable
	}

	return offers, nil
}
