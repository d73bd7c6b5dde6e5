package dto

import (
	"github.com/shopspring/decimal"

	"github.com/msavelyev/adledger/internal/offer/model"
)

type OfferResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	URL             string          `json:"url"`
	Reward          decimal.Decimal `json:"reward"`
	DurationSeconds int             `json:"duration_seconds"`
	Category        string          `json:"category"`
}

func MapToOfferResponse(offer model.Offer) OfferResponse {
	return OfferResponse{
		ID:              offer.ID,
		Title:           offer.Title,
		Description:     offer.Description,
		URL:             offer.URL,
		Reward:          offer.Reward,
		DurationSeconds: offer.DurationSeconds,
		Category:        offer.Category,
	}
}
