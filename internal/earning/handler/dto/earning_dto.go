package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msavelyev/adledger/internal/earning/model"
)

type ActionRequest struct {
	OfferID string `json:"offer_id,omitempty"`
}

type ActionResponse struct {
	EventID  string          `json:"event_id"`
	Amount   decimal.Decimal `json:"amount"`
	Balance  decimal.Decimal `json:"balance"`
	EarnedAt string          `json:"earned_at"`
}

type AdjustmentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description"`
}

type EarningResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	EarnedAt    string          `json:"earned_at"`
}

func MapToEarningResponse(event model.Event) EarningResponse {
	return EarningResponse{
		Amount:      event.Amount,
		Kind:        string(event.Kind),
		Description: event.Description,
		EarnedAt:    event.EarnedAt.Format(time.RFC3339),
	}
}
