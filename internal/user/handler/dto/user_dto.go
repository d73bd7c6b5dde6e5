package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msavelyev/adledger/internal/user/model"
)

type UserRegisterRequest struct {
	ExternalID         int64  `json:"external_id" validate:"required"`
	Username           string `json:"username"`
	FirstName          string `json:"first_name" validate:"required"`
	LastName           string `json:"last_name"`
	ReferrerExternalID *int64 `json:"referrer_external_id,omitempty"`
}

type UserResponse struct {
	ExternalID     int64           `json:"external_id"`
	Username       string          `json:"username"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	ReferralCode   string          `json:"referral_code"`
	Balance        decimal.Decimal `json:"balance"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn"`
	TotalActions   int64           `json:"total_actions"`
	RegisteredAt   string          `json:"registered_at"`
	IsPremium      bool            `json:"is_premium"`
}

func MapToUserResponse(user model.User) UserResponse {
	return UserResponse{
		ExternalID:     user.ExternalID,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ReferralCode:   user.ReferralCode,
		Balance:        user.Balance,
		TotalEarned:    user.TotalEarned,
		TotalWithdrawn: user.TotalWithdrawn,
		TotalActions:   user.TotalActions,
		RegisteredAt:   user.RegisteredAt.Format(time.RFC3339),
		IsPremium:      user.IsPremium,
	}
}
