package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msavelyev/adledger/internal/stats/model"
)

type UserStatsResponse struct {
	ExternalID       int64           `json:"external_id"`
	Username         string          `json:"username"`
	FirstName        string          `json:"first_name"`
	ReferralCode     string          `json:"referral_code"`
	Balance          decimal.Decimal `json:"balance"`
	TotalEarned      decimal.Decimal `json:"total_earned"`
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn"`
	TotalActions     int64           `json:"total_actions"`
	RegisteredAt     string          `json:"registered_at"`
	IsPremium        bool            `json:"is_premium"`
	EarnedToday      decimal.Decimal `json:"earned_today"`
	ActionsToday     int             `json:"actions_today"`
	TotalReferrals   int             `json:"total_referrals"`
	ActiveReferrals  int             `json:"active_referrals"`
	ReferralEarnings decimal.Decimal `json:"referral_earnings"`
}

func MapToUserStatsResponse(stats model.UserStats) UserStatsResponse {
	return UserStatsResponse{
		ExternalID:       stats.ExternalID,
		Username:         stats.Username,
		FirstName:        stats.FirstName,
		ReferralCode:     stats.ReferralCode,
		Balance:          stats.Balance,
		TotalEarned:      stats.TotalEarned,
		TotalWithdrawn:   stats.TotalWithdrawn,
		TotalActions:     stats.TotalActions,
		RegisteredAt:     stats.RegisteredAt.Format(time.RFC3339),
		IsPremium:        stats.IsPremium,
		EarnedToday:      stats.EarnedToday,
		ActionsToday:     stats.ActionsToday,
		TotalReferrals:   stats.TotalReferrals,
		ActiveReferrals:  stats.ActiveReferrals,
		ReferralEarnings: stats.ReferralEarnings,
	}
}
