package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID             string          `db:"id"`
	ExternalID     int64           `db:"external_id"`
	Username       string          `db:"username"`
	FirstName      string          `db:"first_name"`
	LastName       string          `db:"last_name"`
	ReferralCode   string          `db:"referral_code"`
	ReferredBy     *string         `db:"referred_by"`
	Balance        decimal.Decimal `db:"balance"`
	TotalEarned    decimal.Decimal `db:"total_earned"`
	TotalWithdrawn decimal.Decimal `db:"total_withdrawn"`
	TotalActions   int64           `db:"total_actions"`
	RegisteredAt   time.Time       `db:"registered_at"`
	LastActiveAt   time.Time       `db:"last_active_at"`
	IsBanned       bool            `db:"is_banned"`
	IsPremium      bool            `db:"is_premium"`
}
