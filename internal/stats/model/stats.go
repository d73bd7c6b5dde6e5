package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserStats is a read-only aggregate collected within a single transaction,
// so the balance and the counters are mutually consistent.
type UserStats struct {
	ExternalID       int64
	Username         string
	FirstName        string
	ReferralCode     string
	Balance          decimal.Decimal
	TotalEarned      decimal.Decimal
	TotalWithdrawn   decimal.Decimal
	TotalActions     int64
	RegisteredAt     time.Time
	IsPremium        bool
	EarnedToday      decimal.Decimal
	ActionsToday     int
	TotalReferrals   int
	ActiveReferrals  int
	ReferralEarnings decimal.Decimal
}
