package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindActionReward    Kind = "action_reward"
	KindReferralBonus   Kind = "referral_bonus"
	KindWelcomeBonus    Kind = "welcome_bonus"
	KindAdminAdjustment Kind = "admin_adjustment"
)

// Event is an append-only earning fact: it is inserted in the same
// transaction as the owning user's balance mutation and never changes after.
type Event struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Kind        Kind            `db:"kind"`
	Description string          `db:"description"`
	EarnedAt    time.Time       `db:"earned_at"`
}

// DailyCounter is the per (user, calendar day) accumulator the limit policy
// is evaluated against. Created lazily on the first action of the day.
type DailyCounter struct {
	ID               string          `db:"id"`
	UserID           string          `db:"user_id"`
	Day              time.Time       `db:"day"`
	ActionsCompleted int             `db:"actions_completed"`
	AmountEarned     decimal.Decimal `db:"amount_earned"`
}
