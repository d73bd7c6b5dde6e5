package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Offer struct {
	ID              string          `db:"id"`
	ExternalRef     string          `db:"external_ref"`
	Title           string          `db:"title"`
	Description     string          `db:"description"`
	URL             string          `db:"url"`
	Reward          decimal.Decimal `db:"reward"`
	DurationSeconds int             `db:"duration_seconds"`
	Category        string          `db:"category"`
	IsActive        bool            `db:"is_active"`
	CreatedAt       time.Time       `db:"created_at"`
}
