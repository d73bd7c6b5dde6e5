package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusPaid     Status = "paid"
)

// CanTransitionTo encodes the request lifecycle: pending may be approved or
// rejected, approved may be paid or rejected, terminal states never change.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusPaid || to == StatusRejected
	default:
		return false
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPaid:
		return true
	}
	return false
}

type Withdrawal struct {
	ID             string          `db:"id"`
	UserID         string          `db:"user_id"`
	Amount         decimal.Decimal `db:"amount"`
	Method         string          `db:"method"`
	Destination    string          `db:"destination"`
	Status         Status          `db:"status"`
	TransactionRef *string         `db:"transaction_ref"`
	RequestedAt    time.Time       `db:"requested_at"`
	ProcessedAt    *time.Time      `db:"processed_at"`
	Notes          string          `db:"notes"`
}
