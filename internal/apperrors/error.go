package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUserBanned          = errors.New("user is banned")
	ErrCooldownActive      = errors.New("action cooldown is active")
	ErrDailyActionCap      = errors.New("daily action cap reached")
	ErrDailyEarningCap     = errors.New("daily earning cap reached")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrBelowMinimum        = errors.New("amount is below minimum withdrawal")
	ErrInvalidTransition   = errors.New("invalid withdrawal status transition")
	ErrUnknownStatus       = errors.New("unknown withdrawal status")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrNoWithdrawals       = errors.New("no withdrawals found")
	ErrNoEarnings          = errors.New("no earnings found")
	ErrOfferNotFound       = errors.New("offer not found")
	ErrBadDestination      = errors.New("invalid payout destination")
	ErrBadAmount           = errors.New("amount must be positive")
	ErrInvalidSecret       = errors.New("invalid admin secret")
	ErrRateLimit           = errors.New("rate limit exceeded")
	ErrProviderUnavailable = errors.New("offer provider unavailable")
	ErrBusy                = errors.New("ledger is busy, retry")
)

type ValueError struct {
	caller  string
	message string
	err     error
}

func NewValueError(message string, caller string, err error) error {
	return &ValueError{
		caller:  caller,
		message: message,
		err:     err,
	}
}

func (v *ValueError) Error() string {
	return fmt.Sprintf("%s %s %s", v.caller, v.message, v.err)
}

func (v *ValueError) Unwrap() error {
	return v.err
}

// IsBusy reports whether err is transient lock contention: either the ErrBusy
// sentinel or a postgres serialization/deadlock failure surfaced on commit.
func IsBusy(err error) bool {
	if errors.Is(err, ErrBusy) {
		return true
	}

	var e *pgconn.PgError
	if errors.As(err, &e) {
		return e.Code == pgerrcode.SerializationFailure || e.Code == pgerrcode.DeadlockDetected
	}

	return false
}
