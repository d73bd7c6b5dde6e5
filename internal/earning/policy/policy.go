package policy

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/msavelyev/adledger/internal/apperrors"
	"github.com/msavelyev/adledger/internal/earning/model"
	usermodel "github.com/msavelyev/adledger/internal/user/model"
)

type Limits struct {
	DailyEarningLimit decimal.Decimal
	MaxActionsPerDay  int
	Cooldown          time.Duration
}

// Policy decides whether one more action reward is allowed for a user given
// snapshots of the user row and today's counter. It performs no I/O, so the
// caller is responsible for reading the snapshots and the proposed amount
// inside the same transaction that will apply the reward.
type Policy struct {
	limits Limits
}

func New(limits Limits) *Policy {
	return &Policy{limits: limits}
}

// Check returns nil when the action is allowed, otherwise one of the denial
// sentinels. The amount must already include the premium multiplier: caps are
// evaluated against what would actually be credited.
func (p *Policy) Check(user *usermodel.User, counter *model.DailyCounter, lastActionAt *time.Time, now time.Time, amount decimal.Decimal) error {
	if user.IsBanned {
		return apperrors.ErrUserBanned
	}

	if lastActionAt != nil && now.Sub(*lastActionAt) < p.limits.Cooldown {
		return apperrors.ErrCooldownActive
	}

	if counter.ActionsCompleted >= p.limits.MaxActionsPerDay {
		return apperrors.ErrDailyActionCap
	}

	if counter.AmountEarned.Add(amount).GreaterThan(p.limits.DailyEarningLimit) {
		return apperrors.ErrDailyEarningCap
	}

	return nil
}
