package repository

import (
	"context"
	_ "embed"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	db "github.com/msavelyev/adledger/internal/database"
	"github.com/msavelyev/adledger/internal/stats/model"
	"github.com/msavelyev/adledger/internal/utils"
)

//go:embed queries/select_user_snapshot.sql
var selectUserSnapshot string

//go:embed queries/select_today_counter.sql
var selectTodayCounter string

//go:embed queries/count_referrals.sql
var countReferrals string

//go:embed queries/count_active_referrals.sql
var countActiveReferrals string

//go:embed queries/sum_referral_earnings.sql
var sumReferralEarnings string

type PostgresStatsRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
}

func NewPostgresStatsRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresStatsRepository {
	return &PostgresStatsRepository{
		postgresPool: postgresPool,
		logger:       logger,
	}
}

// SelectUserStats gathers the whole aggregate inside one read-only repeatable
// read transaction: balances and referral counts reported together come from
// the same snapshot even under concurrent writers.
func (r *PostgresStatsRepository) SelectUserStats(ctx context.Context, externalID int64, day time.Time) (*model.UserStats, error) {
	tx, err := r.postgresPool.DB.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, apperrors.NewValueError("unable to start transaction", utils.Caller(), err)
	}
	defer tx.Rollback(ctx)

	var stats model.UserStats
	var userID string
	err = tx.QueryRow(ctx, selectUserSnapshot, externalID).Scan(
		&userID, &stats.ExternalID, &stats.Username, &stats.FirstName,
		&stats.ReferralCode, &stats.Balance, &stats.TotalEarned,
		&stats.TotalWithdrawn, &stats.TotalActions, &stats.RegisteredAt, &stats.IsPremium)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	err = tx.QueryRow(ctx, selectTodayCounter, userID, day).Scan(&stats.ActionsToday, &stats.EarnedToday)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	err = tx.QueryRow(ctx, countReferrals, userID).Scan(&stats.TotalReferrals)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	err = tx.QueryRow(ctx, countActiveReferrals, userID).Scan(&stats.ActiveReferrals)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	err = tx.QueryRow(ctx, sumReferralEarnings, userID).Scan(&stats.ReferralEarnings)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.NewValueError("commit failed", utils.Caller(), err)
	}

	return &stats, nil
}
