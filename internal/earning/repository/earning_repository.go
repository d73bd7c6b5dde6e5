package repository

import (
	"context"
	_ "embed"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	db "github.com/msavelyev/adledger/internal/database"
	"github.com/msavelyev/adledger/internal/earning/model"
	"github.com/msavelyev/adledger/internal/utils"
)

//go:embed queries/insert_earning.sql
var insertEarning string

//go:embed queries/get_or_create_daily_counter.sql
var getOrCreateDailyCounter string

//go:embed queries/select_last_action_at.sql
var selectLastActionAt string

//go:embed queries/apply_action_to_user.sql
var applyActionToUser string

//go:embed queries/bump_daily_counter.sql
var bumpDailyCounter string

//go:embed queries/select_earnings_by_user.sql
var selectEarningsByUser string

type PostgresEarningRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresEarningRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresEarningRepository {
	return &PostgresEarningRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresEarningRepository) InsertEvent(ctx context.Context, event model.Event) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, insertEarning,
		event.ID, event.UserID, event.Amount, event.Kind, event.Description, event.EarnedAt)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

// GetOrCreateDailyCounter upserts the (user, day) row and returns its current
// state. The caller holds the user row lock, so the returned counters cannot
// be bumped concurrently for the same user.
func (r *PostgresEarningRepository) GetOrCreateDailyCounter(ctx context.Context, counterID string, userID string, day time.Time) (*model.DailyCounter, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var counter model.DailyCounter
	err := conn.QueryRow(ctx, getOrCreateDailyCounter, counterID, userID, day).
		Scan(&counter.ID, &counter.UserID, &counter.Day, &counter.ActionsCompleted, &counter.AmountEarned)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return &counter, nil
}

func (r *PostgresEarningRepository) SelectLastActionAt(ctx context.Context, userID string) (*time.Time, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var lastActionAt *time.Time
	err := conn.QueryRow(ctx, selectLastActionAt, userID).Scan(&lastActionAt)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return lastActionAt, nil
}

// ApplyAction writes all rows of one accepted action reward: the append-only
// earning event, the user balance/totals bump and the daily counter bump.
// Must run inside the transaction that holds the user row lock.
func (r *PostgresEarningRepository) ApplyAction(ctx context.Context, event model.Event, day time.Time) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	batch := &pgx.Batch{}
	batch.Queue(insertEarning, event.ID, event.UserID, event.Amount, event.Kind, event.Description, event.EarnedAt)
	batch.Queue(applyActionToUser, event.Amount, event.UserID)
	batch.Queue(bumpDailyCounter, event.Amount, event.UserID, day)
	result := conn.SendBatch(ctx, batch)

	err := result.Close()
	if err != nil {
		return apperrors.NewValueError("close failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresEarningRepository) SelectByUser(ctx context.Context, userID string) ([]model.Event, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	queryRows, err := conn.Query(ctx, selectEarningsByUser, userID)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	events, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Event])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	if len(events) == 0 {
		return nil, apperrors.ErrNoEarnings
	}

	return events, nil
}
