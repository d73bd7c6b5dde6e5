package repository

import (
	"context"
	_ "embed"
	"errors"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	db "github.com/msavelyev/adledger/internal/database"
	"github.com/msavelyev/adledger/internal/utils"
	"github.com/msavelyev/adledger/internal/withdrawal/model"
)

//go:embed queries/insert_withdrawal.sql
var insertWithdrawal string

//go:embed queries/hold_balance.sql
var holdBalance string

//go:embed queries/release_hold.sql
var releaseHold string

//go:embed queries/settle_paid.sql
var settlePaid string

//go:embed queries/select_withdrawal_for_update.sql
var selectWithdrawalForUpdate string

//go:embed queries/update_withdrawal_status.sql
var updateWithdrawalStatus string

//go:embed queries/select_withdrawals_by_user.sql
var selectWithdrawalsByUser string

//go:embed queries/select_withdrawals_by_status.sql
var selectWithdrawalsByStatus string

type PostgresWithdrawalRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresWithdrawalRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresWithdrawalRepository {
	return &PostgresWithdrawalRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresWithdrawalRepository) Insert(ctx context.Context, withdrawal model.Withdrawal) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, insertWithdrawal,
		withdrawal.ID, withdrawal.UserID, withdrawal.Amount, withdrawal.Method, withdrawal.Destination)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

// HoldBalance reserves the amount against the user's balance. The balance
// check constraint turns an overdraft into ErrInsufficientFunds, so the hold
// can never drive the balance negative even if the caller's check raced.
func (r *PostgresWithdrawalRepository) HoldBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, holdBalance, amount, userID)

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.CheckViolation {
		return apperrors.ErrInsufficientFunds
	}

	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresWithdrawalRepository) ReleaseHold(ctx context.Context, userID string, amount decimal.Decimal) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, releaseHold, amount, userID)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresWithdrawalRepository) SettlePaid(ctx context.Context, userID string, amount decimal.Decimal) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, settlePaid, amount, userID)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresWithdrawalRepository) SelectForUpdate(ctx context.Context, id string) (*model.Withdrawal, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var w model.Withdrawal
	err := conn.QueryRow(ctx, selectWithdrawalForUpdate, id).Scan(
		&w.ID, &w.UserID, &w.Amount, &w.Method, &w.Destination, &w.Status,
		&w.TransactionRef, &w.RequestedAt, &w.ProcessedAt, &w.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrWithdrawalNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &w, nil
}

func (r *PostgresWithdrawalRepository) UpdateStatus(ctx context.Context, id string, status model.Status, transactionRef *string, processedAt *time.Time, notes string) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, updateWithdrawalStatus, status, transactionRef, processedAt, notes, id)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresWithdrawalRepository) SelectByUserExternalID(ctx context.Context, externalID int64) ([]model.Withdrawal, error) {
	return r.selectWithdrawals(ctx, selectWithdrawalsByUser, externalID)
}

func (r *PostgresWithdrawalRepository) SelectByStatus(ctx context.Context, status model.Status) ([]model.Withdrawal, error) {
	return r.selectWithdrawals(ctx, selectWithdrawalsByStatus, status)
}

func (r *PostgresWithdrawalRepository) selectWithdrawals(ctx context.Context, query string, arg any) ([]model.Withdrawal, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	queryRows, err := conn.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	withdrawals, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Withdrawal])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	if len(withdrawals) == 0 {
		return nil, apperrors.ErrNoWithdrawals
	}

	return withdrawals, nil
}
