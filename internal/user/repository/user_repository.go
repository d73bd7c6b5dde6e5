package repository

import (
	"context"
	_ "embed"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	db "github.com/msavelyev/adledger/internal/database"
	"github.com/msavelyev/adledger/internal/user/model"
	"github.com/msavelyev/adledger/internal/utils"
)

//go:embed queries/insert_user.sql
var insertUser string

//go:embed queries/select_user_by_external_id.sql
var selectUserByExternalID string

//go:embed queries/select_user_by_external_id_for_update.sql
var selectUserByExternalIDForUpdate string

//go:embed queries/select_user_by_id_for_update.sql
var selectUserByIDForUpdate string

//go:embed queries/credit_user_balance.sql
var creditUserBalance string

type PostgresUserRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresUserRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresUserRepository {
	return &PostgresUserRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresUserRepository) Insert(ctx context.Context, user model.User) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, insertUser,
		user.ID, user.ExternalID, user.Username, user.FirstName, user.LastName,
		user.ReferralCode, user.ReferredBy, user.Balance)

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
		return apperrors.ErrUserAlreadyExists
	}

	return err
}

func (r *PostgresUserRepository) SelectByExternalID(ctx context.Context, externalID int64) (*model.User, error) {
	return r.selectUser(ctx, selectUserByExternalID, externalID)
}

// SelectForUpdateByExternalID locks the user row for the rest of the current
// transaction. Every mutating unit of work takes this lock first, which is
// what serializes concurrent check-then-write sequences per user.
func (r *PostgresUserRepository) SelectForUpdateByExternalID(ctx context.Context, externalID int64) (*model.User, error) {
	return r.selectUser(ctx, selectUserByExternalIDForUpdate, externalID)
}

func (r *PostgresUserRepository) SelectForUpdateByID(ctx context.Context, id string) (*model.User, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var user model.User
	err := conn.QueryRow(ctx, selectUserByIDForUpdate, id).Scan(
		&user.ID, &user.ExternalID, &user.Username, &user.FirstName, &user.LastName,
		&user.ReferralCode, &user.ReferredBy, &user.Balance, &user.TotalEarned,
		&user.TotalWithdrawn, &user.TotalActions, &user.RegisteredAt,
		&user.LastActiveAt, &user.IsBanned, &user.IsPremium)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrUserNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &user, nil
}

func (r *PostgresUserRepository) Credit(ctx context.Context, userID string, amount decimal.Decimal) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, creditUserBalance, amount, userID)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresUserRepository) selectUser(ctx context.Context, query string, externalID int64) (*model.User, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var user model.User
	err := conn.QueryRow(ctx, query, externalID).Scan(
		&user.ID, &user.ExternalID, &user.Username, &user.FirstName, &user.LastName,
		&user.ReferralCode, &user.ReferredBy, &user.Balance, &user.TotalEarned,
		&user.TotalWithdrawn, &user.TotalActions, &user.RegisteredAt,
		&user.LastActiveAt, &user.IsBanned, &user.IsPremium)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrUserNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &user, nil
}
