package repository

import (
	"context"
	_ "embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	db "github.com/msavelyev/adledger/internal/database"
	"github.com/msavelyev/adledger/internal/offer/model"
	"github.com/msavelyev/adledger/internal/utils"
)

//go:embed queries/upsert_offer.sql
var upsertOffer string

//go:embed queries/select_active_offers.sql
var selectActiveOffers string

//go:embed queries/select_offer_by_id.sql
var selectOfferByID string

type PostgresOfferRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
}

func NewPostgresOfferRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresOfferRepository {
	return &PostgresOfferRepository{
		postgresPool: postgresPool,
		logger:       logger,
	}
}

func (r *PostgresOfferRepository) Upsert(ctx context.Context, offer model.Offer) error {
	_, err := r.postgresPool.DB.Exec(ctx, upsertOffer,
		offer.ID, offer.ExternalRef, offer.Title, offer.Description, offer.URL,
		offer.Reward, offer.DurationSeconds, offer.Category, offer.IsActive)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresOfferRepository) SelectActive(ctx context.Context) ([]model.Offer, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectActiveOffers)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	offers, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Offer])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return offers, nil
}

func (r *PostgresOfferRepository) SelectByID(ctx context.Context, id string) (*model.Offer, error) {
	var offer model.Offer
	err := r.postgresPool.DB.QueryRow(ctx, selectOfferByID, id).Scan(
		&offer.ID, &offer.ExternalRef, &offer.Title, &offer.Description, &offer.URL,
		&offer.Reward, &offer.DurationSeconds, &offer.Category, &offer.IsActive, &offer.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrOfferNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &offer, nil
}
