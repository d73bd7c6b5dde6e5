package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	"github.com/msavelyev/adledger/internal/offer/model"
	"github.com/msavelyev/adledger/internal/offer/provider"
)

const syncInterval = 5 * time.Minute

type OfferQuerier interface {
	QueryOffers() ([]provider.ProviderOffer, error)
}

// OfferSyncUseCase keeps the local offer catalog in step with the external ad
// provider. It runs in the background and never blocks request handling.
type OfferSyncUseCase struct {
	repository OfferRepository
	querier    OfferQuerier
	logger     *zap.Logger
}

func NewOfferSyncService(repository OfferRepository, querier OfferQuerier, logger *zap.Logger) *OfferSyncUseCase {
	return &OfferSyncUseCase{
		repository: repository,
		querier:    querier,
		logger:     logger,
	}
}

func (o *OfferSyncUseCase) Run() {
	go func() {
		limiter := ratelimit.New(10)
		for {
			o.syncOnce(limiter)
			time.Sleep(syncInterval)
		}
	}()
}

func (o *OfferSyncUseCase) syncOnce(rl ratelimit.Limiter) {
	rl.Take()

	offers, err := o.querier.QueryOffers()
	if errors.Is(err, apperrors.ErrRateLimit) {
		o.logger.Warn("offer provider throttled, skipping sync cycle")
		return
	}

	if err != nil {
		o.logger.Error("unable to query offers", zap.Error(err))
		return
	}

	for _, po := range offers {
		offer := model.Offer{
			ID:              uuid.New().String(),
			ExternalRef:     po.Ref,
			Title:           po.Title,
			Description:     po.Description,
			URL:             po.URL,
			Reward:          po.Reward,
			DurationSeconds: po.DurationSeconds,
			Category:        po.Category,
			IsActive:        po.Active,
		}

		if errUpsert := o.repository.Upsert(context.Background(), offer); errUpsert != nil {
			o.logger.Error("unable to upsert offer", zap.String("ref", po.Ref), zap.Error(errUpsert))
		}
	}
}
