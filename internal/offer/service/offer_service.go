package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/offer/handler/dto"
	"github.com/msavelyev/adledger/internal/offer/model"
	"github.com/msavelyev/adledger/internal/utils"
)

type OfferRepository interface {
	Upsert(ctx context.Context, offer model.Offer) error
	SelectActive(ctx context.Context) ([]model.Offer, error)
	SelectByID(ctx context.Context, id string) (*model.Offer, error)
}

type OfferUseCase struct {
	repository OfferRepository
	logger     *zap.Logger
}

func NewOfferService(repository OfferRepository, logger *zap.Logger) *OfferUseCase {
	return &OfferUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (o *OfferUseCase) GetActive(ctx context.Context) ([]dto.OfferResponse, error) {
	offers, err := o.repository.SelectActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	offerResponses := make([]dto.OfferResponse, 0, len(offers))
	for _, v := range offers {
		offerResponses = append(offerResponses, dto.MapToOfferResponse(v))
	}

	return offerResponses, nil
}

func (o *OfferUseCase) GetByID(ctx context.Context, id string) (*dto.OfferResponse, error) {
	offer, err := o.repository.SelectByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	response := dto.MapToOfferResponse(*offer)

	return &response, nil
}
