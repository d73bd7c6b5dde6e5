package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/stats/handler/dto"
	"github.com/msavelyev/adledger/internal/stats/model"
	"github.com/msavelyev/adledger/internal/utils"
)

type StatsRepository interface {
	SelectUserStats(ctx context.Context, externalID int64, day time.Time) (*model.UserStats, error)
}

type StatsUseCase struct {
	repository StatsRepository
	logger     *zap.Logger
}

func NewStatsService(repository StatsRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (s *StatsUseCase) GetByUser(ctx context.Context, externalID int64) (*dto.UserStatsResponse, error) {
	utcNow := time.Now().UTC()
	day := time.Date(utcNow.Year(), utcNow.Month(), utcNow.Day(), 0, 0, 0, 0, time.UTC)

	stats, err := s.repository.SelectUserStats(ctx, externalID, day)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	response := dto.MapToUserStatsResponse(*stats)

	return &response, nil
}
