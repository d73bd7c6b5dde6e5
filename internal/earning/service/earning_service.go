package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	"github.com/msavelyev/adledger/internal/config"
	db "github.com/msavelyev/adledger/internal/database"
	"github.com/msavelyev/adledger/internal/earning/handler/dto"
	"github.com/msavelyev/adledger/internal/earning/model"
	"github.com/msavelyev/adledger/internal/earning/policy"
	usermodel "github.com/msavelyev/adledger/internal/user/model"
	"github.com/msavelyev/adledger/internal/utils"
)

type EarningRepository interface {
	InsertEvent(ctx context.Context, event model.Event) error
	GetOrCreateDailyCounter(ctx context.Context, counterID string, userID string, day time.Time) (*model.DailyCounter, error)
	SelectLastActionAt(ctx context.Context, userID string) (*time.Time, error)
	ApplyAction(ctx context.Context, event model.Event, day time.Time) error
	SelectByUser(ctx context.Context, userID string) ([]model.Event, error)
}

type UserRepository interface {
	SelectByExternalID(ctx context.Context, externalID int64) (*usermodel.User, error)
	SelectForUpdateByExternalID(ctx context.Context, externalID int64) (*usermodel.User, error)
	Credit(ctx context.Context, userID string, amount decimal.Decimal) error
}

type EarningUseCase struct {
	repository        EarningRepository
	userRepository    UserRepository
	limitPolicy       *policy.Policy
	trManager         trm.Manager
	trSettings        trm.Settings
	premiumMultiplier decimal.Decimal
	logger            *zap.Logger
}

func NewEarningService(repository EarningRepository, userRepository UserRepository, trManager trm.Manager, cfg *config.Config, logger *zap.Logger) *EarningUseCase {
	return &EarningUseCase{
		repository:     repository,
		userRepository: userRepository,
		limitPolicy: policy.New(policy.Limits{
			DailyEarningLimit: cfg.DailyEarningLimit,
			MaxActionsPerDay:  cfg.MaxActionsPerDay,
			Cooldown:          cfg.ActionCooldown,
		}),
		trManager: trManager,
		trSettings: pgxv5.MustSettings(
			settings.Must(settings.WithCancelable(true)),
			pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.RepeatableRead}),
		),
		premiumMultiplier: cfg.PremiumMultiplier,
		logger:            logger,
	}
}

// RecordAction credits one completed timed action. The user row is locked
// first, then today's counter and the last action timestamp are read, the
// limit policy is evaluated, and only then the reward rows are written, all
// inside one transaction. A policy denial rolls the transaction back, so a
// denied call leaves no trace.
func (e *EarningUseCase) RecordAction(ctx context.Context, externalID int64, baseAmount decimal.Decimal, description string) (*dto.ActionResponse, error) {
	var response dto.ActionResponse

	err := db.DoWithRetry(ctx, e.trManager, e.trSettings, e.logger, func(ctx context.Context) error {
		user, err := e.userRepository.SelectForUpdateByExternalID(ctx, externalID)
		if err != nil {
			return err
		}

		effectiveAmount := baseAmount
		if user.IsPremium {
			effectiveAmount = baseAmount.Mul(e.premiumMultiplier)
		}

		now := time.Now()
		day := calendarDay(now)

		counter, err := e.repository.GetOrCreateDailyCounter(ctx, uuid.New().String(), user.ID, day)
		if err != nil {
			return err
		}

		lastActionAt, err := e.repository.SelectLastActionAt(ctx, user.ID)
		if err != nil {
			return err
		}

		if errPolicy := e.limitPolicy.Check(user, counter, lastActionAt, now, effectiveAmount); errPolicy != nil {
			return errPolicy
		}

		event := model.Event{
			ID:          uuid.New().String(),
			UserID:      user.ID,
			Amount:      effectiveAmount,
			Kind:        model.KindActionReward,
			Description: description,
			EarnedAt:    now,
		}

		if err := e.repository.ApplyAction(ctx, event, day); err != nil {
			return err
		}

		response = dto.ActionResponse{
			EventID:  event.ID,
			Amount:   effectiveAmount,
			Balance:  user.Balance.Add(effectiveAmount),
			EarnedAt: now.Format(time.RFC3339),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// RecordAdjustment credits a manual admin adjustment. Adjustments are a
// separate earning kind and deliberately bypass the limit policy.
func (e *EarningUseCase) RecordAdjustment(ctx context.Context, externalID int64, amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return apperrors.ErrBadAmount
	}

	return db.DoWithRetry(ctx, e.trManager, e.trSettings, e.logger, func(ctx context.Context) error {
		user, err := e.userRepository.SelectForUpdateByExternalID(ctx, externalID)
		if err != nil {
			return err
		}

		event := model.Event{
			ID:          uuid.New().String(),
			UserID:      user.ID,
			Amount:      amount,
			Kind:        model.KindAdminAdjustment,
			Description: description,
			EarnedAt:    time.Now(),
		}

		if err := e.repository.InsertEvent(ctx, event); err != nil {
			return err
		}

		return e.userRepository.Credit(ctx, user.ID, amount)
	})
}

func (e *EarningUseCase) GetByUser(ctx context.Context, externalID int64) ([]dto.EarningResponse, error) {
	user, err := e.userRepository.SelectByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	events, err := e.repository.SelectByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	earningResponses := make([]dto.EarningResponse, 0, len(events))
	for _, v := range events {
		earningResponses = append(earningResponses, dto.MapToEarningResponse(v))
	}

	return earningResponses, nil
}

func calendarDay(now time.Time) time.Time {
	utc := now.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
