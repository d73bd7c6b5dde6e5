package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
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
	earningmodel "github.com/msavelyev/adledger/internal/earning/model"
	"github.com/msavelyev/adledger/internal/user/handler/dto"
	"github.com/msavelyev/adledger/internal/user/model"
	"github.com/msavelyev/adledger/internal/utils"
)

type UserRepository interface {
	Insert(ctx context.Context, user model.User) error
	SelectByExternalID(ctx context.Context, externalID int64) (*model.User, error)
	SelectForUpdateByExternalID(ctx context.Context, externalID int64) (*model.User, error)
	Credit(ctx context.Context, userID string, amount decimal.Decimal) error
}

type EarningRepository interface {
	InsertEvent(ctx context.Context, event earningmodel.Event) error
}

type UserUseCase struct {
	repository        UserRepository
	earningRepository EarningRepository
	trManager         trm.Manager
	trSettings        trm.Settings
	welcomeBonus      decimal.Decimal
	referralBonus     decimal.Decimal
	logger            *zap.Logger
}

func NewUserService(repository UserRepository, earningRepository EarningRepository, trManager trm.Manager, cfg *config.Config, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{
		repository:        repository,
		earningRepository: earningRepository,
		trManager:         trManager,
		trSettings: pgxv5.MustSettings(
			settings.Must(settings.WithCancelable(true)),
			pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.RepeatableRead}),
		),
		welcomeBonus:  cfg.WelcomeBonus,
		referralBonus: cfg.ReferralBonus,
		logger:        logger,
	}
}

// Register creates the user, its welcome bonus and the referrer's one-time
// referral bonus in a single transaction: the referral credit and the new
// account commit or roll back together. An unresolvable referrer id is not an
// error, registration proceeds without a referrer.
func (u *UserUseCase) Register(ctx context.Context, request dto.UserRegisterRequest) (*dto.UserResponse, error) {
	var created model.User

	errTransaction := db.DoWithRetry(ctx, u.trManager, u.trSettings, u.logger, func(ctx context.Context) error {
		var referrer *model.User
		if request.ReferrerExternalID != nil && *request.ReferrerExternalID != request.ExternalID {
			r, err := u.repository.SelectForUpdateByExternalID(ctx, *request.ReferrerExternalID)
			if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
				return err
			}
			referrer = r
		}

		now := time.Now()

		user := model.User{
			ID:           uuid.New().String(),
			ExternalID:   request.ExternalID,
			Username:     request.Username,
			FirstName:    request.FirstName,
			LastName:     request.LastName,
			ReferralCode: generateReferralCode(),
			Balance:      u.welcomeBonus,
			TotalEarned:  u.welcomeBonus,
			RegisteredAt: now,
			LastActiveAt: now,
		}
		if referrer != nil {
			user.ReferredBy = &referrer.ID
		}

		if err := u.repository.Insert(ctx, user); err != nil {
			return err
		}

		if u.welcomeBonus.IsPositive() {
			welcome := earningmodel.Event{
				ID:          uuid.New().String(),
				UserID:      user.ID,
				Amount:      u.welcomeBonus,
				Kind:        earningmodel.KindWelcomeBonus,
				Description: "Welcome bonus",
				EarnedAt:    now,
			}
			if err := u.earningRepository.InsertEvent(ctx, welcome); err != nil {
				return err
			}
		}

		if referrer != nil && u.referralBonus.IsPositive() {
			bonus := earningmodel.Event{
				ID:          uuid.New().String(),
				UserID:      referrer.ID,
				Amount:      u.referralBonus,
				Kind:        earningmodel.KindReferralBonus,
				Description: fmt.Sprintf("Referral bonus for inviting user %d", user.ExternalID),
				EarnedAt:    now,
			}
			if err := u.earningRepository.InsertEvent(ctx, bonus); err != nil {
				return err
			}
			if err := u.repository.Credit(ctx, referrer.ID, u.referralBonus); err != nil {
				return err
			}
		}

		created = user
		return nil
	})

	if errors.Is(errTransaction, apperrors.ErrUserAlreadyExists) {
		return nil, errTransaction
	}

	if errTransaction != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), errTransaction)
	}

	response := dto.MapToUserResponse(created)

	return &response, nil
}

func (u *UserUseCase) GetByExternalID(ctx context.Context, externalID int64) (*dto.UserResponse, error) {
	user, err := u.repository.SelectByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	response := dto.MapToUserResponse(*user)

	return &response, nil
}

func generateReferralCode() string {
	entropy := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "REF" + entropy[:10]
}
