package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
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
	usermodel "github.com/msavelyev/adledger/internal/user/model"
	"github.com/msavelyev/adledger/internal/utils"
	"github.com/msavelyev/adledger/internal/withdrawal/handler/dto"
	"github.com/msavelyev/adledger/internal/withdrawal/model"
)

const methodCard = "card"

type WithdrawalRepository interface {
	Insert(ctx context.Context, withdrawal model.Withdrawal) error
	HoldBalance(ctx context.Context, userID string, amount decimal.Decimal) error
	ReleaseHold(ctx context.Context, userID string, amount decimal.Decimal) error
	SettlePaid(ctx context.Context, userID string, amount decimal.Decimal) error
	SelectForUpdate(ctx context.Context, id string) (*model.Withdrawal, error)
	UpdateStatus(ctx context.Context, id string, status model.Status, transactionRef *string, processedAt *time.Time, notes string) error
	SelectByUserExternalID(ctx context.Context, externalID int64) ([]model.Withdrawal, error)
	SelectByStatus(ctx context.Context, status model.Status) ([]model.Withdrawal, error)
}

type UserRepository interface {
	SelectForUpdateByExternalID(ctx context.Context, externalID int64) (*usermodel.User, error)
	SelectForUpdateByID(ctx context.Context, id string) (*usermodel.User, error)
}

type WithdrawalUseCase struct {
	repository        WithdrawalRepository
	userRepository    UserRepository
	trManager         trm.Manager
	trSettings        trm.Settings
	minimumWithdrawal decimal.Decimal
	logger            *zap.Logger
}

func NewWithdrawalService(repository WithdrawalRepository, userRepository UserRepository, trManager trm.Manager, cfg *config.Config, logger *zap.Logger) *WithdrawalUseCase {
	return &WithdrawalUseCase{
		repository:     repository,
		userRepository: userRepository,
		trManager:      trManager,
		trSettings: pgxv5.MustSettings(
			settings.Must(settings.WithCancelable(true)),
			pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.RepeatableRead}),
		),
		minimumWithdrawal: cfg.MinimumWithdrawal,
		logger:            logger,
	}
}

// Request places a hold: the amount leaves the balance the moment the pending
// request is created, so it cannot be requested twice. total_withdrawn is not
// touched until the request is actually paid.
func (w *WithdrawalUseCase) Request(ctx context.Context, externalID int64, request dto.WithdrawalRequest) (*dto.WithdrawalResponse, error) {
	if request.Method == methodCard {
		if err := goluhn.Validate(request.Destination); err != nil {
			return nil, apperrors.ErrBadDestination
		}
	}

	var created model.Withdrawal

	errTransaction := db.DoWithRetry(ctx, w.trManager, w.trSettings, w.logger, func(ctx context.Context) error {
		user, err := w.userRepository.SelectForUpdateByExternalID(ctx, externalID)
		if err != nil {
			return err
		}

		if user.IsBanned {
			return apperrors.ErrUserBanned
		}

		if request.Amount.LessThan(w.minimumWithdrawal) {
			return apperrors.ErrBelowMinimum
		}

		if request.Amount.GreaterThan(user.Balance) {
			return apperrors.ErrInsufficientFunds
		}

		withdrawal := model.Withdrawal{
			ID:          uuid.New().String(),
			UserID:      user.ID,
			Amount:      request.Amount,
			Method:      request.Method,
			Destination: request.Destination,
			Status:      model.StatusPending,
			RequestedAt: time.Now(),
		}

		if err := w.repository.HoldBalance(ctx, user.ID, withdrawal.Amount); err != nil {
			return err
		}

		if err := w.repository.Insert(ctx, withdrawal); err != nil {
			return err
		}

		created = withdrawal
		return nil
	})
	if errTransaction != nil {
		return nil, errTransaction
	}

	response := dto.MapToWithdrawalResponse(created)

	return &response, nil
}

// Transition drives the request lifecycle. Rejection restores the held
// amount, payment settles it into total_withdrawn; both happen in the same
// transaction as the status change. Terminal requests never change again.
func (w *WithdrawalUseCase) Transition(ctx context.Context, id string, toStatus model.Status, transactionRef *string, notes string) (*dto.WithdrawalResponse, error) {
	if !toStatus.IsValid() {
		return nil, apperrors.ErrInvalidTransition
	}

	var updated model.Withdrawal

	errTransaction := db.DoWithRetry(ctx, w.trManager, w.trSettings, w.logger, func(ctx context.Context) error {
		withdrawal, err := w.repository.SelectForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if !withdrawal.Status.CanTransitionTo(toStatus) {
			return apperrors.ErrInvalidTransition
		}

		// lock the owner too: hold release and settlement mutate the user row
		if _, err := w.userRepository.SelectForUpdateByID(ctx, withdrawal.UserID); err != nil {
			return err
		}

		now := time.Now()
		var processedAt *time.Time
		if toStatus == model.StatusRejected || toStatus == model.StatusPaid {
			processedAt = &now
		}

		switch toStatus {
		case model.StatusRejected:
			if err := w.repository.ReleaseHold(ctx, withdrawal.UserID, withdrawal.Amount); err != nil {
				return err
			}
		case model.StatusPaid:
			if err := w.repository.SettlePaid(ctx, withdrawal.UserID, withdrawal.Amount); err != nil {
				return err
			}
		}

		ref := withdrawal.TransactionRef
		if transactionRef != nil {
			ref = transactionRef
		}

		resultNotes := withdrawal.Notes
		if notes != "" {
			resultNotes = notes
		}

		if err := w.repository.UpdateStatus(ctx, withdrawal.ID, toStatus, ref, processedAt, resultNotes); err != nil {
			return err
		}

		updated = *withdrawal
		updated.Status = toStatus
		updated.TransactionRef = ref
		updated.ProcessedAt = processedAt
		updated.Notes = resultNotes
		return nil
	})
	if errTransaction != nil {
		return nil, errTransaction
	}

	response := dto.MapToWithdrawalResponse(updated)

	return &response, nil
}

func (w *WithdrawalUseCase) GetByUser(ctx context.Context, externalID int64) ([]dto.WithdrawalResponse, error) {
	withdrawals, err := w.repository.SelectByUserExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return mapToResponses(withdrawals), nil
}

func (w *WithdrawalUseCase) GetByStatus(ctx context.Context, status model.Status) ([]dto.WithdrawalResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrUnknownStatus
	}

	withdrawals, err := w.repository.SelectByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return mapToResponses(withdrawals), nil
}

func mapToResponses(withdrawals []model.Withdrawal) []dto.WithdrawalResponse {
	responses := make([]dto.WithdrawalResponse, 0, len(withdrawals))
	for _, v := range withdrawals {
		responses = append(responses, dto.MapToWithdrawalResponse(v))
	}

	return responses
}
