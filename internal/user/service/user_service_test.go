package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
	"github.com/msavelyev/adledger/internal/config"
	earningmodel "github.com/msavelyev/adledger/internal/earning/model"
	mock "github.com/msavelyev/adledger/internal/mocks"
	"github.com/msavelyev/adledger/internal/user/handler/dto"
	"github.com/msavelyev/adledger/internal/user/model"
)

// trManagerStub runs the transactional closure directly on the caller's
// context so repository expectations can be asserted without a database.
type trManagerStub struct{}

func (m *trManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *trManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var cfgMock = &config.Config{
	ReferralBonus: decimal.NewFromInt(10),
	WelcomeBonus:  decimal.NewFromInt(0),
}

type UserServiceSuite struct {
	suite.Suite
	userService *UserUseCase
	userRepo    *mock.MockUserRepository
	earningRepo *mock.MockEarningRepository
	ctrl        *gomock.Controller
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (u *UserServiceSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	u.ctrl = gomock.NewController(u.T())
	u.userRepo = mock.NewMockUserRepository(u.ctrl)
	u.earningRepo = mock.NewMockEarningRepository(u.ctrl)
	u.userService = NewUserService(u.userRepo, u.earningRepo, &trManagerStub{}, cfgMock, logger)
}

func (u *UserServiceSuite) TestRegisterWithoutReferrer() {
	request := dto.UserRegisterRequest{
		ExternalID: 123456,
		Username:   "awesome_user",
		FirstName:  "John",
	}

	u.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, user model.User) error {
			assert.Equal(u.T(), int64(123456), user.ExternalID)
			assert.Nil(u.T(), user.ReferredBy)
			assert.True(u.T(), user.Balance.IsZero())
			assert.Contains(u.T(), user.ReferralCode, "REF")
			return nil
		})

	response, err := u.userService.Register(context.Background(), request)
	require.NoError(u.T(), err)
	assert.Equal(u.T(), int64(123456), response.ExternalID)
}

func (u *UserServiceSuite) TestRegisterWithReferrer() {
	referrerExternalID := int64(111111)
	request := dto.UserRegisterRequest{
		ExternalID:         123456,
		Username:           "awesome_user",
		FirstName:          "John",
		ReferrerExternalID: &referrerExternalID,
	}

	referrer := &model.User{
		ID:         "referrer-id",
		ExternalID: referrerExternalID,
	}

	u.userRepo.EXPECT().SelectForUpdateByExternalID(gomock.Any(), referrerExternalID).Times(1).Return(referrer, nil)
	u.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, user model.User) error {
			require.NotNil(u.T(), user.ReferredBy)
			assert.Equal(u.T(), referrer.ID, *user.ReferredBy)
			return nil
		})
	u.earningRepo.EXPECT().InsertEvent(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, event earningmodel.Event) error {
			assert.Equal(u.T(), referrer.ID, event.UserID)
			assert.Equal(u.T(), earningmodel.KindReferralBonus, event.Kind)
			assert.True(u.T(), event.Amount.Equal(cfgMock.ReferralBonus))
			return nil
		})
	u.userRepo.EXPECT().Credit(gomock.Any(), referrer.ID, cfgMock.ReferralBonus).Times(1).Return(nil)

	_, err := u.userService.Register(context.Background(), request)
	require.NoError(u.T(), err)
}

func (u *UserServiceSuite) TestRegisterUnknownReferrer() {
	referrerExternalID := int64(999999)
	request := dto.UserRegisterRequest{
		ExternalID:         123456,
		FirstName:          "John",
		ReferrerExternalID: &referrerExternalID,
	}

	u.userRepo.EXPECT().SelectForUpdateByExternalID(gomock.Any(), referrerExternalID).Times(1).Return(nil, apperrors.ErrUserNotFound)
	u.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, user model.User) error {
			assert.Nil(u.T(), user.ReferredBy)
			return nil
		})
	u.userRepo.EXPECT().Credit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := u.userService.Register(context.Background(), request)
	require.NoError(u.T(), err)
}

func (u *UserServiceSuite) TestRegisterSelfReferral() {
	selfID := int64(123456)
	request := dto.UserRegisterRequest{
		ExternalID:         selfID,
		FirstName:          "John",
		ReferrerExternalID: &selfID,
	}

	u.userRepo.EXPECT().SelectForUpdateByExternalID(gomock.Any(), gomock.Any()).Times(0)
	u.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).Return(nil)
	u.userRepo.EXPECT().Credit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := u.userService.Register(context.Background(), request)
	require.NoError(u.T(), err)
}

func (u *UserServiceSuite) TestRegisterDuplicate() {
	request := dto.UserRegisterRequest{
		ExternalID: 123456,
		FirstName:  "John",
	}

	u.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).Return(apperrors.ErrUserAlreadyExists)

	response, err := u.userService.Register(context.Background(), request)
	assert.Nil(u.T(), response)
	assert.ErrorIs(u.T(), err, apperrors.ErrUserAlreadyExists)
}

func (u *UserServiceSuite) TestRegisterBusyRetriesExhausted() {
	referrerExternalID := int64(111111)
	request := dto.UserRegisterRequest{
		ExternalID:         123456,
		FirstName:          "John",
		ReferrerExternalID: &referrerExternalID,
	}
	serialization := &pgconn.PgError{Code: pgerrcode.SerializationFailure}

	u.userRepo.EXPECT().SelectForUpdateByExternalID(gomock.Any(), referrerExternalID).Times(3).Return(nil, serialization)
	u.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	response, err := u.userService.Register(context.Background(), request)
	assert.Nil(u.T(), response)
	assert.ErrorIs(u.T(), err, apperrors.ErrBusy)
}

func (u *UserServiceSuite) TestRegisterReferralCreditFailureRollsBack() {
	referrerExternalID := int64(111111)
	request := dto.UserRegisterRequest{
		ExternalID:         123456,
		FirstName:          "John",
		ReferrerExternalID: &referrerExternalID,
	}

	referrer := &model.User{ID: "referrer-id", ExternalID: referrerExternalID}

	u.userRepo.EXPECT().SelectForUpdateByExternalID(gomock.Any(), referrerExternalID).Times(1).Return(referrer, nil)
	u.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).Return(nil)
	u.earningRepo.EXPECT().InsertEvent(gomock.Any(), gomock.Any()).Times(1).Return(errors.New("insert failed"))

	response, err := u.userService.Register(context.Background(), request)
	assert.Nil(u.T(), response)
	assert.Error(u.T(), err)
}

func (u *UserServiceSuite) TestGetByExternalID() {
	u.userRepo.EXPECT().SelectByExternalID(gomock.Any(), int64(123456)).Times(1).Return(nil, apperrors.ErrUserNotFound)

	response, err := u.userService.GetByExternalID(context.Background(), int64(123456))
	assert.Nil(u.T(), response)
	assert.ErrorIs(u.T(), err, apperrors.ErrUserNotFound)
}
