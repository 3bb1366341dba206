package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Sdjishan552/fin/internal/apperrors"
	"github.com/Sdjishan552/fin/internal/core/domain"
	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/core/services"
	"github.com/Sdjishan552/fin/internal/utils"
)

type ElevationServiceTestSuite struct {
	suite.Suite
	mockSettingRepo *MockSettingRepository
	service         portssvc.ElevationSvcFacade
}

func (suite *ElevationServiceTestSuite) SetupTest() {
	suite.mockSettingRepo = new(MockSettingRepository)
	checker := services.NewPINChecker(suite.mockSettingRepo)
	suite.service = services.NewElevationService(suite.mockSettingRepo, checker, "test-secret", 30*time.Minute, "fin-test")
}

func (suite *ElevationServiceTestSuite) pinSetting(pin string) *domain.Setting {
	hash, err := utils.HashPIN(pin)
	suite.Require().NoError(err)
	return &domain.Setting{Key: domain.SettingPINHash, Value: hash, Alg: "bcrypt"}
}

func (suite *ElevationServiceTestSuite) TestSetupPIN_FirstTime() {
	ctx := context.Background()
	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingPINHash).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSettingRepo.On("SaveSetting", ctx, mock.MatchedBy(func(s domain.Setting) bool {
		return s.Key == domain.SettingPINHash && s.Alg == "bcrypt" && utils.CheckPINHash("1234", s.Value)
	})).Return(nil).Once()

	err := suite.service.SetupPIN(ctx, "1234")

	suite.Require().NoError(err)
	suite.mockSettingRepo.AssertExpectations(suite.T())
}

func (suite *ElevationServiceTestSuite) TestSetupPIN_AlreadyConfigured() {
	ctx := context.Background()
	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingPINHash).
		Return(suite.pinSetting("1234"), nil).Once()

	err := suite.service.SetupPIN(ctx, "5678")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockSettingRepo.AssertNotCalled(suite.T(), "SaveSetting", mock.Anything, mock.Anything)
}

func (suite *ElevationServiceTestSuite) TestSetupPIN_Malformed() {
	for _, pin := range []string{"12", "12345", "abcd", "12a4"} {
		err := suite.service.SetupPIN(context.Background(), pin)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *ElevationServiceTestSuite) TestUnlock_IssuesDateBoundToken() {
	ctx := context.Background()
	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingPINHash).
		Return(suite.pinSetting("1234"), nil).Once()

	token, expiresAt, err := suite.service.Unlock(ctx, "1234", "2024-01-15")

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.True(expiresAt.After(time.Now()))

	suite.True(suite.service.Verify(token, "2024-01-15"))
	// A token for one date is worthless for any other.
	suite.False(suite.service.Verify(token, "2024-01-16"))
}

func (suite *ElevationServiceTestSuite) TestUnlock_WrongPIN() {
	ctx := context.Background()
	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingPINHash).
		Return(suite.pinSetting("1234"), nil).Once()

	token, _, err := suite.service.Unlock(ctx, "9999", "2024-01-15")

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ElevationServiceTestSuite) TestUnlock_NoPINConfigured() {
	ctx := context.Background()
	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingPINHash).
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Unlock(ctx, "1234", "2024-01-15")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ElevationServiceTestSuite) TestVerify_GarbageToken() {
	suite.False(suite.service.Verify("not-a-jwt", "2024-01-15"))
	suite.False(suite.service.Verify("", "2024-01-15"))
}

func TestElevationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ElevationServiceTestSuite))
}
