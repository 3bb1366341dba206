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
	"github.com/Sdjishan552/fin/internal/utils/dateutil"
)

type AdminServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockEditLogRepo *MockEditLogRepository
	mockSettingRepo *MockSettingRepository
	service         portssvc.AdminSvcFacade

	today     string
	yesterday string
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockEditLogRepo = new(MockEditLogRepository)
	suite.mockSettingRepo = new(MockSettingRepository)
	ledgerSvc := services.NewLedgerService(suite.mockTxnRepo, time.UTC)
	checker := services.NewPINChecker(suite.mockSettingRepo)
	suite.service = services.NewAdminService(suite.mockTxnRepo, suite.mockEditLogRepo, ledgerSvc, checker)

	suite.today = dateutil.Today(time.UTC)
	var err error
	suite.yesterday, err = dateutil.PrevDay(suite.today, time.UTC)
	suite.Require().NoError(err)
}

func (suite *AdminServiceTestSuite) TestWipeData_Success() {
	ctx := context.Background()
	hash, err := utils.HashPIN("1234")
	suite.Require().NoError(err)
	hashSetting := &domain.Setting{Key: domain.SettingPINHash, Value: hash, Alg: "bcrypt"}
	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingPINHash).Return(hashSetting, nil).Once()
	suite.mockTxnRepo.On("DeleteAllTransactions", ctx).Return(nil).Once()
	suite.mockEditLogRepo.On("DeleteAllEditLogs", ctx).Return(nil).Once()

	// Fresh opening balance for today, starting from nothing.
	suite.mockTxnRepo.On("FindTransactionsByDateKey", ctx, suite.today).Return([]domain.Transaction{}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByDateKey", ctx, suite.yesterday).Return([]domain.Transaction{}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.IsOpening() && txn.Amount == 0 && txn.DateKey == suite.today
	})).Return(nil).Once()

	err = suite.service.WipeData(ctx, "1234")

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockEditLogRepo.AssertExpectations(suite.T())
}

func (suite *AdminServiceTestSuite) TestWipeData_WrongPIN() {
	ctx := context.Background()
	hash, err := utils.HashPIN("1234")
	suite.Require().NoError(err)
	hashSetting := &domain.Setting{Key: domain.SettingPINHash, Value: hash, Alg: "bcrypt"}
	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingPINHash).Return(hashSetting, nil).Once()

	err = suite.service.WipeData(ctx, "0000")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteAllTransactions", mock.Anything)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
