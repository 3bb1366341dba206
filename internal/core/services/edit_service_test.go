package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Sdjishan552/fin/internal/apperrors"
	"github.com/Sdjishan552/fin/internal/core/domain"
	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/core/services"
	"github.com/Sdjishan552/fin/internal/dto"
	"github.com/Sdjishan552/fin/internal/utils/dateutil"
)

type EditServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockEditLogRepo *MockEditLogRepository
	service         portssvc.EditSvcFacade

	today     string
	yesterday string
}

func (suite *EditServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockEditLogRepo = new(MockEditLogRepository)
	ledgerSvc := services.NewLedgerService(suite.mockTxnRepo, time.UTC)
	suite.service = services.NewEditService(suite.mockTxnRepo, suite.mockEditLogRepo, ledgerSvc, time.UTC)

	suite.today = dateutil.Today(time.UTC)
	var err error
	suite.yesterday, err = dateutil.PrevDay(suite.today, time.UTC)
	suite.Require().NoError(err)
}

func (suite *EditServiceTestSuite) expense(dateKey string, amount int64, note string) domain.Transaction {
	return domain.Transaction{
		ID:        uuid.NewString(),
		DateKey:   dateKey,
		CreatedAt: time.Now(),
		Type:      domain.Expense,
		Amount:    amount,
		Note:      note,
	}
}

func (suite *EditServiceTestSuite) TestEditTransaction_TodaySuccess() {
	ctx := context.Background()
	txn := suite.expense(suite.today, 300, "tea")
	req := dto.EditTransactionRequest{Type: domain.Income, Amount: 500, Note: "sale"}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.ID).Return(&txn, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(u domain.Transaction) bool {
		return u.ID == txn.ID && u.Type == domain.Income && u.Amount == 500 && u.Note == "sale" &&
			u.DateKey == txn.DateKey && u.CreatedAt.Equal(txn.CreatedAt)
	})).Return(nil).Once()
	suite.mockEditLogRepo.On("SaveEditLog", ctx, mock.MatchedBy(func(e domain.EditLogEntry) bool {
		return e.TransactionID == txn.ID &&
			e.TxDateKey == suite.today &&
			e.OldValues == domain.TxnValues{Type: domain.Expense, Amount: 300, Note: "tea"} &&
			e.NewValues == domain.TxnValues{Type: domain.Income, Amount: 500, Note: "sale"}
	})).Return(nil).Once()

	updated, err := suite.service.EditTransaction(ctx, domain.Session{ViewDate: suite.today}, txn.ID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Income, updated.Type)
	// Today-dated edits never touch other days.
	suite.mockTxnRepo.AssertNumberOfCalls(suite.T(), "UpdateTransaction", 1)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockEditLogRepo.AssertExpectations(suite.T())
}

func (suite *EditServiceTestSuite) TestEditTransaction_RefusesOpeningAndAdjustment() {
	ctx := context.Background()
	opening := suite.expense(suite.today, 500, "")
	opening.Type = domain.Income
	opening.Meta = domain.TxnMeta{IsOpening: true}
	adjustment := suite.expense(suite.today, 50, "")
	adjustment.Type = domain.Adjustment

	suite.mockTxnRepo.On("FindTransactionByID", ctx, opening.ID).Return(&opening, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, adjustment.ID).Return(&adjustment, nil).Once()

	req := dto.EditTransactionRequest{Type: domain.Income, Amount: 100}

	_, err := suite.service.EditTransaction(ctx, domain.Session{ViewDate: suite.today}, opening.ID, req)
	suite.ErrorIs(err, apperrors.ErrNotEditable)

	_, err = suite.service.EditTransaction(ctx, domain.Session{ViewDate: suite.today}, adjustment.ID, req)
	suite.ErrorIs(err, apperrors.ErrNotEditable)

	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
	suite.mockEditLogRepo.AssertNotCalled(suite.T(), "SaveEditLog", mock.Anything, mock.Anything)
}

func (suite *EditServiceTestSuite) TestEditTransaction_PastWithoutElevation() {
	ctx := context.Background()
	txn := suite.expense(suite.yesterday, 300, "")
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.ID).Return(&txn, nil).Once()

	req := dto.EditTransactionRequest{Type: domain.Expense, Amount: 400, ConfirmRecalculation: true}
	_, err := suite.service.EditTransaction(ctx, domain.Session{ViewDate: suite.yesterday}, txn.ID, req)

	suite.ErrorIs(err, apperrors.ErrPermissionRequired)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *EditServiceTestSuite) TestEditTransaction_PastWithoutConfirmation() {
	ctx := context.Background()
	txn := suite.expense(suite.yesterday, 300, "")
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.ID).Return(&txn, nil).Once()

	req := dto.EditTransactionRequest{Type: domain.Expense, Amount: 400}
	session := domain.Session{ViewDate: suite.yesterday, PastUnlocked: true}
	_, err := suite.service.EditTransaction(ctx, session, txn.ID, req)

	// Rejected before any write, so no partially applied edit to explain.
	suite.ErrorIs(err, apperrors.ErrConfirmationRequired)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *EditServiceTestSuite) TestEditTransaction_PastRecalculatesForward() {
	ctx := context.Background()
	txn := suite.expense(suite.yesterday, 300, "")
	session := domain.Session{ViewDate: suite.yesterday, PastUnlocked: true}
	req := dto.EditTransactionRequest{Type: domain.Expense, Amount: 100, ConfirmRecalculation: true}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.ID).Return(&txn, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(u domain.Transaction) bool {
		return u.ID == txn.ID && u.Amount == 100
	})).Return(nil).Once()
	suite.mockEditLogRepo.On("SaveEditLog", ctx, mock.AnythingOfType("domain.EditLogEntry")).Return(nil).Once()

	// Amount dropped by 200, so yesterday closes 200 higher than today's
	// opening believes.
	opening := domain.Transaction{
		ID: uuid.NewString(), DateKey: suite.yesterday, CreatedAt: time.Now(),
		Type: domain.Income, Amount: 1000, Meta: domain.TxnMeta{IsOpening: true},
	}
	edited := txn
	edited.Amount = 100
	todayOpening := domain.Transaction{
		ID: uuid.NewString(), DateKey: suite.today, CreatedAt: time.Now(),
		Type: domain.Income, Amount: 700, Meta: domain.TxnMeta{IsOpening: true},
	}
	suite.mockTxnRepo.On("FindTransactionsByDateKey", ctx, suite.yesterday).
		Return([]domain.Transaction{opening, edited}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByDateKey", ctx, suite.today).
		Return([]domain.Transaction{todayOpening}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(u domain.Transaction) bool {
		return u.ID == todayOpening.ID && u.Amount == 900
	})).Return(nil).Once()

	updated, err := suite.service.EditTransaction(ctx, session, txn.ID, req)

	suite.Require().NoError(err)
	suite.Equal(int64(100), updated.Amount)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockEditLogRepo.AssertExpectations(suite.T())
}

func (suite *EditServiceTestSuite) TestEditTransaction_EditLogFailureSurfaced() {
	ctx := context.Background()
	txn := suite.expense(suite.today, 300, "tea")
	req := dto.EditTransactionRequest{Type: domain.Expense, Amount: 400, Note: "tea"}
	storeErr := errors.New("disk I/O error")

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.ID).Return(&txn, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockEditLogRepo.On("SaveEditLog", ctx, mock.AnythingOfType("domain.EditLogEntry")).Return(storeErr).Once()

	_, err := suite.service.EditTransaction(ctx, domain.Session{ViewDate: suite.today}, txn.ID, req)

	// The edit itself committed before the log write failed; the error must
	// be surfaced, not swallowed, and the update never rolled back or retried.
	suite.Require().Error(err)
	suite.ErrorIs(err, storeErr)
	suite.mockTxnRepo.AssertNumberOfCalls(suite.T(), "UpdateTransaction", 1)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockEditLogRepo.AssertExpectations(suite.T())
}

func (suite *EditServiceTestSuite) TestEditLogForDate() {
	ctx := context.Background()
	entries := []domain.EditLogEntry{{
		ID:            uuid.NewString(),
		TransactionID: uuid.NewString(),
		TxDateKey:     suite.today,
		OldValues:     domain.TxnValues{Type: domain.Expense, Amount: 300},
		NewValues:     domain.TxnValues{Type: domain.Expense, Amount: 400},
		EditedAt:      time.Now(),
	}}
	suite.mockEditLogRepo.On("FindEditLogsByTxDateKey", ctx, suite.today).Return(entries, nil).Once()

	got, err := suite.service.EditLogForDate(ctx, suite.today)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockEditLogRepo.AssertExpectations(suite.T())
}

func TestEditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EditServiceTestSuite))
}
