package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Sdjishan552/fin/internal/apperrors"
	"github.com/Sdjishan552/fin/internal/core/domain"
	portsrepo "github.com/Sdjishan552/fin/internal/core/ports/repositories"
)

// newTestDB opens a fresh in-memory database with migrations applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	require.NoError(t, err)
	m, err := migrate.NewWithDatabaseInstance("file://../../../../migrations/sqlite", "sqlite3", driver)
	require.NoError(t, err)
	require.NoError(t, m.Up())

	return db
}

type TransactionRepositoryTestSuite struct {
	suite.Suite
	repos *portsrepo.RepositoryProvider
}

func (suite *TransactionRepositoryTestSuite) SetupTest() {
	suite.repos = NewRepositoryProvider(newTestDB(suite.T()))
}

func (suite *TransactionRepositoryTestSuite) txn(dateKey string, typ domain.EntryType, amount int64, createdAt time.Time) domain.Transaction {
	return domain.Transaction{
		ID:        uuid.NewString(),
		DateKey:   dateKey,
		CreatedAt: createdAt,
		Type:      typ,
		Amount:    amount,
		Note:      "note",
	}
}

func (suite *TransactionRepositoryTestSuite) TestSaveAndFindByID_MetaRoundTrip() {
	ctx := context.Background()
	repo := suite.repos.Transaction

	txn := suite.txn("2024-01-15", domain.Adjustment, -250, time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC))
	txn.Meta = domain.TxnMeta{
		Source:        "denomCheck",
		CoveredBy:     domain.Income,
		CoveredAmount: 250,
		ReversedAdjID: "orig-id",
		ReversedFrom:  "2024-01-10",
	}
	suite.Require().NoError(repo.SaveTransaction(ctx, txn))

	got, err := repo.FindTransactionByID(ctx, txn.ID)
	suite.Require().NoError(err)
	suite.Equal(txn.ID, got.ID)
	suite.Equal(txn.DateKey, got.DateKey)
	suite.Equal(txn.Type, got.Type)
	suite.Equal(txn.Amount, got.Amount)
	suite.Equal(txn.Note, got.Note)
	suite.Equal(txn.Meta, got.Meta)
	suite.True(txn.CreatedAt.Equal(got.CreatedAt))
}

func (suite *TransactionRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := suite.repos.Transaction.FindTransactionByID(context.Background(), "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionRepositoryTestSuite) TestFindByDateKey_OrderedByCreatedAt() {
	ctx := context.Background()
	repo := suite.repos.Transaction
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	late := suite.txn("2024-01-15", domain.Expense, 100, base.Add(2*time.Hour))
	early := suite.txn("2024-01-15", domain.Income, 500, base)
	otherDay := suite.txn("2024-01-16", domain.Income, 900, base)

	for _, t := range []domain.Transaction{late, early, otherDay} {
		suite.Require().NoError(repo.SaveTransaction(ctx, t))
	}

	got, err := repo.FindTransactionsByDateKey(ctx, "2024-01-15")
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(early.ID, got[0].ID)
	suite.Equal(late.ID, got[1].ID)
}

func (suite *TransactionRepositoryTestSuite) TestUpdateTransaction() {
	ctx := context.Background()
	repo := suite.repos.Transaction

	txn := suite.txn("2024-01-15", domain.Expense, 100, time.Now().UTC())
	suite.Require().NoError(repo.SaveTransaction(ctx, txn))

	txn.Amount = 175
	txn.Note = "edited"
	suite.Require().NoError(repo.UpdateTransaction(ctx, txn))

	got, err := repo.FindTransactionByID(ctx, txn.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(175), got.Amount)
	suite.Equal("edited", got.Note)

	missing := txn
	missing.ID = "missing"
	suite.ErrorIs(repo.UpdateTransaction(ctx, missing), apperrors.ErrNotFound)
}

func (suite *TransactionRepositoryTestSuite) TestDeleteTransaction() {
	ctx := context.Background()
	repo := suite.repos.Transaction

	txn := suite.txn("2024-01-15", domain.Income, 100, time.Now().UTC())
	suite.Require().NoError(repo.SaveTransaction(ctx, txn))
	suite.Require().NoError(repo.DeleteTransaction(ctx, txn.ID))

	_, err := repo.FindTransactionByID(ctx, txn.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(repo.DeleteTransaction(ctx, txn.ID), apperrors.ErrNotFound)
}

func (suite *TransactionRepositoryTestSuite) TestSaveTransaction_SecondOpeningSameDayRejected() {
	ctx := context.Background()
	repo := suite.repos.Transaction

	opening := suite.txn("2024-01-15", domain.Income, 500, time.Now().UTC())
	opening.Meta = domain.TxnMeta{IsOpening: true}
	suite.Require().NoError(repo.SaveTransaction(ctx, opening))

	// A second opening row for the same day violates the store constraint.
	dupe := suite.txn("2024-01-15", domain.Income, 500, time.Now().UTC())
	dupe.Meta = domain.TxnMeta{IsOpening: true}
	suite.ErrorIs(repo.SaveTransaction(ctx, dupe), apperrors.ErrDuplicate)

	// Ordinary entries on the same day and openings on other days are fine.
	suite.NoError(repo.SaveTransaction(ctx, suite.txn("2024-01-15", domain.Income, 100, time.Now().UTC())))
	nextDay := suite.txn("2024-01-16", domain.Income, 600, time.Now().UTC())
	nextDay.Meta = domain.TxnMeta{IsOpening: true}
	suite.NoError(repo.SaveTransaction(ctx, nextDay))
}

func (suite *TransactionRepositoryTestSuite) TestDeleteAllLeavesOtherTables() {
	ctx := context.Background()

	txn := suite.txn("2024-01-15", domain.Income, 100, time.Now().UTC())
	suite.Require().NoError(suite.repos.Transaction.SaveTransaction(ctx, txn))
	setting := domain.Setting{Key: "pinHash", Value: "hash", Alg: "bcrypt"}
	suite.Require().NoError(suite.repos.Setting.SaveSetting(ctx, setting))

	suite.Require().NoError(suite.repos.Transaction.DeleteAllTransactions(ctx))

	all, err := suite.repos.Transaction.FindAllTransactions(ctx)
	suite.Require().NoError(err)
	suite.Empty(all)

	// Settings survive a transaction wipe.
	got, err := suite.repos.Setting.FindSettingByKey(ctx, "pinHash")
	suite.Require().NoError(err)
	suite.Equal("hash", got.Value)
}

func (suite *TransactionRepositoryTestSuite) TestEditLogRepository() {
	ctx := context.Background()
	repo := suite.repos.EditLog

	entry := domain.EditLogEntry{
		ID:            uuid.NewString(),
		TransactionID: uuid.NewString(),
		TxDateKey:     "2024-01-15",
		OldValues:     domain.TxnValues{Type: domain.Expense, Amount: 300, Note: "tea"},
		NewValues:     domain.TxnValues{Type: domain.Income, Amount: 500, Note: "sale"},
		EditedAt:      time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC),
	}
	suite.Require().NoError(repo.SaveEditLog(ctx, entry))

	got, err := repo.FindEditLogsByTxDateKey(ctx, "2024-01-15")
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(entry.OldValues, got[0].OldValues)
	suite.Equal(entry.NewValues, got[0].NewValues)

	none, err := repo.FindEditLogsByTxDateKey(ctx, "2024-01-16")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *TransactionRepositoryTestSuite) TestDenominationRepository_Upsert() {
	ctx := context.Background()
	repo := suite.repos.Denomination

	first := domain.DenominationSnapshot{
		DateKey: "2024-01-15",
		Values:  domain.DenominationCount{500: 2, 100: 3},
		Total:   1300,
		SavedAt: time.Date(2024, 1, 15, 21, 0, 0, 0, time.UTC),
	}
	suite.Require().NoError(repo.SaveSnapshot(ctx, first))

	// A recount overwrites the day's snapshot.
	second := first
	second.Values = domain.DenominationCount{500: 3}
	second.Total = 1500
	suite.Require().NoError(repo.SaveSnapshot(ctx, second))

	got, err := repo.FindSnapshotByDateKey(ctx, "2024-01-15")
	suite.Require().NoError(err)
	suite.Equal(int64(1500), got.Total)
	suite.Equal(second.Values, got.Values)

	_, err = repo.FindSnapshotByDateKey(ctx, "2024-01-16")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}
