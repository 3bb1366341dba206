package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Sdjishan552/fin/internal/core/domain"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteAllTransactions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByDateKey(ctx context.Context, dateKey string) ([]domain.Transaction, error) {
	args := m.Called(ctx, dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock EditLogRepository ---
type MockEditLogRepository struct {
	mock.Mock
}

func (m *MockEditLogRepository) SaveEditLog(ctx context.Context, entry domain.EditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEditLogRepository) DeleteAllEditLogs(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEditLogRepository) FindEditLogsByTxDateKey(ctx context.Context, txDateKey string) ([]domain.EditLogEntry, error) {
	args := m.Called(ctx, txDateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EditLogEntry), args.Error(1)
}

// --- Mock DenominationRepository ---
type MockDenominationRepository struct {
	mock.Mock
}

func (m *MockDenominationRepository) SaveSnapshot(ctx context.Context, snapshot domain.DenominationSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockDenominationRepository) FindSnapshotByDateKey(ctx context.Context, dateKey string) (*domain.DenominationSnapshot, error) {
	args := m.Called(ctx, dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DenominationSnapshot), args.Error(1)
}

// --- Mock SettingRepository ---
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) SaveSetting(ctx context.Context, setting domain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockSettingRepository) FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}
