package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryTypeIsValid(t *testing.T) {
	assert.True(t, Income.IsValid())
	assert.True(t, Expense.IsValid())
	assert.True(t, Adjustment.IsValid())
	assert.False(t, EntryType("transfer").IsValid())
	assert.False(t, EntryType("").IsValid())
}

func TestTransactionClassifiers(t *testing.T) {
	opening := Transaction{Type: Income, Meta: TxnMeta{IsOpening: true}}
	assert.True(t, opening.IsOpening())
	assert.False(t, opening.IsCorrection())

	original := Transaction{Type: Adjustment, Amount: 50}
	assert.True(t, original.IsAdjustmentOriginal())
	assert.False(t, original.IsCorrection())

	correction := Transaction{Type: Adjustment, Amount: -50, Meta: TxnMeta{ReversedAdjID: "abc"}}
	assert.True(t, correction.IsCorrection())
	assert.False(t, correction.IsAdjustmentOriginal())

	// An income entry referencing an adjustment is not a correction.
	income := Transaction{Type: Income, Meta: TxnMeta{ReversedAdjID: "abc"}}
	assert.False(t, income.IsCorrection())
}

func TestSignedAmount(t *testing.T) {
	assert.Equal(t, int64(100), Transaction{Type: Income, Amount: 100}.SignedAmount())
	assert.Equal(t, int64(-100), Transaction{Type: Expense, Amount: 100}.SignedAmount())
	assert.Equal(t, int64(-30), Transaction{Type: Adjustment, Amount: -30}.SignedAmount())
}

func TestTxnMetaIsZero(t *testing.T) {
	assert.True(t, TxnMeta{}.IsZero())
	assert.False(t, TxnMeta{IsOpening: true}.IsZero())
	assert.False(t, TxnMeta{Source: "denomCheck"}.IsZero())
}
