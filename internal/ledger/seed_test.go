package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoData(t *testing.T) {
	bank := newTestBank(t)

	numbers, err := SeedDemoData(bank)
	require.NoError(t, err)
	require.Len(t, numbers, 4)
	assert.Equal(t, 4, bank.AccountCount())

	// Every seeded account must have a renderable statement.
	for _, number := range numbers {
		statement, err := bank.GenerateMonthlyStatement(number)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(statement, "Statement for "+number))
		assert.Contains(t, statement, "Ending Balance: $")
	}

	// The script includes known rejections; at least one FAILED record with
	// each scripted reason must exist somewhere in the ledger.
	var all strings.Builder
	for _, number := range numbers {
		statement, err := bank.GenerateMonthlyStatement(number)
		require.NoError(t, err)
		all.WriteString(statement)
	}

	assert.Contains(t, all.String(), "Reason: Minimum balance violation")
	assert.Contains(t, all.String(), "Reason: Insufficient funds")
	assert.Contains(t, all.String(), "Reason: Maximum withdrawals exceeded")
}

func TestSeedDemoData_CountersResetByInterestRun(t *testing.T) {
	bank := newTestBank(t)

	numbers, err := SeedDemoData(bank)
	require.NoError(t, err)

	for _, number := range numbers {
		account, err := bank.AccountSnapshot(number)
		require.NoError(t, err)
		assert.Zero(t, account.MonthlyTransactionCount)
		assert.Zero(t, account.MonthlyWithdrawalCount)
	}
}
