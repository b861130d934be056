package ledger

import (
	"strings"
)

const statementSeparatorWidth = 40

// GenerateMonthlyStatement renders the textual statement for an account:
// a header line, a dash separator, one line per transaction in history order
// (oldest first), and the ending balance formatted to two decimal places.
func (b *Bank) GenerateMonthlyStatement(accountNumber string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, ok := b.accounts[accountNumber]
	if !ok {
		return "", ErrAccountNotFound
	}

	var sb strings.Builder
	sb.WriteString("Statement for " + account.AccountNumber + "\n")
	sb.WriteString(strings.Repeat("-", statementSeparatorWidth) + "\n")

	for _, tx := range account.Transactions {
		sb.WriteString(tx.String() + "\n")
	}

	sb.WriteString("Ending Balance: $" + account.Balance.StringFixed(2))

	return sb.String(), nil
}
