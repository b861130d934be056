package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeDeposit    = "DEPOSIT"
	TransactionTypeWithdrawal = "WITHDRAWAL"
	TransactionTypeTransfer   = "TRANSFER"

	TransactionStatusSuccess = "SUCCESS"
	TransactionStatusFailed  = "FAILED"
)

// Transaction is an immutable audit record of a single ledger operation.
// It captures the account balance both before and after the operation so
// that statements form a verifiable chain.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Status        string          `json:"status"`
	// Reason is set only on FAILED transactions.
	Reason string `json:"reason,omitempty"`
}

// NewTransaction builds a transaction record with a fresh ID and timestamp.
func NewTransaction(txType string, amount, balanceBefore, balanceAfter decimal.Decimal, status, reason string) Transaction {
	return Transaction{
		ID:            uuid.New(),
		Timestamp:     time.Now(),
		Type:          txType,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		Status:        status,
		Reason:        reason,
	}
}

// IsSuccess returns true if the transaction completed successfully.
func (t Transaction) IsSuccess() bool {
	return t.Status == TransactionStatusSuccess
}

// String renders the statement line for this transaction:
//
//	<timestamp> | <TYPE> | Amount: $<amount> | <before> → <after> | <STATUS>
//
// with " | Reason: <reason>" appended on failures.
func (t Transaction) String() string {
	line := fmt.Sprintf("%s | %s | Amount: $%s | %s → %s | %s",
		t.Timestamp.Format("2006-01-02 15:04:05"),
		t.Type,
		t.Amount,
		t.BalanceBefore,
		t.BalanceAfter,
		t.Status,
	)

	if t.Status == TransactionStatusFailed && t.Reason != "" {
		line += " | Reason: " + t.Reason
	}

	return line
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(txType string) bool {
	switch txType {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusSuccess, TransactionStatusFailed:
		return true
	default:
		return false
	}
}
