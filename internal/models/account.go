package models

import (
	"github.com/shopspring/decimal"
)

const (
	AccountTypeChecking = "CHECKING"
	AccountTypeSavings  = "SAVINGS"
)

// Per-type policy table. These are ledger-wide rules, not per-account state.
const (
	// Checking accounts get this many free transactions per billing cycle;
	// each one beyond it incurs CheckingTransactionFee.
	CheckingFreeTransactions = 10

	// Savings accounts allow at most this many withdrawals per billing cycle.
	SavingsMaxWithdrawals = 5
)

var (
	CheckingTransactionFee = decimal.RequireFromString("2.50")
	SavingsMinimumBalance  = decimal.NewFromInt(100)
	SavingsInterestRate    = decimal.RequireFromString("0.02")
)

// Withdrawal rejection reasons, recorded verbatim on failed transactions.
const (
	ReasonInvalidAmount          = "Invalid amount"
	ReasonMaxWithdrawalsExceeded = "Maximum withdrawals exceeded"
	ReasonMinimumBalance         = "Minimum balance violation"
	ReasonInsufficientFunds      = "Insufficient funds"
	ReasonInvalidDepositAmount   = "Invalid deposit amount"
)

// Account holds the balance and per-cycle counters for a single account.
// Balances are only ever mutated by the ledger orchestrator; the account
// itself answers validation queries and computes interest.
type Account struct {
	AccountNumber string          `json:"account_number"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`

	// Append-only history, owned exclusively by this account.
	Transactions []Transaction `json:"transactions"`

	MonthlyTransactionCount int `json:"monthly_transaction_count"`
	MonthlyWithdrawalCount  int `json:"monthly_withdrawal_count"`
}

// NewAccount creates an account with the given opening balance. Construction
// deliberately bypasses the savings minimum-balance rule: an account may be
// opened below the threshold and only later operations are validated.
func NewAccount(accountNumber, accountType string, initialBalance decimal.Decimal) *Account {
	return &Account{
		AccountNumber: accountNumber,
		AccountType:   accountType,
		Balance:       initialBalance,
	}
}

// CanWithdraw reports whether a withdrawal or transfer of amount is allowed.
// Rules are evaluated in order and the first failing rule wins. Pure query,
// no side effects.
func (a *Account) CanWithdraw(amount decimal.Decimal) (bool, string) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, ReasonInvalidAmount
	}

	if a.AccountType == AccountTypeSavings {
		if a.MonthlyWithdrawalCount >= SavingsMaxWithdrawals {
			return false, ReasonMaxWithdrawalsExceeded
		}
		if a.Balance.Sub(amount).LessThan(SavingsMinimumBalance) {
			return false, ReasonMinimumBalance
		}
	}

	if a.Balance.Sub(amount).LessThan(decimal.Zero) {
		return false, ReasonInsufficientFunds
	}

	return true, ""
}

// ApplyInterest credits one cycle of interest on savings accounts and returns
// the credited amount. Checking accounts earn nothing.
func (a *Account) ApplyInterest() decimal.Decimal {
	if a.AccountType != AccountTypeSavings {
		return decimal.Zero
	}

	interest := a.Balance.Mul(SavingsInterestRate)
	a.Balance = a.Balance.Add(interest)
	return interest
}

// ResetMonthlyCounters clears the per-cycle counters. Called once per billing
// cycle, after interest has been applied.
func (a *Account) ResetMonthlyCounters() {
	a.MonthlyTransactionCount = 0
	a.MonthlyWithdrawalCount = 0
}

// Record appends a transaction to the account history.
func (a *Account) Record(tx Transaction) {
	a.Transactions = append(a.Transactions, tx)
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings:
		return true
	default:
		return false
	}
}
