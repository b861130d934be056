package ledger

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"bank-ledger/internal/metrics"
	"bank-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Structural errors, surfaced to the caller. These are usage errors and are
// never recorded in any account's transaction history.
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrNonZeroBalance     = errors.New("account balance must be zero to close")
	ErrInvalidAccountType = errors.New("invalid account type")
)

// Bank owns the collection of accounts and orchestrates every ledger
// operation: lookups, rule validation, balance mutation, fee application and
// audit recording.
//
// Business-rule rejections (invalid amount, insufficient funds, limit
// violations) are not errors: they are recorded as FAILED transactions and
// the call returns normally with the balance untouched.
//
// All operations are serialized by a single mutex so the bank can be shared
// across request handlers.
type Bank struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	logger   *slog.Logger
	recorder metrics.Recorder
}

// New creates an empty bank.
func New(logger *slog.Logger, recorder metrics.Recorder) *Bank {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Bank{
		accounts: make(map[string]*models.Account),
		logger:   logger,
		recorder: recorder,
	}
}

// OpenAccount creates a new account and returns its account number. The
// customer name is accepted for interface completeness but not stored on the
// account. The initial deposit is taken as-is: opening below the savings
// minimum balance is allowed.
func (b *Bank) OpenAccount(customerName, accountType string, initialDeposit decimal.Decimal) (string, error) {
	if !models.IsValidAccountType(accountType) {
		return "", ErrInvalidAccountType
	}

	accountNumber := uuid.New().String()

	b.mu.Lock()
	b.accounts[accountNumber] = models.NewAccount(accountNumber, accountType, initialDeposit)
	open := len(b.accounts)
	b.mu.Unlock()

	b.recorder.SetOpenAccounts(float64(open))
	b.logger.Info("account opened",
		"account_number", accountNumber,
		"account_type", accountType,
		"customer", customerName,
		"initial_deposit", initialDeposit.String())

	return accountNumber, nil
}

// CloseAccount removes an account from the ledger, discarding its history.
// Only accounts with an exactly zero balance may be closed.
func (b *Bank) CloseAccount(accountNumber string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, ok := b.accounts[accountNumber]
	if !ok {
		return ErrAccountNotFound
	}

	if !account.Balance.IsZero() {
		return ErrNonZeroBalance
	}

	delete(b.accounts, accountNumber)
	b.recorder.SetOpenAccounts(float64(len(b.accounts)))
	b.logger.Info("account closed", "account_number", accountNumber)

	return nil
}

// Deposit credits funds to an account. A non-positive amount is recorded as a
// FAILED transaction and leaves the balance unchanged.
func (b *Bank) Deposit(accountNumber string, amount decimal.Decimal) (*models.Transaction, error) {
	started := time.Now()
	defer func() { b.recorder.RecordDuration("deposit", time.Since(started)) }()

	b.mu.Lock()
	defer b.mu.Unlock()

	account, ok := b.accounts[accountNumber]
	if !ok {
		b.recorder.RecordOperation("deposit", "error")
		return nil, ErrAccountNotFound
	}

	before := account.Balance

	if amount.LessThanOrEqual(decimal.Zero) {
		return b.recordFailed(account, models.TransactionTypeDeposit, amount, models.ReasonInvalidDepositAmount), nil
	}

	account.Balance = account.Balance.Add(amount)
	b.applyCheckingFee(account)

	b.recorder.ObserveAmount("deposit", amount.InexactFloat64())
	return b.recordSuccess(account, models.TransactionTypeDeposit, amount, before), nil
}

// Withdraw debits funds from an account after validating the account's
// withdrawal rules. Rejections are recorded as FAILED transactions.
func (b *Bank) Withdraw(accountNumber string, amount decimal.Decimal) (*models.Transaction, error) {
	started := time.Now()
	defer func() { b.recorder.RecordDuration("withdraw", time.Since(started)) }()

	b.mu.Lock()
	defer b.mu.Unlock()

	account, ok := b.accounts[accountNumber]
	if !ok {
		b.recorder.RecordOperation("withdraw", "error")
		return nil, ErrAccountNotFound
	}

	before := account.Balance

	allowed, reason := account.CanWithdraw(amount)
	if !allowed {
		return b.recordFailed(account, models.TransactionTypeWithdrawal, amount, reason), nil
	}

	account.Balance = account.Balance.Sub(amount)
	account.MonthlyWithdrawalCount++
	b.applyCheckingFee(account)

	b.recorder.ObserveAmount("withdraw", amount.InexactFloat64())
	return b.recordSuccess(account, models.TransactionTypeWithdrawal, amount, before), nil
}

// Transfer moves funds between two accounts. Only the source account is
// validated and only the source receives a transaction record; the
// destination is credited unconditionally once the source passes validation.
// Neither leg incurs the checking transaction fee.
func (b *Bank) Transfer(fromAccount, toAccount string, amount decimal.Decimal) (*models.Transaction, error) {
	started := time.Now()
	defer func() { b.recorder.RecordDuration("transfer", time.Since(started)) }()

	b.mu.Lock()
	defer b.mu.Unlock()

	source, ok := b.accounts[fromAccount]
	if !ok {
		b.recorder.RecordOperation("transfer", "error")
		return nil, ErrAccountNotFound
	}

	target, ok := b.accounts[toAccount]
	if !ok {
		b.recorder.RecordOperation("transfer", "error")
		return nil, ErrAccountNotFound
	}

	before := source.Balance

	allowed, reason := source.CanWithdraw(amount)
	if !allowed {
		return b.recordFailed(source, models.TransactionTypeTransfer, amount, reason), nil
	}

	source.Balance = source.Balance.Sub(amount)
	target.Balance = target.Balance.Add(amount)

	b.recorder.ObserveAmount("transfer", amount.InexactFloat64())
	return b.recordSuccess(source, models.TransactionTypeTransfer, amount, before), nil
}

// ApplyMonthlyInterest runs the end-of-cycle pass over every account: savings
// accounts earn interest (recorded as a SUCCESS deposit), and every account's
// monthly counters are reset regardless of whether interest was credited.
func (b *Bank) ApplyMonthlyInterest() {
	b.mu.Lock()
	defer b.mu.Unlock()

	credited := 0
	for _, account := range b.accounts {
		interest := account.ApplyInterest()
		if interest.GreaterThan(decimal.Zero) {
			account.Record(models.NewTransaction(
				models.TransactionTypeDeposit,
				interest,
				account.Balance.Sub(interest),
				account.Balance,
				models.TransactionStatusSuccess,
				"",
			))
			credited++
		}
		account.ResetMonthlyCounters()
	}

	b.recorder.RecordOperation("interest_run", "success")
	b.logger.Info("monthly interest applied",
		"accounts", len(b.accounts),
		"accounts_credited", credited)
}

// AccountSnapshot returns a copy of an account, including a copy of its
// transaction history, safe to read outside the bank's lock.
func (b *Bank) AccountSnapshot(accountNumber string) (models.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, ok := b.accounts[accountNumber]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}

	snapshot := *account
	snapshot.Transactions = make([]models.Transaction, len(account.Transactions))
	copy(snapshot.Transactions, account.Transactions)

	return snapshot, nil
}

// AccountCount returns the number of open accounts.
func (b *Bank) AccountCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.accounts)
}

// applyCheckingFee implements the per-cycle fee policy. It runs on the
// success path of deposits and withdrawals only: every such operation counts
// toward the monthly total, and checking accounts pay a flat fee for each
// operation beyond the free allowance. The fee may push the balance negative;
// no re-validation happens after deduction.
func (b *Bank) applyCheckingFee(account *models.Account) {
	account.MonthlyTransactionCount++
	if account.AccountType == models.AccountTypeChecking &&
		account.MonthlyTransactionCount > models.CheckingFreeTransactions {
		account.Balance = account.Balance.Sub(models.CheckingTransactionFee)
	}
}

// recordSuccess appends a SUCCESS transaction reflecting the account's
// post-operation balance (fees included).
func (b *Bank) recordSuccess(account *models.Account, txType string, amount, before decimal.Decimal) *models.Transaction {
	tx := models.NewTransaction(txType, amount, before, account.Balance, models.TransactionStatusSuccess, "")
	account.Record(tx)

	b.recorder.RecordOperation(operationLabel(txType), "success")
	b.logger.Info("transaction recorded",
		"account_number", account.AccountNumber,
		"type", txType,
		"amount", amount.String(),
		"balance", account.Balance.String())

	return &tx
}

// recordFailed appends a FAILED transaction with identical before/after
// balances. The rejection reason travels on the record, not as an error.
func (b *Bank) recordFailed(account *models.Account, txType string, amount decimal.Decimal, reason string) *models.Transaction {
	tx := models.NewTransaction(txType, amount, account.Balance, account.Balance, models.TransactionStatusFailed, reason)
	account.Record(tx)

	b.recorder.RecordOperation(operationLabel(txType), "failed")
	b.logger.Info("transaction rejected",
		"account_number", account.AccountNumber,
		"type", txType,
		"amount", amount.String(),
		"reason", reason)

	return &tx
}

func operationLabel(txType string) string {
	switch txType {
	case models.TransactionTypeDeposit:
		return "deposit"
	case models.TransactionTypeWithdrawal:
		return "withdraw"
	case models.TransactionTypeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}
