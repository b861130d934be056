package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"bank-ledger/internal/dto"
	"bank-ledger/internal/errors"
	"bank-ledger/internal/ledger"
	"bank-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// LedgerHandler exposes the bank's ledger operations over HTTP.
//
// Business-rule rejections come back as 200 responses carrying a FAILED
// transaction: the ledger records them, it does not raise them. Structural
// errors (unknown account, closing a non-zero balance) map to 4xx codes.
type LedgerHandler struct {
	bank   *ledger.Bank
	logger *slog.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(bank *ledger.Bank, logger *slog.Logger) *LedgerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerHandler{bank: bank, logger: logger}
}

// Register wires the ledger routes onto an echo group.
func (h *LedgerHandler) Register(g *echo.Group) {
	g.POST("/accounts", h.OpenAccount)
	g.GET("/accounts/:number", h.GetAccount)
	g.DELETE("/accounts/:number", h.CloseAccount)
	g.POST("/accounts/:number/deposits", h.Deposit)
	g.POST("/accounts/:number/withdrawals", h.Withdraw)
	g.GET("/accounts/:number/statement", h.GetStatement)
	g.POST("/transfers", h.Transfer)
	g.POST("/operations/interest-run", h.RunMonthlyInterest)
}

// OpenAccount opens a new account and returns its account number
func (h *LedgerHandler) OpenAccount(c echo.Context) error {
	var req dto.OpenAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	initialDeposit, err := decimal.NewFromString(req.InitialDeposit)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid initial deposit amount"))
	}

	accountNumber, err := h.bank.OpenAccount(req.CustomerName, req.AccountType, initialDeposit)
	if err != nil {
		if stderrors.Is(err, ledger.ErrInvalidAccountType) {
			return SendError(c, errors.AccountInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.OpenAccountResponse{
		AccountNumber: accountNumber,
		Message:       "Account opened successfully",
	})
}

// GetAccount returns a snapshot of a single account
func (h *LedgerHandler) GetAccount(c echo.Context) error {
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return SendError(c, errors.AccountInvalidNumber)
	}

	account, err := h.bank.AccountSnapshot(accountNumber)
	if err != nil {
		if stderrors.Is(err, ledger.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountResponse{
		AccountNumber:           account.AccountNumber,
		AccountType:             account.AccountType,
		Balance:                 account.Balance.String(),
		MonthlyTransactionCount: account.MonthlyTransactionCount,
		MonthlyWithdrawalCount:  account.MonthlyWithdrawalCount,
		TransactionCount:        len(account.Transactions),
	})
}

// CloseAccount removes an account whose balance is exactly zero
func (h *LedgerHandler) CloseAccount(c echo.Context) error {
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return SendError(c, errors.AccountInvalidNumber)
	}

	if err := h.bank.CloseAccount(accountNumber); err != nil {
		if stderrors.Is(err, ledger.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		if stderrors.Is(err, ledger.ErrNonZeroBalance) {
			return SendError(c, errors.AccountClosureNotAllowed)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Deposit credits funds to an account
func (h *LedgerHandler) Deposit(c echo.Context) error {
	return h.performAmountOperation(c, h.bank.Deposit)
}

// Withdraw debits funds from an account
func (h *LedgerHandler) Withdraw(c echo.Context) error {
	return h.performAmountOperation(c, h.bank.Withdraw)
}

// performAmountOperation handles the shared shape of deposits and withdrawals
func (h *LedgerHandler) performAmountOperation(c echo.Context, op func(string, decimal.Decimal) (*models.Transaction, error)) error {
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return SendError(c, errors.AccountInvalidNumber)
	}

	var req dto.AmountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails("Invalid amount format"))
	}

	tx, err := op(accountNumber, amount)
	if err != nil {
		if stderrors.Is(err, ledger.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{
		Transaction: tx,
		Message:     transactionMessage(tx),
	})
}

// Transfer moves funds between two accounts
func (h *LedgerHandler) Transfer(c echo.Context) error {
	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails("Invalid amount format"))
	}

	tx, err := h.bank.Transfer(req.FromAccount, req.ToAccount, amount)
	if err != nil {
		if stderrors.Is(err, ledger.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{
		Transaction: tx,
		Message:     transactionMessage(tx),
	})
}

// RunMonthlyInterest applies one billing cycle: interest on savings accounts
// and a counter reset for every account
func (h *LedgerHandler) RunMonthlyInterest(c echo.Context) error {
	processed := h.bank.AccountCount()
	h.bank.ApplyMonthlyInterest()

	return c.JSON(http.StatusOK, dto.InterestRunResponse{
		AccountsProcessed: processed,
		Message:           "Monthly interest applied",
	})
}

// GetStatement renders the plain-text monthly statement for an account
func (h *LedgerHandler) GetStatement(c echo.Context) error {
	accountNumber, ok := accountNumberParam(c)
	if !ok {
		return SendError(c, errors.AccountInvalidNumber)
	}

	statement, err := h.bank.GenerateMonthlyStatement(accountNumber)
	if err != nil {
		if stderrors.Is(err, ledger.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.String(http.StatusOK, statement)
}

// accountNumberParam extracts and validates the account number path
// parameter. Account numbers are UUID-v4 strings.
func accountNumberParam(c echo.Context) (string, bool) {
	number := c.Param("number")
	if _, err := uuid.Parse(number); err != nil {
		return "", false
	}
	return number, true
}

func transactionMessage(tx *models.Transaction) string {
	if tx.IsSuccess() {
		return "Transaction completed"
	}
	return "Transaction rejected: " + tx.Reason
}
