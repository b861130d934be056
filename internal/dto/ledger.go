package dto

import (
	"bank-ledger/internal/models"
)

// Request DTOs

// OpenAccountRequest represents the request payload for opening a new account
type OpenAccountRequest struct {
	CustomerName   string `json:"customer_name" validate:"required,min=1,max=100"`
	AccountType    string `json:"account_type" validate:"required,oneof=CHECKING SAVINGS"`
	InitialDeposit string `json:"initial_deposit" validate:"required"`
}

// AmountRequest represents the request payload for deposits and withdrawals
type AmountRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// TransferRequest represents the request payload for transferring funds
// between two accounts
type TransferRequest struct {
	FromAccount string `json:"from_account" validate:"required,uuid4"`
	ToAccount   string `json:"to_account" validate:"required,uuid4"`
	Amount      string `json:"amount" validate:"required"`
}

// Response DTOs

// OpenAccountResponse represents the response after opening an account
type OpenAccountResponse struct {
	AccountNumber string `json:"account_number"`
	Message       string `json:"message"`
}

// TransactionResponse wraps the transaction recorded for an operation. The
// transaction status tells the caller whether the operation was accepted or
// rejected by a business rule.
type TransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Message     string              `json:"message"`
}

// AccountResponse represents an account snapshot in API responses
type AccountResponse struct {
	AccountNumber           string `json:"account_number"`
	AccountType             string `json:"account_type"`
	Balance                 string `json:"balance"`
	MonthlyTransactionCount int    `json:"monthly_transaction_count"`
	MonthlyWithdrawalCount  int    `json:"monthly_withdrawal_count"`
	TransactionCount        int    `json:"transaction_count"`
}

// InterestRunResponse represents the outcome of a monthly interest run
type InterestRunResponse struct {
	AccountsProcessed int    `json:"accounts_processed"`
	Message           string `json:"message"`
}
