package ledger

import (
	"fmt"

	"bank-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// SeedDemoData populates the bank with a small set of accounts and a mix of
// successful and rejected operations, then runs one interest cycle. Intended
// for local development so statements and metrics have something to show.
// Returns the opened account numbers.
func SeedDemoData(b *Bank) ([]string, error) {
	type seedAccount struct {
		accountType string
		opening     decimal.Decimal
	}

	seeds := []seedAccount{
		{models.AccountTypeChecking, decimal.NewFromInt(500)},
		{models.AccountTypeSavings, decimal.NewFromInt(1000)},
		{models.AccountTypeChecking, decimal.NewFromInt(300)},
		{models.AccountTypeSavings, decimal.NewFromInt(150)},
	}

	numbers := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		number, err := b.OpenAccount(gofakeit.Name(), seed.accountType, seed.opening)
		if err != nil {
			return nil, fmt.Errorf("failed to seed account: %w", err)
		}
		numbers = append(numbers, number)
	}

	checking, savings, smallChecking, smallSavings := numbers[0], numbers[1], numbers[2], numbers[3]

	// A mix of accepted operations and recorded rejections.
	if _, err := b.Deposit(checking, decimal.NewFromInt(200)); err != nil {
		return nil, err
	}
	if _, err := b.Withdraw(checking, decimal.NewFromInt(100)); err != nil {
		return nil, err
	}
	// Rejected: would drop the savings account below its minimum balance.
	if _, err := b.Withdraw(smallSavings, decimal.NewFromInt(100)); err != nil {
		return nil, err
	}
	if _, err := b.Transfer(savings, checking, decimal.NewFromInt(300)); err != nil {
		return nil, err
	}
	// Rejected: source balance is too small.
	if _, err := b.Transfer(smallChecking, checking, decimal.NewFromInt(500)); err != nil {
		return nil, err
	}
	if _, err := b.Deposit(savings, decimal.NewFromInt(50)); err != nil {
		return nil, err
	}

	// Exhaust the savings withdrawal allowance; the last attempt is rejected.
	for i := 0; i < models.SavingsMaxWithdrawals+1; i++ {
		if _, err := b.Withdraw(savings, decimal.NewFromInt(100)); err != nil {
			return nil, err
		}
	}

	b.ApplyMonthlyInterest()

	return numbers, nil
}
