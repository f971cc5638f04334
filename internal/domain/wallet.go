package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        string
	UserID    string
	Currency  string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WalletRepository is the per-user, per-currency balance ledger. Debit and
// Credit must be atomic against concurrent mutations of the same
// (user, currency) row: two debits may never overdraw a balance between them.
type WalletRepository interface {
	// GetBalance returns zero for a wallet that does not exist yet.
	GetBalance(ctx context.Context, userID, currency string) (decimal.Decimal, error)
	// Credit creates the wallet on first use, otherwise increments it.
	Credit(ctx context.Context, userID, currency string, amount decimal.Decimal) error
	// Debit decrements the balance, failing with ErrInsufficientFunds when
	// amount exceeds the current balance.
	Debit(ctx context.Context, userID, currency string, amount decimal.Decimal) error
	GetWalletsByUserID(ctx context.Context, userID string) ([]*Wallet, error)
}
