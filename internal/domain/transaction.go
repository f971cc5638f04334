package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
)

func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type TransactionKind string

const (
	KindExchange   TransactionKind = "exchange"
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

type Transaction struct {
	ID            string
	UserID        string
	Kind          TransactionKind
	FromCurrency  string
	ToCurrency    string
	FromAmount    decimal.Decimal
	ToAmount      decimal.Decimal
	Rate          decimal.Decimal
	Fee           decimal.Decimal
	Status        TransactionStatus
	FailureReason string
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// TransactionRepository is the append-only exchange transaction log.
// Records are created in processing status and transition exactly once to
// completed or failed.
type TransactionRepository interface {
	// Create persists the record with status processing and returns its id,
	// generating one when the caller left it empty.
	Create(ctx context.Context, txn *Transaction) (string, error)
	GetByID(ctx context.Context, id string) (*Transaction, error)
	MarkCompleted(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, reason string) error
	// ListByUserID returns records most recent first, ties broken by id so
	// pagination stays stable.
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*Transaction, int64, error)
	// FailStuckProcessing fails processing records created before the cutoff
	// and returns how many were swept.
	FailStuckProcessing(ctx context.Context, cutoff time.Time) (int64, error)
}
