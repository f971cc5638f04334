package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a directed edge: Rate converts one unit of FromCurrency
// into ToCurrency. Edges are not guaranteed symmetric.
type ExchangeRate struct {
	FromCurrency string
	ToCurrency   string
	Rate         decimal.Decimal
	UpdatedAt    time.Time
}

type RateRepository interface {
	// GetRate returns ErrRateUnavailable when no edge exists.
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (*ExchangeRate, error)
	UpsertRates(ctx context.Context, rates []*ExchangeRate) error
}

// RateResolver resolves an effective rate for a currency pair using direct,
// inverse or triangulated lookups against the rate store.
type RateResolver interface {
	Resolve(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}
