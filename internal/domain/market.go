package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MarketTicker is display-oriented market data. Price feeds the rate table;
// the float fields are never used for ledger arithmetic.
type MarketTicker struct {
	Symbol    string
	Price     decimal.Decimal
	Change24h float64
	Volume24h float64
	MarketCap float64
	UpdatedAt time.Time
}

type MarketRepository interface {
	UpsertTickers(ctx context.Context, tickers []*MarketTicker) error
	GetTickers(ctx context.Context) ([]*MarketTicker, error)
	GetTicker(ctx context.Context, symbol string) (*MarketTicker, error)
	GetTrending(ctx context.Context, limit int) ([]*MarketTicker, error)
}

// PriceProvider supplies current quotes for the supported symbols.
type PriceProvider interface {
	FetchQuotes(ctx context.Context) ([]*MarketTicker, error)
	Name() string
}
