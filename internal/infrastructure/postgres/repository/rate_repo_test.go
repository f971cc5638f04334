package repository

import (
	"context"
	"testing"
	"time"

	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateUpsertAndGet(t *testing.T) {
	repo := NewDefaultRateRepository(setupTestDB(t))
	ctx := context.Background()

	err := repo.UpsertRates(ctx, []*domain.ExchangeRate{
		{FromCurrency: "BTC", ToCurrency: "USDT", Rate: decimal.NewFromInt(65000), UpdatedAt: time.Now()},
		{FromCurrency: "ETH", ToCurrency: "USDT", Rate: decimal.NewFromInt(3200), UpdatedAt: time.Now()},
	})
	require.NoError(t, err)

	rate, err := repo.GetRate(ctx, "BTC", "USDT")
	require.NoError(t, err)
	assert.True(t, rate.Rate.Equal(decimal.NewFromInt(65000)))
}

func TestRateUpsertOverwritesPair(t *testing.T) {
	repo := NewDefaultRateRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.UpsertRates(ctx, []*domain.ExchangeRate{
		{FromCurrency: "BTC", ToCurrency: "USDT", Rate: decimal.NewFromInt(65000), UpdatedAt: time.Now()},
	}))
	require.NoError(t, repo.UpsertRates(ctx, []*domain.ExchangeRate{
		{FromCurrency: "BTC", ToCurrency: "USDT", Rate: decimal.NewFromInt(66000), UpdatedAt: time.Now()},
	}))

	rate, err := repo.GetRate(ctx, "BTC", "USDT")
	require.NoError(t, err)
	assert.True(t, rate.Rate.Equal(decimal.NewFromInt(66000)), "refresh must overwrite the pair, got %s", rate.Rate)
}

func TestRateGetMissingPair(t *testing.T) {
	repo := NewDefaultRateRepository(setupTestDB(t))

	_, err := repo.GetRate(context.Background(), "BTC", "ETH")
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestRateUpsertEmptyBatch(t *testing.T) {
	repo := NewDefaultRateRepository(setupTestDB(t))

	assert.NoError(t, repo.UpsertRates(context.Background(), nil))
}
