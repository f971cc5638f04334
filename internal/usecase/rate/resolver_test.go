package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRateRepo struct {
	rates map[string]decimal.Decimal
	err   error
}

func (s *stubRateRepo) GetRate(_ context.Context, from, to string) (*domain.ExchangeRate, error) {
	if s.err != nil {
		return nil, s.err
	}
	rate, ok := s.rates[from+"/"+to]
	if !ok {
		return nil, domain.ErrRateUnavailable
	}
	return &domain.ExchangeRate{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         rate,
		UpdatedAt:    time.Now(),
	}, nil
}

func (s *stubRateRepo) UpsertRates(_ context.Context, _ []*domain.ExchangeRate) error {
	return nil
}

func newStubRepo(rates map[string]float64) *stubRateRepo {
	converted := make(map[string]decimal.Decimal, len(rates))
	for pair, rate := range rates {
		converted[pair] = decimal.NewFromFloat(rate)
	}
	return &stubRateRepo{rates: converted}
}

func TestResolveIdentity(t *testing.T) {
	resolver := NewDefaultRateResolver(newStubRepo(nil), "USDT")

	rate, err := resolver.Resolve(context.Background(), "BTC", "BTC")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestResolveDirect(t *testing.T) {
	resolver := NewDefaultRateResolver(newStubRepo(map[string]float64{
		"BTC/ETH": 20.5,
	}), "USDT")

	rate, err := resolver.Resolve(context.Background(), "BTC", "ETH")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(20.5)))
}

func TestResolveInverse(t *testing.T) {
	resolver := NewDefaultRateResolver(newStubRepo(map[string]float64{
		"ETH/BTC": 0.05,
	}), "USDT")

	rate, err := resolver.Resolve(context.Background(), "BTC", "ETH")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(20)), "expected reciprocal of 0.05, got %s", rate)
}

func TestResolveTriangulation(t *testing.T) {
	resolver := NewDefaultRateResolver(newStubRepo(map[string]float64{
		"ADA/USDT": 2,
		"XRP/USDT": 4,
	}), "USDT")

	rate, err := resolver.Resolve(context.Background(), "ADA", "XRP")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.5)), "expected 2/4 = 0.5, got %s", rate)
}

func TestResolveNormalizesSymbols(t *testing.T) {
	resolver := NewDefaultRateResolver(newStubRepo(map[string]float64{
		"BTC/ETH": 20,
	}), "USDT")

	rate, err := resolver.Resolve(context.Background(), " btc ", "eth")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(20)))
}

func TestResolveUnavailable(t *testing.T) {
	resolver := NewDefaultRateResolver(newStubRepo(map[string]float64{
		"BTC/USDT": 65000,
	}), "USDT")

	// No edge for SOL in either direction and no reference edge either.
	_, err := resolver.Resolve(context.Background(), "SOL", "BTC")
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestResolveEmptySymbol(t *testing.T) {
	resolver := NewDefaultRateResolver(newStubRepo(nil), "USDT")

	_, err := resolver.Resolve(context.Background(), "", "BTC")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestResolveStorageErrorPropagates(t *testing.T) {
	storageErr := errors.New("connection reset")
	resolver := NewDefaultRateResolver(&stubRateRepo{err: storageErr}, "USDT")

	_, err := resolver.Resolve(context.Background(), "BTC", "ETH")
	assert.ErrorIs(t, err, storageErr)
}
