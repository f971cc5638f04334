package market

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

type stubMarketRepo struct {
	upserted  []*domain.MarketTicker
	lastLimit int
}

func (s *stubMarketRepo) UpsertTickers(_ context.Context, tickers []*domain.MarketTicker) error {
	s.upserted = tickers
	return nil
}

func (s *stubMarketRepo) GetTickers(_ context.Context) ([]*domain.MarketTicker, error) {
	return s.upserted, nil
}

func (s *stubMarketRepo) GetTicker(_ context.Context, symbol string) (*domain.MarketTicker, error) {
	for _, ticker := range s.upserted {
		if ticker.Symbol == symbol {
			return ticker, nil
		}
	}
	return nil, domain.ErrUnknownCurrency
}

func (s *stubMarketRepo) GetTrending(_ context.Context, limit int) ([]*domain.MarketTicker, error) {
	s.lastLimit = limit
	return nil, nil
}

type stubRateRepo struct {
	upserted []*domain.ExchangeRate
}

func (s *stubRateRepo) GetRate(_ context.Context, from, to string) (*domain.ExchangeRate, error) {
	for _, rate := range s.upserted {
		if rate.FromCurrency == from && rate.ToCurrency == to {
			return rate, nil
		}
	}
	return nil, domain.ErrRateUnavailable
}

func (s *stubRateRepo) UpsertRates(_ context.Context, rates []*domain.ExchangeRate) error {
	s.upserted = rates
	return nil
}

type stubProvider struct {
	quotes []*domain.MarketTicker
	err    error
}

func (s *stubProvider) FetchQuotes(_ context.Context) ([]*domain.MarketTicker, error) {
	return s.quotes, s.err
}

func (s *stubProvider) Name() string { return "stub" }

func fixedQuotes() []*domain.MarketTicker {
	now := time.Now()
	return []*domain.MarketTicker{
		{Symbol: "BTC", Price: decimal.NewFromInt(64000), Change24h: 2.5, UpdatedAt: now},
		{Symbol: "ETH", Price: decimal.NewFromInt(3200), Change24h: 1.8, UpdatedAt: now},
		{Symbol: "USDT", Price: decimal.NewFromInt(1), Change24h: 0.1, UpdatedAt: now},
	}
}

func TestRefreshRates(t *testing.T) {
	marketRepo := &stubMarketRepo{}
	rateRepo := &stubRateRepo{}
	uc := NewDefaultMarketUsecase(marketRepo, rateRepo, &stubProvider{quotes: fixedQuotes()})

	require.NoError(t, uc.RefreshRates(context.Background()))

	assert.Len(t, marketRepo.upserted, 3)
	// Every ordered pair of distinct symbols gets an edge.
	assert.Len(t, rateRepo.upserted, 6)

	rate, err := rateRepo.GetRate(context.Background(), "BTC", "ETH")
	require.NoError(t, err)
	assert.True(t, rate.Rate.Equal(decimal.NewFromInt(20)), "64000/3200, got %s", rate.Rate)

	inverse, err := rateRepo.GetRate(context.Background(), "ETH", "BTC")
	require.NoError(t, err)
	assert.True(t, inverse.Rate.Equal(decimal.NewFromFloat(0.05)), "3200/64000, got %s", inverse.Rate)
}

func TestRefreshRatesProviderError(t *testing.T) {
	providerErr := errors.New("feed down")
	uc := NewDefaultMarketUsecase(&stubMarketRepo{}, &stubRateRepo{}, &stubProvider{err: providerErr})

	err := uc.RefreshRates(context.Background())
	assert.ErrorIs(t, err, providerErr)
}

func TestRefreshRatesSkipsZeroPrice(t *testing.T) {
	quotes := fixedQuotes()
	quotes[2].Price = decimal.Zero
	rateRepo := &stubRateRepo{}
	uc := NewDefaultMarketUsecase(&stubMarketRepo{}, rateRepo, &stubProvider{quotes: quotes})

	require.NoError(t, uc.RefreshRates(context.Background()))

	// No edge may divide by the zero price.
	for _, rate := range rateRepo.upserted {
		assert.NotEqual(t, "USDT", rate.ToCurrency)
	}
}

func TestGetTickerNormalizes(t *testing.T) {
	marketRepo := &stubMarketRepo{upserted: fixedQuotes()}
	uc := NewDefaultMarketUsecase(marketRepo, &stubRateRepo{}, &stubProvider{})

	ticker, err := uc.GetTicker(context.Background(), " btc ")
	require.NoError(t, err)
	assert.Equal(t, "BTC", ticker.Symbol)

	_, err = uc.GetTicker(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestGetTrendingDefaultLimit(t *testing.T) {
	marketRepo := &stubMarketRepo{}
	uc := NewDefaultMarketUsecase(marketRepo, &stubRateRepo{}, &stubProvider{})

	_, err := uc.GetTrending(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTrendingLimit, marketRepo.lastLimit)

	_, err = uc.GetTrending(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, marketRepo.lastLimit)
}
