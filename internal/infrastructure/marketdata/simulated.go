package marketdata

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

type seedQuote struct {
	price     float64
	change24h float64
	volume24h float64
	marketCap float64
}

// Baseline quotes for the supported symbols. Real deployments would swap this
// provider for a CoinGecko/Binance client behind the same interface.
var seedQuotes = map[string]seedQuote{
	"BTC":  {price: 65430, change24h: 2.5, volume24h: 28500000000, marketCap: 1280000000000},
	"ETH":  {price: 3200, change24h: 1.8, volume24h: 15200000000, marketCap: 385000000000},
	"USDT": {price: 1, change24h: 0.1, volume24h: 45000000000, marketCap: 95000000000},
	"BNB":  {price: 520, change24h: -0.8, volume24h: 1800000000, marketCap: 78000000000},
	"XRP":  {price: 0.62, change24h: 3.2, volume24h: 2100000000, marketCap: 34000000000},
	"ADA":  {price: 0.45, change24h: 1.5, volume24h: 850000000, marketCap: 16000000000},
	"SOL":  {price: 95, change24h: 4.2, volume24h: 1200000000, marketCap: 42000000000},
	"DOT":  {price: 8.5, change24h: -1.2, volume24h: 450000000, marketCap: 11000000000},
}

// SimulatedProvider generates quotes by jittering the baseline prices, the
// same way the demo market feed behaved.
type SimulatedProvider struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (p *SimulatedProvider) Name() string {
	return "simulated"
}

func (p *SimulatedProvider) FetchQuotes(_ context.Context) ([]*domain.MarketTicker, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	tickers := make([]*domain.MarketTicker, 0, len(seedQuotes))
	for _, symbol := range domain.SupportedCurrencies {
		seed := seedQuotes[symbol]
		priceVariation := (p.rnd.Float64() - 0.5) * 0.02  // ±1%
		changeVariation := (p.rnd.Float64() - 0.5) * 0.5  // ±0.25

		tickers = append(tickers, &domain.MarketTicker{
			Symbol:    symbol,
			Price:     decimal.NewFromFloat(seed.price * (1 + priceVariation)).Round(10),
			Change24h: seed.change24h + changeVariation,
			Volume24h: seed.volume24h,
			MarketCap: seed.marketCap,
			UpdatedAt: now,
		})
	}

	return tickers, nil
}
