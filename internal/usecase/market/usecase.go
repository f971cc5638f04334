package market

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cryptex-app/exchange-service/internal/domain"
)

const defaultTrendingLimit = 10

type MarketUsecase interface {
	GetMarketData(ctx context.Context) ([]*domain.MarketTicker, error)
	GetTicker(ctx context.Context, symbol string) (*domain.MarketTicker, error)
	GetTrending(ctx context.Context, limit int) ([]*domain.MarketTicker, error)
	RefreshRates(ctx context.Context) error
}

type DefaultMarketUsecase struct {
	MarketRepo domain.MarketRepository
	RateRepo   domain.RateRepository
	Provider   domain.PriceProvider
}

func NewDefaultMarketUsecase(marketRepo domain.MarketRepository, rateRepo domain.RateRepository, provider domain.PriceProvider) *DefaultMarketUsecase {
	return &DefaultMarketUsecase{
		MarketRepo: marketRepo,
		RateRepo:   rateRepo,
		Provider:   provider,
	}
}

func (uc *DefaultMarketUsecase) GetMarketData(ctx context.Context) ([]*domain.MarketTicker, error) {
	return uc.MarketRepo.GetTickers(ctx)
}

func (uc *DefaultMarketUsecase) GetTicker(ctx context.Context, symbol string) (*domain.MarketTicker, error) {
	normalized := domain.NormalizeSymbol(symbol)
	if normalized == "" {
		return nil, domain.ErrInvalidRequest
	}

	return uc.MarketRepo.GetTicker(ctx, normalized)
}

func (uc *DefaultMarketUsecase) GetTrending(ctx context.Context, limit int) ([]*domain.MarketTicker, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	return uc.MarketRepo.GetTrending(ctx, limit)
}

// RefreshRates pulls fresh quotes from the provider, stores the tickers and
// rebuilds the pairwise rate-edge table from the quoted prices.
func (uc *DefaultMarketUsecase) RefreshRates(ctx context.Context) error {
	quotes, err := uc.Provider.FetchQuotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch quotes from %s: %w", uc.Provider.Name(), err)
	}

	if err := uc.MarketRepo.UpsertTickers(ctx, quotes); err != nil {
		return err
	}

	now := time.Now()
	rates := make([]*domain.ExchangeRate, 0, len(quotes)*(len(quotes)-1))
	for _, from := range quotes {
		for _, to := range quotes {
			if from.Symbol == to.Symbol || !to.Price.IsPositive() {
				continue
			}
			rates = append(rates, &domain.ExchangeRate{
				FromCurrency: from.Symbol,
				ToCurrency:   to.Symbol,
				Rate:         from.Price.DivRound(to.Price, 10),
				UpdatedAt:    now,
			})
		}
	}

	if err := uc.RateRepo.UpsertRates(ctx, rates); err != nil {
		return err
	}

	slog.Info("rates refreshed", "provider", uc.Provider.Name(), "tickers", len(quotes), "edges", len(rates))
	return nil
}
