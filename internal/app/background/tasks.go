package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/cryptex-app/exchange-service/internal/usecase/exchange"
	"github.com/cryptex-app/exchange-service/internal/usecase/market"
)

// BackgroundTasks owns the periodic work the core deliberately has no timers
// for: the rate-feed refresh and the stuck-transaction reconciliation sweep.
type BackgroundTasks struct {
	ExchangeUsecase exchange.ExchangeUsecase
	MarketUsecase   market.MarketUsecase

	RateRefreshInterval time.Duration
	StuckSweepInterval  time.Duration
	StuckTxTimeout      time.Duration
}

func NewBackgroundTasks(
	exchangeUC exchange.ExchangeUsecase,
	marketUC market.MarketUsecase,
	rateRefreshInterval, stuckSweepInterval, stuckTxTimeout time.Duration) *BackgroundTasks {

	return &BackgroundTasks{
		ExchangeUsecase:     exchangeUC,
		MarketUsecase:       marketUC,
		RateRefreshInterval: rateRefreshInterval,
		StuckSweepInterval:  stuckSweepInterval,
		StuckTxTimeout:      stuckTxTimeout,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startRateRefresh(ctx)
	go bt.startStuckTransactionsSweep(ctx)
}

func (bt *BackgroundTasks) startRateRefresh(ctx context.Context) {
	// Initial refresh so the rate table is usable right after boot.
	if err := bt.MarketUsecase.RefreshRates(ctx); err != nil {
		slog.Error("initial rate refresh failed", "error", err)
	}

	ticker := time.NewTicker(bt.RateRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.MarketUsecase.RefreshRates(ctx); err != nil {
				slog.Error("rate refresh failed", "error", err)
			}
		}
	}
}

func (bt *BackgroundTasks) startStuckTransactionsSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.StuckSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := bt.ExchangeUsecase.FailStuckTransactions(ctx, bt.StuckTxTimeout); err != nil {
				slog.Error("stuck transactions sweep failed", "error", err)
			}
		}
	}
}
