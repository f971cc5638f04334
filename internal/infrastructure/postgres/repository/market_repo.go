package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultMarketRepository struct {
	DB *gorm.DB
}

func NewDefaultMarketRepository(db *gorm.DB) *DefaultMarketRepository {
	return &DefaultMarketRepository{DB: db}
}

func (r *DefaultMarketRepository) UpsertTickers(ctx context.Context, tickers []*domain.MarketTicker) error {
	if len(tickers) == 0 {
		return nil
	}

	tickerModels := make([]models.MarketTickerModel, len(tickers))
	for i, ticker := range tickers {
		tickerModels[i] = *mappers.ToGORMTicker(ticker)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "change_24h", "volume_24h", "market_cap", "updated_at"}),
	}).Create(&tickerModels).Error
	if err != nil {
		return fmt.Errorf("failed to upsert tickers: %w", err)
	}

	return nil
}

func (r *DefaultMarketRepository) GetTickers(ctx context.Context) ([]*domain.MarketTicker, error) {
	var tickerModels []models.MarketTickerModel
	err := r.DB.WithContext(ctx).
		Order("market_cap DESC").
		Find(&tickerModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tickers: %w", err)
	}

	return toDomainTickers(tickerModels), nil
}

func (r *DefaultMarketRepository) GetTicker(ctx context.Context, symbol string) (*domain.MarketTicker, error) {
	var tickerModel models.MarketTickerModel
	err := r.DB.WithContext(ctx).First(&tickerModel, "symbol = ?", symbol).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUnknownCurrency
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ticker: %w", err)
	}

	return mappers.ToDomainTicker(&tickerModel), nil
}

func (r *DefaultMarketRepository) GetTrending(ctx context.Context, limit int) ([]*domain.MarketTicker, error) {
	var tickerModels []models.MarketTickerModel
	err := r.DB.WithContext(ctx).
		Where("change_24h > 0").
		Order("change_24h DESC").
		Limit(limit).
		Find(&tickerModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find trending tickers: %w", err)
	}

	return toDomainTickers(tickerModels), nil
}

func toDomainTickers(tickerModels []models.MarketTickerModel) []*domain.MarketTicker {
	tickers := make([]*domain.MarketTicker, len(tickerModels))
	for i, tickerModel := range tickerModels {
		tickers[i] = mappers.ToDomainTicker(&tickerModel)
	}
	return tickers
}
