package mappers

import (
	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainTicker(model *models.MarketTickerModel) *domain.MarketTicker {
	return &domain.MarketTicker{
		Symbol:    model.Symbol,
		Price:     model.Price,
		Change24h: model.Change24h,
		Volume24h: model.Volume24h,
		MarketCap: model.MarketCap,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMTicker(ticker *domain.MarketTicker) *models.MarketTickerModel {
	return &models.MarketTickerModel{
		Symbol:    ticker.Symbol,
		Price:     ticker.Price,
		Change24h: ticker.Change24h,
		Volume24h: ticker.Volume24h,
		MarketCap: ticker.MarketCap,
		UpdatedAt: ticker.UpdatedAt,
	}
}
