package mappers

import (
	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainRate(model *models.ExchangeRateModel) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		FromCurrency: model.FromCurrency,
		ToCurrency:   model.ToCurrency,
		Rate:         model.Rate,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMRate(rate *domain.ExchangeRate) *models.ExchangeRateModel {
	return &models.ExchangeRateModel{
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		UpdatedAt:    rate.UpdatedAt,
	}
}
