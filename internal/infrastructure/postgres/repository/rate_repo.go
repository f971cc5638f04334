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

type DefaultRateRepository struct {
	DB *gorm.DB
}

func NewDefaultRateRepository(db *gorm.DB) *DefaultRateRepository {
	return &DefaultRateRepository{DB: db}
}

func (r *DefaultRateRepository) GetRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error) {
	var rateModel models.ExchangeRateModel
	err := r.DB.WithContext(ctx).
		Where("from_currency = ? AND to_currency = ?", fromCurrency, toCurrency).
		First(&rateModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRateUnavailable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find rate: %w", err)
	}

	return mappers.ToDomainRate(&rateModel), nil
}

func (r *DefaultRateRepository) UpsertRates(ctx context.Context, rates []*domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	rateModels := make([]models.ExchangeRateModel, len(rates))
	for i, rate := range rates {
		rateModels[i] = *mappers.ToGORMRate(rate)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_currency"}, {Name: "to_currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(&rateModels).Error
	if err != nil {
		return fmt.Errorf("failed to upsert rates: %w", err)
	}

	return nil
}
