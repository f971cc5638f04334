package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExchangeRateModel struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	FromCurrency string          `gorm:"index:idx_rate_pair,unique;not null"`
	ToCurrency   string          `gorm:"index:idx_rate_pair,unique;not null"`
	Rate         decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	UpdatedAt    time.Time
}
