package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MarketTickerModel struct {
	Symbol    string          `gorm:"primaryKey"`
	Price     decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	Change24h float64         `gorm:"column:change_24h"`
	Volume24h float64         `gorm:"column:volume_24h"`
	MarketCap float64         `gorm:"index:idx_market_cap"`
	UpdatedAt time.Time
}
