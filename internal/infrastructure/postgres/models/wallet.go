package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	UserID    string          `gorm:"index:idx_user_currency,unique;not null"`
	Currency  string          `gorm:"index:idx_user_currency,unique;not null"`
	Balance   decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
