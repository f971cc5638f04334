package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	UserID        string `gorm:"index:idx_user_created,priority:1;not null"`
	Kind          string `gorm:"not null"`
	FromCurrency  string
	ToCurrency    string
	FromAmount    decimal.Decimal `gorm:"type:numeric(30,10)"`
	ToAmount      decimal.Decimal `gorm:"type:numeric(30,10)"`
	Rate          decimal.Decimal `gorm:"type:numeric(30,10)"`
	Fee           decimal.Decimal `gorm:"type:numeric(30,10)"`
	Status        string          `gorm:"index:idx_status;not null"`
	FailureReason string
	CreatedAt     time.Time `gorm:"index:idx_user_created,priority:2"`
	CompletedAt   *time.Time
}
