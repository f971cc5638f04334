package repository

import (
	"testing"

	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	// A fresh connection to :memory: is a fresh database, so every goroutine
	// has to go through the same one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.WalletModel{},
		&models.TransactionModel{},
		&models.ExchangeRateModel{},
		&models.MarketTickerModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}
