package postgres

import (
	"log"

	"github.com/cryptex-app/exchange-service/internal/config"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ExchangeConfig) *gorm.DB {
	dsn := cfg.ExchangeDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.WalletModel{}, &models.TransactionModel{}, &models.ExchangeRateModel{}, &models.MarketTickerModel{})

	return db
}
