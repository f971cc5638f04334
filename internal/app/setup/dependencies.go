package setup

import (
	"fmt"

	"github.com/cryptex-app/exchange-service/internal/config"
	"github.com/cryptex-app/exchange-service/internal/domain"
	publisher "github.com/cryptex-app/exchange-service/internal/infrastructure/kafka"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/marketdata"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/metrics"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config            *config.ExchangeConfig
	DB                *gorm.DB
	ExchangePublisher *publisher.ExchangePublisher
	Metrics           *metrics.ExchangeMetrics
	PriceProvider     domain.PriceProvider
	Repositories      *Repositories
}

type Repositories struct {
	WalletRepo domain.WalletRepository
	TxnRepo    domain.TransactionRepository
	RateRepo   domain.RateRepository
	MarketRepo domain.MarketRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	var exchangePublisher *publisher.ExchangePublisher
	if cfg.Kafka.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
		var err error
		exchangePublisher, err = publisher.NewExchangePublisher(brokers, cfg.Kafka.Topic)
		if err != nil {
			return nil, fmt.Errorf("exchange publisher: %w", err)
		}
	}

	repos := &Repositories{
		WalletRepo: repository.NewDefaultWalletRepository(db),
		TxnRepo:    repository.NewDefaultTransactionRepository(db),
		RateRepo:   repository.NewDefaultRateRepository(db),
		MarketRepo: repository.NewDefaultMarketRepository(db),
	}

	return &Dependencies{
		Config:            cfg,
		DB:                db,
		ExchangePublisher: exchangePublisher,
		Metrics:           metrics.NewExchangeMetrics(),
		PriceProvider:     marketdata.NewSimulatedProvider(),
		Repositories:      repos,
	}, nil
}
