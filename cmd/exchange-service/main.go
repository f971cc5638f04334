package main

import (
	"context"
	"fmt"
	"log"

	"github.com/cryptex-app/exchange-service/internal/app/background"
	"github.com/cryptex-app/exchange-service/internal/app/setup"
	httpdelivery "github.com/cryptex-app/exchange-service/internal/delivery/http"
	"github.com/cryptex-app/exchange-service/internal/delivery/http/handlers"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/migrate"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}

	if path := deps.Config.ExchangeDB.MigrationsPath; path != "" {
		if err := migrate.RunMigrations(deps.DB, path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	usecases := setup.InitializeUsecases(deps)

	tasks := background.NewBackgroundTasks(
		usecases.Exchange,
		usecases.Market,
		deps.Config.Exchange.RateRefreshInterval,
		deps.Config.Exchange.StuckSweepInterval,
		deps.Config.Exchange.StuckTxTimeout,
	)
	tasks.StartAll(context.Background())

	router := httpdelivery.NewRouter(deps.Config.Auth.JWTSecret, &httpdelivery.Handlers{
		Exchange: handlers.NewExchangeHandler(usecases.Exchange),
		Wallet:   handlers.NewWalletHandler(usecases.Wallet),
		Market:   handlers.NewMarketHandler(usecases.Market),
	})

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to run http server: %v", err)
	}
}
