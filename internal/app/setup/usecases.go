package setup

import (
	"github.com/cryptex-app/exchange-service/internal/usecase/exchange"
	"github.com/cryptex-app/exchange-service/internal/usecase/market"
	"github.com/cryptex-app/exchange-service/internal/usecase/rate"
	"github.com/cryptex-app/exchange-service/internal/usecase/wallet"
	"github.com/shopspring/decimal"
)

type Usecases struct {
	Exchange exchange.ExchangeUsecase
	Wallet   wallet.WalletUsecase
	Market   market.MarketUsecase
}

func InitializeUsecases(deps *Dependencies) *Usecases {
	resolver := rate.NewDefaultRateResolver(deps.Repositories.RateRepo, deps.Config.Exchange.ReferenceCurrency)

	exchangeUsecase := exchange.NewDefaultExchangeUsecase(
		deps.Repositories.WalletRepo,
		deps.Repositories.TxnRepo,
		resolver,
		deps.ExchangePublisher,
		deps.Metrics,
		decimal.NewFromFloat(deps.Config.Exchange.FeeRate),
	)

	walletUsecase := wallet.NewDefaultWalletUsecase(deps.Repositories.WalletRepo, deps.Repositories.TxnRepo)

	marketUsecase := market.NewDefaultMarketUsecase(deps.Repositories.MarketRepo, deps.Repositories.RateRepo, deps.PriceProvider)

	return &Usecases{
		Exchange: exchangeUsecase,
		Wallet:   walletUsecase,
		Market:   marketUsecase,
	}
}
