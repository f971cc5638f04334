package exchange

import (
	"context"
	"time"

	"github.com/cryptex-app/exchange-service/internal/domain"
	publisher "github.com/cryptex-app/exchange-service/internal/infrastructure/kafka"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/metrics"
	exchangedto "github.com/cryptex-app/exchange-service/internal/usecase/dto/exchange"
	"github.com/shopspring/decimal"
)

type ExchangeUsecase interface {
	ExecuteExchange(ctx context.Context, input *exchangedto.ExecuteExchangeInput) (*exchangedto.ExchangeOutput, error)
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
	GetHistory(ctx context.Context, input *exchangedto.HistoryInput) (*exchangedto.HistoryOutput, error)
	FailStuckTransactions(ctx context.Context, olderThan time.Duration) (int64, error)
}

type DefaultExchangeUsecase struct {
	WalletRepo domain.WalletRepository
	TxnRepo    domain.TransactionRepository
	Resolver   domain.RateResolver
	Publisher  *publisher.ExchangePublisher
	Metrics    *metrics.ExchangeMetrics
	FeeRate    decimal.Decimal
}

func NewDefaultExchangeUsecase(
	walletRepo domain.WalletRepository,
	txnRepo domain.TransactionRepository,
	resolver domain.RateResolver,
	exchangePublisher *publisher.ExchangePublisher,
	exchangeMetrics *metrics.ExchangeMetrics,
	feeRate decimal.Decimal) *DefaultExchangeUsecase {

	return &DefaultExchangeUsecase{
		WalletRepo: walletRepo,
		TxnRepo:    txnRepo,
		Resolver:   resolver,
		Publisher:  exchangePublisher,
		Metrics:    exchangeMetrics,
		FeeRate:    feeRate,
	}
}
