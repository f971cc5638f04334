package exchange

import (
	"context"
	"log/slog"

	"github.com/cryptex-app/exchange-service/internal/domain"
	publisher "github.com/cryptex-app/exchange-service/internal/infrastructure/kafka"
	"github.com/shopspring/decimal"
)

// publishExchangeEvent is best-effort: a broker outage never fails the
// exchange itself.
func (uc *DefaultExchangeUsecase) publishExchangeEvent(
	ctx context.Context,
	txnID, userID string,
	status domain.TransactionStatus,
	fromCurrency, toCurrency string,
	fromAmount, toAmount, rate decimal.Decimal) {

	if uc.Publisher == nil {
		return
	}

	event := publisher.ExchangeEvent{
		TransactionID: txnID,
		UserID:        userID,
		Status:        string(status),
		FromCurrency:  fromCurrency,
		ToCurrency:    toCurrency,
		FromAmount:    fromAmount.String(),
		ToAmount:      toAmount.String(),
		Rate:          rate.String(),
	}
	if err := uc.Publisher.PublishExchange(ctx, event); err != nil {
		slog.Error("failed to publish exchange event", "transaction_id", txnID, "error", err)
	}
}
