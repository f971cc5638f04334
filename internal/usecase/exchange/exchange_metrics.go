package exchange

import (
	"time"

	"github.com/shopspring/decimal"
)

func (uc *DefaultExchangeUsecase) recordCreated(fromCurrency, toCurrency string) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordExchangeCreated(fromCurrency, toCurrency)
}

func (uc *DefaultExchangeUsecase) recordCompleted(fromCurrency, toCurrency string, fromAmount, fee decimal.Decimal, start time.Time) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordExchangeCompleted(
		fromCurrency,
		toCurrency,
		fromAmount.InexactFloat64(),
		fee.InexactFloat64(),
		time.Since(start).Seconds(),
	)
}

func (uc *DefaultExchangeUsecase) recordFailed(fromCurrency, toCurrency, reason string, start time.Time) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordExchangeFailed(fromCurrency, toCurrency, reason, time.Since(start).Seconds())
}
