package exchangedto

import (
	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

type ExchangeOutput struct {
	TransactionID string
	FromCurrency  string
	ToCurrency    string
	FromAmount    decimal.Decimal
	ToAmount      decimal.Decimal
	Rate          decimal.Decimal
	Fee           decimal.Decimal
}

type HistoryOutput struct {
	Transactions []*domain.Transaction
	Total        int64
}
