package exchangedto

import "github.com/shopspring/decimal"

type ExecuteExchangeInput struct {
	UserID       string
	FromCurrency string
	ToCurrency   string
	FromAmount   decimal.Decimal
}

type HistoryInput struct {
	UserID string
	Limit  int
	Offset int
}
