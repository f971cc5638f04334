package walletdto

import "github.com/shopspring/decimal"

type DepositInput struct {
	UserID   string
	Currency string
	Amount   decimal.Decimal
}

type WithdrawInput struct {
	UserID   string
	Currency string
	Amount   decimal.Decimal
}
