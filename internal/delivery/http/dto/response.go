package dto

import (
	"time"

	"github.com/cryptex-app/exchange-service/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type RateResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Rate string `json:"rate"`
}

type ExchangeResponse struct {
	TransactionID string `json:"transaction_id"`
	FromCurrency  string `json:"from_currency"`
	ToCurrency    string `json:"to_currency"`
	FromAmount    string `json:"from_amount"`
	ToAmount      string `json:"to_amount"`
	Rate          string `json:"rate"`
	Fee           string `json:"fee"`
}

type WalletResponse struct {
	Currency  string    `json:"currency"`
	Balance   string    `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TransactionResponse struct {
	ID            string     `json:"id"`
	Kind          string     `json:"kind"`
	FromCurrency  string     `json:"from_currency,omitempty"`
	ToCurrency    string     `json:"to_currency,omitempty"`
	FromAmount    string     `json:"from_amount,omitempty"`
	ToAmount      string     `json:"to_amount,omitempty"`
	Rate          string     `json:"rate,omitempty"`
	Fee           string     `json:"fee,omitempty"`
	Status        string     `json:"status"`
	FailureReason string     `json:"failure_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

type MarketTickerResponse struct {
	Symbol    string    `json:"symbol"`
	Price     string    `json:"price"`
	Change24h float64   `json:"change_24h"`
	Volume24h float64   `json:"volume_24h"`
	MarketCap float64   `json:"market_cap"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToWalletResponse(wallet *domain.Wallet) WalletResponse {
	return WalletResponse{
		Currency:  wallet.Currency,
		Balance:   wallet.Balance.String(),
		UpdatedAt: wallet.UpdatedAt,
	}
}

func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:            txn.ID,
		Kind:          string(txn.Kind),
		FromCurrency:  txn.FromCurrency,
		ToCurrency:    txn.ToCurrency,
		Status:        string(txn.Status),
		FailureReason: txn.FailureReason,
		CreatedAt:     txn.CreatedAt,
		CompletedAt:   txn.CompletedAt,
	}
	if !txn.FromAmount.IsZero() {
		resp.FromAmount = txn.FromAmount.String()
	}
	if !txn.ToAmount.IsZero() {
		resp.ToAmount = txn.ToAmount.String()
	}
	if !txn.Rate.IsZero() {
		resp.Rate = txn.Rate.String()
	}
	if !txn.Fee.IsZero() {
		resp.Fee = txn.Fee.String()
	}
	return resp
}

func ToMarketTickerResponse(ticker *domain.MarketTicker) MarketTickerResponse {
	return MarketTickerResponse{
		Symbol:    ticker.Symbol,
		Price:     ticker.Price.String(),
		Change24h: ticker.Change24h,
		Volume24h: ticker.Volume24h,
		MarketCap: ticker.MarketCap,
		UpdatedAt: ticker.UpdatedAt,
	}
}
