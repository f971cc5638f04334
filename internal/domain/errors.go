package domain

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid exchange request")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrUnknownCurrency      = errors.New("unknown currency")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrRateUnavailable      = errors.New("exchange rate unavailable")
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateTransaction = errors.New("transaction id already exists")
	ErrInvalidTransition    = errors.New("transaction already in terminal status")
	ErrExchangeFailed       = errors.New("exchange failed")
)
