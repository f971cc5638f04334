package exchange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cryptex-app/exchange-service/internal/domain"
	exchangedto "github.com/cryptex-app/exchange-service/internal/usecase/dto/exchange"
	"github.com/shopspring/decimal"
)

// Converted amounts are rounded to 8 decimal places.
const amountPrecision = 8

// ExecuteExchange converts fromAmount of the source currency into the
// destination currency at the resolved rate. The fee is charged in the source
// currency: the debit is exactly fromAmount and only the remainder after the
// fee is converted, so toAmount = fromAmount * rate * (1 - feeRate).
//
// A transaction record is created before any balance moves and always ends in
// a terminal status. A failed record means no net balance change: if the
// destination credit fails after the debit, the debited amount is credited
// back before the record is marked failed.
func (uc *DefaultExchangeUsecase) ExecuteExchange(ctx context.Context, input *exchangedto.ExecuteExchangeInput) (*exchangedto.ExchangeOutput, error) {
	start := time.Now()

	from := domain.NormalizeSymbol(input.FromCurrency)
	to := domain.NormalizeSymbol(input.ToCurrency)

	if input.UserID == "" || from == "" || to == "" {
		return nil, domain.ErrInvalidRequest
	}
	if !domain.IsSupportedCurrency(from) || !domain.IsSupportedCurrency(to) {
		return nil, fmt.Errorf("%s/%s: %w", from, to, domain.ErrUnknownCurrency)
	}
	// Exchanging a currency for itself is not a trade.
	if from == to {
		return nil, fmt.Errorf("same-currency exchange: %w", domain.ErrInvalidRequest)
	}
	if !input.FromAmount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	// Unquotable pairs abort before a record exists, so nothing is persisted.
	rate, err := uc.Resolver.Resolve(ctx, from, to)
	if err != nil {
		return nil, err
	}

	balance, err := uc.WalletRepo.GetBalance(ctx, input.UserID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to read source balance: %w", err)
	}
	if balance.LessThan(input.FromAmount) {
		return nil, domain.ErrInsufficientFunds
	}

	fee := input.FromAmount.Mul(uc.FeeRate).Round(amountPrecision)
	toAmount := input.FromAmount.Sub(fee).Mul(rate).Round(amountPrecision)

	txn := &domain.Transaction{
		UserID:       input.UserID,
		Kind:         domain.KindExchange,
		FromCurrency: from,
		ToCurrency:   to,
		FromAmount:   input.FromAmount,
		ToAmount:     toAmount,
		Rate:         rate,
		Fee:          fee,
	}
	txnID, err := uc.TxnRepo.Create(ctx, txn)
	if err != nil {
		uc.recordFailed(from, to, "create_record", start)
		return nil, fmt.Errorf("failed to create transaction record: %w", domain.ErrExchangeFailed)
	}
	uc.recordCreated(from, to)

	// From here the exchange must reach a terminal status even if the caller
	// goes away.
	ctx = context.WithoutCancel(ctx)

	if err := uc.withRetry(func() error {
		return uc.WalletRepo.Debit(ctx, input.UserID, from, input.FromAmount)
	}); err != nil {
		uc.finishFailed(ctx, txnID, input.UserID, from, to, err, start)
		if errors.Is(err, domain.ErrInsufficientFunds) {
			// A concurrent exchange drained the balance between the check
			// and the debit.
			return nil, domain.ErrInsufficientFunds
		}
		return nil, domain.ErrExchangeFailed
	}

	if err := uc.withRetry(func() error {
		return uc.WalletRepo.Credit(ctx, input.UserID, to, toAmount)
	}); err != nil {
		uc.refund(ctx, txnID, input.UserID, from, input.FromAmount)
		uc.finishFailed(ctx, txnID, input.UserID, from, to, err, start)
		return nil, domain.ErrExchangeFailed
	}

	if err := uc.withRetry(func() error {
		return uc.TxnRepo.MarkCompleted(ctx, txnID)
	}); err != nil {
		// The completion could not be recorded, so unwind both legs to keep
		// the failed-record invariant honest.
		if debitErr := uc.withRetry(func() error {
			return uc.WalletRepo.Debit(ctx, input.UserID, to, toAmount)
		}); debitErr != nil {
			slog.Error("failed to unwind destination credit", "transaction_id", txnID, "error", debitErr)
		}
		uc.refund(ctx, txnID, input.UserID, from, input.FromAmount)
		uc.finishFailed(ctx, txnID, input.UserID, from, to, err, start)
		return nil, domain.ErrExchangeFailed
	}

	uc.recordCompleted(from, to, input.FromAmount, fee, start)
	uc.publishExchangeEvent(ctx, txnID, input.UserID, domain.StatusCompleted, from, to, input.FromAmount, toAmount, rate)

	slog.Info("exchange completed",
		"transaction_id", txnID,
		"user_id", input.UserID,
		"from", from,
		"to", to,
		"from_amount", input.FromAmount.String(),
		"to_amount", toAmount.String(),
		"rate", rate.String(),
	)

	return &exchangedto.ExchangeOutput{
		TransactionID: txnID,
		FromCurrency:  from,
		ToCurrency:    to,
		FromAmount:    input.FromAmount,
		ToAmount:      toAmount,
		Rate:          rate,
		Fee:           fee,
	}, nil
}

// refund credits the debited amount back to the source wallet.
func (uc *DefaultExchangeUsecase) refund(ctx context.Context, txnID, userID, currency string, amount decimal.Decimal) {
	if err := uc.withRetry(func() error {
		return uc.WalletRepo.Credit(ctx, userID, currency, amount)
	}); err != nil {
		slog.Error("exchange refund failed", "transaction_id", txnID, "user_id", userID, "currency", currency, "error", err)
	}
}

func (uc *DefaultExchangeUsecase) finishFailed(ctx context.Context, txnID, userID, from, to string, cause error, start time.Time) {
	if err := uc.withRetry(func() error {
		return uc.TxnRepo.MarkFailed(ctx, txnID, cause.Error())
	}); err != nil {
		slog.Error("failed to mark transaction failed", "transaction_id", txnID, "error", err)
	}
	uc.recordFailed(from, to, failureReason(cause), start)
	uc.publishExchangeEvent(ctx, txnID, userID, domain.StatusFailed, from, to, decimal.Zero, decimal.Zero, decimal.Zero)
}

// withRetry retries transient storage errors once. Domain errors are final.
func (uc *DefaultExchangeUsecase) withRetry(op func() error) error {
	err := op()
	if err == nil || isDomainError(err) {
		return err
	}
	return op()
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrTransactionNotFound) ||
		errors.Is(err, domain.ErrDuplicateTransaction)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrRateUnavailable):
		return "rate_unavailable"
	default:
		return "storage_error"
	}
}
