package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cryptex-app/exchange-service/internal/domain"
	exchangedto "github.com/cryptex-app/exchange-service/internal/usecase/dto/exchange"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 100
)

func (uc *DefaultExchangeUsecase) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	from := domain.NormalizeSymbol(fromCurrency)
	to := domain.NormalizeSymbol(toCurrency)
	if !domain.IsSupportedCurrency(from) || !domain.IsSupportedCurrency(to) {
		return decimal.Zero, fmt.Errorf("%s/%s: %w", from, to, domain.ErrUnknownCurrency)
	}

	return uc.Resolver.Resolve(ctx, from, to)
}

func (uc *DefaultExchangeUsecase) GetHistory(ctx context.Context, input *exchangedto.HistoryInput) (*exchangedto.HistoryOutput, error) {
	if input.UserID == "" {
		return nil, domain.ErrInvalidRequest
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	txns, total, err := uc.TxnRepo.ListByUserID(ctx, input.UserID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &exchangedto.HistoryOutput{Transactions: txns, Total: total}, nil
}

// FailStuckTransactions is the reconciliation sweep for processing records
// whose executor never reached a terminal status.
func (uc *DefaultExchangeUsecase) FailStuckTransactions(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	count, err := uc.TxnRepo.FailStuckProcessing(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		if uc.Metrics != nil {
			uc.Metrics.RecordStuckTransactionsFailed(count)
		}
		slog.Warn("failed stuck transactions", "count", count, "older_than", olderThan.String())
	}

	return count, nil
}
