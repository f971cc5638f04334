package rate

import (
	"context"
	"errors"
	"fmt"

	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Rates are carried at 10 decimal places; converted amounts round to 8.
const ratePrecision = 10

type DefaultRateResolver struct {
	RateRepo          domain.RateRepository
	ReferenceCurrency string
}

func NewDefaultRateResolver(rateRepo domain.RateRepository, referenceCurrency string) *DefaultRateResolver {
	return &DefaultRateResolver{
		RateRepo:          rateRepo,
		ReferenceCurrency: domain.NormalizeSymbol(referenceCurrency),
	}
}

// Resolve tries, in order: identity, the direct edge, the reciprocal of the
// inverse edge, then triangulation through the reference currency.
func (r *DefaultRateResolver) Resolve(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	from := domain.NormalizeSymbol(fromCurrency)
	to := domain.NormalizeSymbol(toCurrency)
	if from == "" || to == "" {
		return decimal.Zero, domain.ErrInvalidRequest
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	direct, err := r.RateRepo.GetRate(ctx, from, to)
	if err == nil {
		return direct.Rate, nil
	}
	if !errors.Is(err, domain.ErrRateUnavailable) {
		return decimal.Zero, err
	}

	inverse, err := r.RateRepo.GetRate(ctx, to, from)
	if err == nil {
		if !inverse.Rate.IsPositive() {
			return decimal.Zero, fmt.Errorf("inverse rate %s/%s is not positive: %w", to, from, domain.ErrRateUnavailable)
		}
		return decimal.NewFromInt(1).DivRound(inverse.Rate, ratePrecision), nil
	}
	if !errors.Is(err, domain.ErrRateUnavailable) {
		return decimal.Zero, err
	}

	return r.triangulate(ctx, from, to)
}

func (r *DefaultRateResolver) triangulate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	fromRef, err := r.RateRepo.GetRate(ctx, from, r.ReferenceCurrency)
	if err != nil {
		return decimal.Zero, err
	}

	toRef, err := r.RateRepo.GetRate(ctx, to, r.ReferenceCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	if !toRef.Rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("reference rate %s/%s is not positive: %w", to, r.ReferenceCurrency, domain.ErrRateUnavailable)
	}

	return fromRef.Rate.DivRound(toRef.Rate, ratePrecision), nil
}
