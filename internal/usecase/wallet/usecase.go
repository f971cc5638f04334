package wallet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cryptex-app/exchange-service/internal/domain"
	walletdto "github.com/cryptex-app/exchange-service/internal/usecase/dto/wallet"
	"github.com/shopspring/decimal"
)

type WalletUsecase interface {
	GetBalance(ctx context.Context, userID, currency string) (decimal.Decimal, error)
	GetUserWallets(ctx context.Context, userID string) ([]*domain.Wallet, error)
	Deposit(ctx context.Context, input *walletdto.DepositInput) (*domain.Transaction, error)
	Withdraw(ctx context.Context, input *walletdto.WithdrawInput) (*domain.Transaction, error)
}

type DefaultWalletUsecase struct {
	WalletRepo domain.WalletRepository
	TxnRepo    domain.TransactionRepository
}

func NewDefaultWalletUsecase(walletRepo domain.WalletRepository, txnRepo domain.TransactionRepository) *DefaultWalletUsecase {
	return &DefaultWalletUsecase{
		WalletRepo: walletRepo,
		TxnRepo:    txnRepo,
	}
}

func (uc *DefaultWalletUsecase) GetBalance(ctx context.Context, userID, currency string) (decimal.Decimal, error) {
	symbol := domain.NormalizeSymbol(currency)
	if !domain.IsSupportedCurrency(symbol) {
		return decimal.Zero, fmt.Errorf("%s: %w", symbol, domain.ErrUnknownCurrency)
	}

	return uc.WalletRepo.GetBalance(ctx, userID, symbol)
}

func (uc *DefaultWalletUsecase) GetUserWallets(ctx context.Context, userID string) ([]*domain.Wallet, error) {
	if userID == "" {
		return nil, domain.ErrInvalidRequest
	}

	return uc.WalletRepo.GetWalletsByUserID(ctx, userID)
}

// Deposit credits the wallet and records a deposit transaction around the
// mutation, same terminal-status discipline as the exchange executor.
func (uc *DefaultWalletUsecase) Deposit(ctx context.Context, input *walletdto.DepositInput) (*domain.Transaction, error) {
	symbol, err := uc.validate(input.UserID, input.Currency, input.Amount)
	if err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		UserID:     input.UserID,
		Kind:       domain.KindDeposit,
		ToCurrency: symbol,
		ToAmount:   input.Amount,
	}
	txnID, err := uc.TxnRepo.Create(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit record: %w", err)
	}

	ctx = context.WithoutCancel(ctx)

	if err := uc.WalletRepo.Credit(ctx, input.UserID, symbol, input.Amount); err != nil {
		uc.markFailed(ctx, txnID, err)
		return nil, fmt.Errorf("deposit failed: %w", err)
	}

	if err := uc.TxnRepo.MarkCompleted(ctx, txnID); err != nil {
		// Roll the credit back so the failed record stays truthful.
		if debitErr := uc.WalletRepo.Debit(ctx, input.UserID, symbol, input.Amount); debitErr != nil {
			slog.Error("failed to unwind deposit credit", "transaction_id", txnID, "error", debitErr)
		}
		uc.markFailed(ctx, txnID, err)
		return nil, fmt.Errorf("deposit failed: %w", err)
	}

	return uc.TxnRepo.GetByID(ctx, txnID)
}

// Withdraw debits the wallet and records a withdrawal transaction.
// Insufficient funds are rejected before any record is created.
func (uc *DefaultWalletUsecase) Withdraw(ctx context.Context, input *walletdto.WithdrawInput) (*domain.Transaction, error) {
	symbol, err := uc.validate(input.UserID, input.Currency, input.Amount)
	if err != nil {
		return nil, err
	}

	balance, err := uc.WalletRepo.GetBalance(ctx, input.UserID, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	if balance.LessThan(input.Amount) {
		return nil, domain.ErrInsufficientFunds
	}

	txn := &domain.Transaction{
		UserID:       input.UserID,
		Kind:         domain.KindWithdrawal,
		FromCurrency: symbol,
		FromAmount:   input.Amount,
	}
	txnID, err := uc.TxnRepo.Create(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to create withdrawal record: %w", err)
	}

	ctx = context.WithoutCancel(ctx)

	if err := uc.WalletRepo.Debit(ctx, input.UserID, symbol, input.Amount); err != nil {
		uc.markFailed(ctx, txnID, err)
		return nil, err
	}

	if err := uc.TxnRepo.MarkCompleted(ctx, txnID); err != nil {
		if refundErr := uc.WalletRepo.Credit(ctx, input.UserID, symbol, input.Amount); refundErr != nil {
			slog.Error("failed to refund withdrawal debit", "transaction_id", txnID, "error", refundErr)
		}
		uc.markFailed(ctx, txnID, err)
		return nil, fmt.Errorf("withdrawal failed: %w", err)
	}

	return uc.TxnRepo.GetByID(ctx, txnID)
}

func (uc *DefaultWalletUsecase) validate(userID, currency string, amount decimal.Decimal) (string, error) {
	if userID == "" {
		return "", domain.ErrInvalidRequest
	}
	symbol := domain.NormalizeSymbol(currency)
	if !domain.IsSupportedCurrency(symbol) {
		return "", fmt.Errorf("%s: %w", symbol, domain.ErrUnknownCurrency)
	}
	if !amount.IsPositive() {
		return "", domain.ErrInvalidAmount
	}
	return symbol, nil
}

func (uc *DefaultWalletUsecase) markFailed(ctx context.Context, txnID string, cause error) {
	if err := uc.TxnRepo.MarkFailed(ctx, txnID, cause.Error()); err != nil {
		slog.Error("failed to mark transaction failed", "transaction_id", txnID, "error", err)
	}
}
