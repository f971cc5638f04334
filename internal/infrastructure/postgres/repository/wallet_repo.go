package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultWalletRepository struct {
	DB *gorm.DB
}

func NewDefaultWalletRepository(db *gorm.DB) *DefaultWalletRepository {
	return &DefaultWalletRepository{DB: db}
}

func (r *DefaultWalletRepository) GetBalance(ctx context.Context, userID, currency string) (decimal.Decimal, error) {
	var wallet models.WalletModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND currency = ?", userID, currency).
		First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read balance: %w", err)
	}

	return wallet.Balance, nil
}

// Credit upserts the wallet row: first credit creates it, later credits
// increment the stored balance inside a single statement.
func (r *DefaultWalletRepository) Credit(ctx context.Context, userID, currency string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}

	now := time.Now()
	wallet := models.WalletModel{
		ID:        uuid.New().String(),
		UserID:    userID,
		Currency:  currency,
		Balance:   amount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "currency"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": now,
		}),
	}).Create(&wallet).Error
	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}

	return nil
}

// Debit runs as one conditional UPDATE so the non-negative invariant is
// enforced by the database row itself, not by an application-level lock.
func (r *DefaultWalletRepository) Debit(ctx context.Context, userID, currency string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}

	result := r.DB.WithContext(ctx).Model(&models.WalletModel{}).
		Where("user_id = ? AND currency = ? AND balance >= ?", userID, currency, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to debit wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInsufficientFunds
	}

	return nil
}

func (r *DefaultWalletRepository) GetWalletsByUserID(ctx context.Context, userID string) ([]*domain.Wallet, error) {
	var walletModels []models.WalletModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("currency ASC").
		Find(&walletModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find wallets: %w", err)
	}

	wallets := make([]*domain.Wallet, len(walletModels))
	for i, walletModel := range walletModels {
		wallets[i] = mappers.ToDomainWallet(&walletModel)
	}

	return wallets, nil
}
