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
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) Create(ctx context.Context, txn *domain.Transaction) (string, error) {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	txn.Status = domain.StatusProcessing
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}

	txnModel := mappers.ToGORMTransaction(txn)
	if err := r.DB.WithContext(ctx).Create(txnModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", domain.ErrDuplicateTransaction
		}
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	return txn.ID, nil
}

func (r *DefaultTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var txnModel models.TransactionModel
	err := r.DB.WithContext(ctx).First(&txnModel, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	return mappers.ToDomainTransaction(&txnModel), nil
}

func (r *DefaultTransactionRepository) MarkCompleted(ctx context.Context, id string) error {
	return r.markTerminal(ctx, id, domain.StatusCompleted, "")
}

func (r *DefaultTransactionRepository) MarkFailed(ctx context.Context, id, reason string) error {
	return r.markTerminal(ctx, id, domain.StatusFailed, reason)
}

// markTerminal is guarded by the current status, so a record transitions to a
// terminal state exactly once. A second attempt affects zero rows.
func (r *DefaultTransactionRepository) markTerminal(ctx context.Context, id string, status domain.TransactionStatus, reason string) error {
	updates := map[string]interface{}{
		"status":       string(status),
		"completed_at": time.Now(),
	}
	if reason != "" {
		updates["failure_reason"] = reason
	}

	result := r.DB.WithContext(ctx).Model(&models.TransactionModel{}).
		Where("id = ? AND status = ?", id, string(domain.StatusProcessing)).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.DB.WithContext(ctx).Model(&models.TransactionModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check transaction: %w", err)
		}
		if count == 0 {
			return domain.ErrTransactionNotFound
		}
		return domain.ErrInvalidTransition
	}

	return nil
}

func (r *DefaultTransactionRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, int64, error) {
	var total int64
	baseQuery := r.DB.WithContext(ctx).Model(&models.TransactionModel{}).Where("user_id = ?", userID)
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var txnModels []models.TransactionModel
	err := baseQuery.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&txnModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find transactions: %w", err)
	}

	txns := make([]*domain.Transaction, len(txnModels))
	for i, txnModel := range txnModels {
		txns[i] = mappers.ToDomainTransaction(&txnModel)
	}

	return txns, total, nil
}

func (r *DefaultTransactionRepository) FailStuckProcessing(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).Model(&models.TransactionModel{}).
		Where("status = ? AND created_at < ?", string(domain.StatusProcessing), cutoff).
		Updates(map[string]interface{}{
			"status":         string(domain.StatusFailed),
			"failure_reason": "processing timeout",
			"completed_at":   time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to sweep stuck transactions: %w", result.Error)
	}

	return result.RowsAffected, nil
}
