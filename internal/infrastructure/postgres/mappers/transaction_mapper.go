package mappers

import (
	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:            model.ID,
		UserID:        model.UserID,
		Kind:          domain.TransactionKind(model.Kind),
		FromCurrency:  model.FromCurrency,
		ToCurrency:    model.ToCurrency,
		FromAmount:    model.FromAmount,
		ToAmount:      model.ToAmount,
		Rate:          model.Rate,
		Fee:           model.Fee,
		Status:        domain.TransactionStatus(model.Status),
		FailureReason: model.FailureReason,
		CreatedAt:     model.CreatedAt,
		CompletedAt:   model.CompletedAt,
	}
}

func ToGORMTransaction(txn *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:            txn.ID,
		UserID:        txn.UserID,
		Kind:          string(txn.Kind),
		FromCurrency:  txn.FromCurrency,
		ToCurrency:    txn.ToCurrency,
		FromAmount:    txn.FromAmount,
		ToAmount:      txn.ToAmount,
		Rate:          txn.Rate,
		Fee:           txn.Fee,
		Status:        string(txn.Status),
		FailureReason: txn.FailureReason,
		CreatedAt:     txn.CreatedAt,
		CompletedAt:   txn.CompletedAt,
	}
}
