package mappers

import (
	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/cryptex-app/exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainWallet(model *models.WalletModel) *domain.Wallet {
	return &domain.Wallet{
		ID:        model.ID,
		UserID:    model.UserID,
		Currency:  model.Currency,
		Balance:   model.Balance,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMWallet(wallet *domain.Wallet) *models.WalletModel {
	return &models.WalletModel{
		ID:        wallet.ID,
		UserID:    wallet.UserID,
		Currency:  wallet.Currency,
		Balance:   wallet.Balance,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}
}
