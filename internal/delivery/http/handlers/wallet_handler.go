package handlers

import (
	"net/http"

	"github.com/cryptex-app/exchange-service/internal/delivery/http/dto"
	"github.com/cryptex-app/exchange-service/internal/delivery/http/middleware"
	walletdto "github.com/cryptex-app/exchange-service/internal/usecase/dto/wallet"
	"github.com/cryptex-app/exchange-service/internal/usecase/wallet"
	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	Usecase wallet.WalletUsecase
}

func NewWalletHandler(usecase wallet.WalletUsecase) *WalletHandler {
	return &WalletHandler{Usecase: usecase}
}

// GetWallets handles GET /api/user/wallets
func (h *WalletHandler) GetWallets(c *gin.Context) {
	wallets, err := h.Usecase.GetUserWallets(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := make([]dto.WalletResponse, len(wallets))
	for i, w := range wallets {
		resp[i] = dto.ToWalletResponse(w)
	}

	c.JSON(http.StatusOK, resp)
}

// Deposit handles POST /api/user/deposit
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid deposit parameters"})
		return
	}

	txn, err := h.Usecase.Deposit(c.Request.Context(), &walletdto.DepositInput{
		UserID:   middleware.UserID(c),
		Currency: req.Currency,
		Amount:   req.Amount,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// Withdraw handles POST /api/user/withdraw
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid withdrawal parameters"})
		return
	}

	txn, err := h.Usecase.Withdraw(c.Request.Context(), &walletdto.WithdrawInput{
		UserID:   middleware.UserID(c),
		Currency: req.Currency,
		Amount:   req.Amount,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
