package handlers

import (
	"net/http"
	"strconv"

	"github.com/cryptex-app/exchange-service/internal/delivery/http/dto"
	"github.com/cryptex-app/exchange-service/internal/delivery/http/middleware"
	exchangedto "github.com/cryptex-app/exchange-service/internal/usecase/dto/exchange"
	"github.com/cryptex-app/exchange-service/internal/usecase/exchange"
	"github.com/gin-gonic/gin"
)

type ExchangeHandler struct {
	Usecase exchange.ExchangeUsecase
}

func NewExchangeHandler(usecase exchange.ExchangeUsecase) *ExchangeHandler {
	return &ExchangeHandler{Usecase: usecase}
}

// GetRate handles GET /api/exchange/rate/:from/:to
func (h *ExchangeHandler) GetRate(c *gin.Context) {
	from := c.Param("from")
	to := c.Param("to")

	rate, err := h.Usecase.GetRate(c.Request.Context(), from, to)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{From: from, To: to, Rate: rate.String()})
}

// Execute handles POST /api/exchange/execute
func (h *ExchangeHandler) Execute(c *gin.Context) {
	var req dto.ExecuteExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid exchange parameters"})
		return
	}

	output, err := h.Usecase.ExecuteExchange(c.Request.Context(), &exchangedto.ExecuteExchangeInput{
		UserID:       middleware.UserID(c),
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		FromAmount:   req.FromAmount,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeResponse{
		TransactionID: output.TransactionID,
		FromCurrency:  output.FromCurrency,
		ToCurrency:    output.ToCurrency,
		FromAmount:    output.FromAmount.String(),
		ToAmount:      output.ToAmount.String(),
		Rate:          output.Rate.String(),
		Fee:           output.Fee.String(),
	})
}

// History handles GET /api/exchange/history
func (h *ExchangeHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	output, err := h.Usecase.GetHistory(c.Request.Context(), &exchangedto.HistoryInput{
		UserID: middleware.UserID(c),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, len(output.Transactions)),
		Total:        output.Total,
	}
	for i, txn := range output.Transactions {
		resp.Transactions[i] = dto.ToTransactionResponse(txn)
	}

	c.JSON(http.StatusOK, resp)
}
