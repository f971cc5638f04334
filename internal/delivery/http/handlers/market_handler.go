package handlers

import (
	"net/http"
	"strconv"

	"github.com/cryptex-app/exchange-service/internal/delivery/http/dto"
	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/cryptex-app/exchange-service/internal/usecase/market"
	"github.com/gin-gonic/gin"
)

type MarketHandler struct {
	Usecase market.MarketUsecase
}

func NewMarketHandler(usecase market.MarketUsecase) *MarketHandler {
	return &MarketHandler{Usecase: usecase}
}

// GetMarketData handles GET /api/market/data
func (h *MarketHandler) GetMarketData(c *gin.Context) {
	tickers, err := h.Usecase.GetMarketData(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTickerResponses(tickers))
}

// GetTicker handles GET /api/market/data/:symbol
func (h *MarketHandler) GetTicker(c *gin.Context) {
	ticker, err := h.Usecase.GetTicker(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMarketTickerResponse(ticker))
}

// GetTrending handles GET /api/market/trending
func (h *MarketHandler) GetTrending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	tickers, err := h.Usecase.GetTrending(c.Request.Context(), limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTickerResponses(tickers))
}

func toTickerResponses(tickers []*domain.MarketTicker) []dto.MarketTickerResponse {
	resp := make([]dto.MarketTickerResponse, len(tickers))
	for i, ticker := range tickers {
		resp[i] = dto.ToMarketTickerResponse(ticker)
	}
	return resp
}
