package http

import (
	"github.com/cryptex-app/exchange-service/internal/delivery/http/handlers"
	"github.com/cryptex-app/exchange-service/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Exchange *handlers.ExchangeHandler
	Wallet   *handlers.WalletHandler
	Market   *handlers.MarketHandler
}

func NewRouter(jwtSecret string, h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// Market data and quoting are public, same as the web app.
	api.GET("/exchange/rate/:from/:to", h.Exchange.GetRate)
	api.GET("/market/data", h.Market.GetMarketData)
	api.GET("/market/data/:symbol", h.Market.GetTicker)
	api.GET("/market/trending", h.Market.GetTrending)

	authorized := api.Group("", middleware.JWTAuth(jwtSecret))
	authorized.POST("/exchange/execute", h.Exchange.Execute)
	authorized.GET("/exchange/history", h.Exchange.History)
	authorized.GET("/user/wallets", h.Wallet.GetWallets)
	authorized.POST("/user/deposit", h.Wallet.Deposit)
	authorized.POST("/user/withdraw", h.Wallet.Withdraw)

	return router
}
