package domain

import "strings"

// Symbols the platform quotes and holds balances in.
var SupportedCurrencies = []string{
	"BTC", "ETH", "USDT", "BNB", "XRP", "ADA", "SOL", "DOT",
}

var supportedCurrencySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(SupportedCurrencies))
	for _, symbol := range SupportedCurrencies {
		set[symbol] = struct{}{}
	}
	return set
}()

func IsSupportedCurrency(symbol string) bool {
	_, ok := supportedCurrencySet[symbol]
	return ok
}

func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
