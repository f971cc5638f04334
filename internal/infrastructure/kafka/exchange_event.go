package publisher

type ExchangeEvent struct {
	EventID       string `json:"event_id"`
	TransactionID string `json:"transaction_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	FromCurrency  string `json:"from_currency"`
	ToCurrency    string `json:"to_currency"`
	FromAmount    string `json:"from_amount"`
	ToAmount      string `json:"to_amount"`
	Rate          string `json:"rate"`
}
