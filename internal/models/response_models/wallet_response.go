package response_models

import "github.com/shopspring/decimal"

type WalletResponse struct {
	ID             string          `json:"id"`
	TripID         string          `json:"trip_id"`
	UserID         string          `json:"user_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	CurrencyCode   string          `json:"currency_code"`
	CurrencySymbol string          `json:"currency_symbol"`
	IsGeneral      bool            `json:"is_general"`
	CreatedAt      int64           `json:"created_at"`
	UpdatedAt      int64           `json:"updated_at"`
}
