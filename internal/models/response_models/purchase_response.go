package response_models

import "github.com/shopspring/decimal"

type PurchaseResponse struct {
	ID             string          `json:"id"`
	TripID         string          `json:"trip_id"`
	UserID         string          `json:"user_id,omitempty"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency"`
	CurrencyCode   string          `json:"currency_code"`
	CurrencySymbol string          `json:"currency_symbol"`
	PurchaseDate   string          `json:"purchase_date"`
	IsGeneral      bool            `json:"is_general"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      int64           `json:"created_at"`
	UpdatedAt      int64           `json:"updated_at"`
}
