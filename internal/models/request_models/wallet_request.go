package request_models

import "github.com/shopspring/decimal"

// WalletUpdateRequest replaces amount and currency together; there is no
// partial update.
type WalletUpdateRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required"`
}
