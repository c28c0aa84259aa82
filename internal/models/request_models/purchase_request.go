package request_models

import "github.com/shopspring/decimal"

type PurchaseCreateRequest struct {
	Description string          `json:"description" binding:"max=255"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Currency    string          `json:"currency" binding:"required"`
	// "2006-01-02"
	PurchaseDate string `json:"purchase_date" binding:"required"`
}

type PurchaseUpdateRequest struct {
	Description  string          `json:"description" binding:"max=255"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Currency     string          `json:"currency" binding:"required"`
	PurchaseDate string          `json:"purchase_date" binding:"required"`
}
