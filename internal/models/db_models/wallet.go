package db_models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Wallet struct {
	BaseModel
	TripID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID      `gorm:"type:uuid"` // nil for the general wallet
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency  Currency        `gorm:"size:10;not null"`
	IsGeneral bool            `gorm:"not null"`
}

// NewWallet is the only constructor; the scope decides the general flag and
// the user column together so the two can never disagree.
func NewWallet(tripID uuid.UUID, scope Scope, amount decimal.Decimal, currency Currency) *Wallet {
	w := &Wallet{
		TripID:   tripID,
		Amount:   amount,
		Currency: currency,
	}
	if userID, ok := scope.UserID(); ok {
		w.UserID = &userID
	} else {
		w.IsGeneral = true
	}
	return w
}

func (w *Wallet) Scope() Scope {
	if w.IsGeneral {
		return GeneralScope()
	}
	if w.UserID != nil {
		return IndividualScope(*w.UserID)
	}
	return IndividualScope(uuid.Nil)
}

func (w *Wallet) validate() error {
	if w.TripID == uuid.Nil {
		return errors.New("wallet must have a trip")
	}
	if w.IsGeneral && w.UserID != nil {
		return errors.New("general wallet cannot have a user")
	}
	if !w.IsGeneral && w.UserID == nil {
		return errors.New("individual wallet must have a user")
	}
	if w.Amount.IsNegative() {
		return errors.New("amount cannot be negative")
	}
	return nil
}

func (w *Wallet) BeforeSave(tx *gorm.DB) error {
	return w.validate()
}
