package db_models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Purchase struct {
	BaseModel
	TripID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID       *uuid.UUID      `gorm:"type:uuid"` // nil for general purchases
	Description  string          `gorm:"size:255"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency     Currency        `gorm:"size:10;not null"`
	PurchaseDate time.Time       `gorm:"not null"`
	IsGeneral    bool            `gorm:"not null"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid;not null"` // the actor who recorded it
}

func NewPurchase(tripID uuid.UUID, scope Scope, createdBy uuid.UUID,
	description string, price decimal.Decimal, currency Currency, purchaseDate time.Time) *Purchase {

	p := &Purchase{
		TripID:       tripID,
		Description:  description,
		Price:        price,
		Currency:     currency,
		PurchaseDate: purchaseDate,
		CreatedBy:    createdBy,
	}
	if userID, ok := scope.UserID(); ok {
		p.UserID = &userID
	} else {
		p.IsGeneral = true
	}
	return p
}

func (p *Purchase) Scope() Scope {
	if p.IsGeneral {
		return GeneralScope()
	}
	if p.UserID != nil {
		return IndividualScope(*p.UserID)
	}
	return IndividualScope(uuid.Nil)
}

// OwnedBy reports whether an individual purchase belongs to userID.
func (p *Purchase) OwnedBy(userID uuid.UUID) bool {
	return p.UserID != nil && *p.UserID == userID
}

func (p *Purchase) validate() error {
	if p.TripID == uuid.Nil {
		return errors.New("purchase must have a trip")
	}
	if p.IsGeneral && p.UserID != nil {
		return errors.New("general purchase cannot have a user")
	}
	if !p.IsGeneral && p.UserID == nil {
		return errors.New("individual purchase must have a user")
	}
	if p.Price.IsNegative() {
		return errors.New("price cannot be negative")
	}
	if p.PurchaseDate.IsZero() {
		return errors.New("purchase date is required")
	}
	if p.CreatedBy == uuid.Nil {
		return errors.New("purchase must have a creator")
	}
	return nil
}

func (p *Purchase) BeforeSave(tx *gorm.DB) error {
	return p.validate()
}
