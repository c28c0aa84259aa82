package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Tip is a point-of-interest note attached to a trip (restaurant, lodging,
// attraction, gas_station). Independent of the ledger; the statistics engine
// reads it for the tip distribution metrics.
type Tip struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	Address     string    `gorm:"size:500;not null"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	Rating      *float64
	DistanceKm  *float64
	TipType     string         `gorm:"size:50"`
	TipIcon     string         `gorm:"size:10"`
	Types       pq.StringArray `gorm:"type:text[]"`
	CreatedBy   string         `gorm:"not null"` // email of the creating user
}
