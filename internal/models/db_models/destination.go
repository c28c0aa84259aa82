package db_models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransportModeCar   = "auto"
	TransportModePlane = "avion"
)

// Destination is a named place shared across trips, e.g. "Córdoba, Argentina".
type Destination struct {
	BaseModel
	Name        string          `gorm:"size:150;not null"`
	Country     string          `gorm:"size:100"`
	Description string          `gorm:"type:text"`
	Cost        decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TripDestination links a trip to a destination with the transport leg data.
type TripDestination struct {
	BaseModel
	TripID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trip_destinations_pair"`
	DestinationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trip_destinations_pair"`
	Destination   *Destination

	TransportMode string `gorm:"size:10;not null"`

	OriginAddress   string           `gorm:"type:text"`
	OriginLatitude  *decimal.Decimal `gorm:"type:numeric(9,6)"`
	OriginLongitude *decimal.Decimal `gorm:"type:numeric(9,6)"`

	DestinationAddress   string           `gorm:"type:text"`
	DestinationLatitude  *decimal.Decimal `gorm:"type:numeric(9,6)"`
	DestinationLongitude *decimal.Decimal `gorm:"type:numeric(9,6)"`
}

// ExtractCountry takes the part after the last comma of a destination name,
// e.g. "Mendoza, Argentina" -> "Argentina".
func ExtractCountry(destinationName string) string {
	parts := strings.Split(destinationName, ",")
	if len(parts) > 1 {
		return strings.TrimSpace(parts[len(parts)-1])
	}
	return "Unknown"
}
