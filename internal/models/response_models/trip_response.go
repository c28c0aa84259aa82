package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TripResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DateStart   string          `json:"date_start"`
	DateEnd     string          `json:"date_end"`
	Cost        decimal.Decimal `json:"cost"`
	JoinCode    string          `json:"join_code"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"created_by"`
	AdminIDs    []string        `json:"admin_ids"`
}

type ParticipantInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type TripDetailsResponse struct {
	TripResponse

	TransportMode        string   `json:"transport_mode,omitempty"`
	Origin               string   `json:"origin,omitempty"`
	OriginAddress        string   `json:"origin_address,omitempty"`
	OriginLatitude       *float64 `json:"origin_latitude,omitempty"`
	OriginLongitude      *float64 `json:"origin_longitude,omitempty"`
	Destination          string   `json:"destination,omitempty"`
	DestinationAddress   string   `json:"destination_address,omitempty"`
	DestinationLatitude  *float64 `json:"destination_latitude,omitempty"`
	DestinationLongitude *float64 `json:"destination_longitude,omitempty"`

	Participants []ParticipantInfo `json:"participants"`
}
