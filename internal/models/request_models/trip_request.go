package request_models

import "github.com/shopspring/decimal"

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TripCreateRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description"`
	// Dates use the "2006-01-02" layout.
	DateStart string           `json:"date_start" binding:"required"`
	DateEnd   string           `json:"date_end" binding:"required"`
	Cost      *decimal.Decimal `json:"cost"`
	Currency  string           `json:"currency"`

	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	OriginAddress      string  `json:"origin_address"`
	DestinationAddress string  `json:"destination_address"`
	OriginCoords       *Coords `json:"origin_coords"`
	DestinationCoords  *Coords `json:"destination_coords"`
	Vehicle            string  `json:"vehicle"`
}

type TripUpdateRequest struct {
	Name        string           `json:"name" binding:"required,min=2,max=150"`
	Description string           `json:"description"`
	DateStart   string           `json:"date_start" binding:"required"`
	DateEnd     string           `json:"date_end" binding:"required"`
	Cost        *decimal.Decimal `json:"cost"`
}

type TripDatesUpdateRequest struct {
	DateStart string `json:"date_start" binding:"required"`
	DateEnd   string `json:"date_end" binding:"required"`
}

type TripLocationUpdateRequest struct {
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination" binding:"required"`
	OriginAddress      string  `json:"origin_address"`
	DestinationAddress string  `json:"destination_address"`
	OriginCoords       *Coords `json:"origin_coords"`
	DestinationCoords  *Coords `json:"destination_coords"`
	Vehicle            string  `json:"vehicle"`
}

type JoinTripRequest struct {
	Code string `json:"code" binding:"required"`
}
