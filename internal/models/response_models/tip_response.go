package response_models

type TipResponse struct {
	ID          string   `json:"id"`
	TripID      string   `json:"trip_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Rating      *float64 `json:"rating,omitempty"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
	TipType     string   `json:"tip_type"`
	TipIcon     string   `json:"tip_icon"`
	Types       []string `json:"types"`
	CreatedBy   string   `json:"created_by"`
	CreatedAt   int64    `json:"created_at"`
}
