package request_models

type TipCreateRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=200"`
	Description string   `json:"description"`
	Address     string   `json:"address" binding:"required,max=500"`
	Latitude    float64  `json:"latitude" binding:"required"`
	Longitude   float64  `json:"longitude" binding:"required"`
	Rating      *float64 `json:"rating"`
	DistanceKm  *float64 `json:"distance_km"`
	TipType     string   `json:"tip_type"`
	TipIcon     string   `json:"tip_icon"`
	Types       []string `json:"types"`
}
