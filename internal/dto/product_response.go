package dto

type ProductResponse struct {
	ID          int64   `json:"id"`
	ExternalID  string  `json:"external_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Category    string  `json:"category"`
	OwnerID     int64   `json:"owner_id"`
}
