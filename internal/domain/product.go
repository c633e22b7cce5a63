package domain

type Product struct {
	ID          int64   `json:"id" db:"id"`
	ExternalID  string  `json:"external_id" db:"external_id"`
	Name        string  `json:"name" db:"name"`
	Price       float64 `json:"price" db:"price"`
	Description string  `json:"description" db:"description"`
	Image       *string `json:"image" db:"image"`
	Category    string  `json:"category" db:"category"`
	OwnerID     int64   `json:"owner_id" db:"owner_id"`
	CreatedAt   int64   `json:"created_at" db:"created_at"`
}
