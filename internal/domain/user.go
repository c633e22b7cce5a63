package domain

type User struct {
	ID             int64  `json:"id" db:"id"`
	ExternalID     string `json:"external_id" db:"external_id"`
	Username       string `json:"username" db:"username"`
	Email          string `json:"email" db:"email"`
	HashedPassword string `json:"password" db:"hashed_password"`
	CreatedAt      int64  `json:"created_at" db:"created_at"`
}
