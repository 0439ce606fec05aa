package publisher

import "time"

// Publisher is the domain entity.
type Publisher struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"` // required, max 255 chars
	Address   *string   `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
