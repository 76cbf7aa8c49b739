package models

import "time"

// Festival is the owning scope for venues and booth numbering. The full
// festival lifecycle lives in the festival service; this service only
// needs the row as a foreign-key anchor.
type Festival struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
