package models

import "time"

// Photo is an uploaded image attached to news items or appeals. The stored
// path is unique per file; orphaned rows are never removed.
type Photo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Image     string    `gorm:"size:255;not null;uniqueIndex" json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
