package models

import "time"

type Mission struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	RoomID       string    `gorm:"index" json:"room_id"`
	AuthorID     string    `json:"author_id"`
	AssignedToID *string   `json:"assigned_to_id"`
	Content      string    `json:"content"`
	IsAssigned   bool      `json:"is_assigned"`
	CreatedAt    time.Time `json:"created_at"`
}
