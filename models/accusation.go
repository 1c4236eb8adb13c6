package models

import "time"

type Accusation struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	RoomID    string    `gorm:"index" json:"room_id"`
	AccuserID string    `json:"accuser_id"`
	AccusedID string    `json:"accused_id"`
	Guess     string    `json:"guess"`
	IsCorrect *bool     `json:"is_correct"` // nil until resolved
	CreatedAt time.Time `json:"created_at"`
}
