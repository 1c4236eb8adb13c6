package models

import "time"

type Player struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	RoomID           string    `gorm:"index" json:"room_id"`
	Name             string    `json:"name"`
	IsHost           bool      `json:"is_host"`
	IsAlive          bool      `json:"is_alive"`
	Strikes          int       `json:"strikes"` // 0..3
	Mission          *string   `json:"mission"` // assigned mission text, nil until assignment
	MissionCompleted bool      `json:"mission_completed"`
	JoinedAt         time.Time `json:"joined_at"`
}
