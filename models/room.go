package models

import (
	"time"

	"gorm.io/datatypes"
)

type RoomStatus string

const (
	StatusLobby    RoomStatus = "lobby"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

type Room struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	Code       string         `gorm:"uniqueIndex;size:6" json:"code"`
	Name       string         `json:"name"`
	MaxPlayers int            `json:"max_players"`
	GameTimer  int            `json:"game_timer"` // seconds
	Status     RoomStatus     `json:"status"`     // lobby | playing | finished
	Settings   datatypes.JSON `json:"settings"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// GameSettings is the shape stored in Room.Settings.
type GameSettings struct {
	MissionPack string `json:"missionPack"`
	Difficulty  string `json:"difficulty"`
}
