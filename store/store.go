package store

import (
	"github.com/secretmission/mission-backend/models"
)

// Store is the keyed record store behind the game engine. Implementations
// hold no business logic. A missing record is reported as models.ErrNotFound,
// distinct from storage failures.
type Store interface {
	// Rooms
	CreateRoom(room *models.Room) error
	GetRoom(id string) (*models.Room, error)
	GetRoomByCode(code string) (*models.Room, error)
	UpdateRoomStatus(id string, status models.RoomStatus) error

	// Players
	CreatePlayer(player *models.Player) error
	GetPlayer(id string) (*models.Player, error)
	ListPlayersByRoom(roomID string) ([]*models.Player, error)
	UpdatePlayerStrikes(id string, strikes int) error
	UpdatePlayerAlive(id string, alive bool) error
	UpdatePlayerMission(id string, mission string, completed bool) error

	// Missions
	CreateMission(mission *models.Mission) error
	GetMission(id string) (*models.Mission, error)
	ListMissionsByRoom(roomID string) ([]*models.Mission, error)
	ListUnassignedMissionsByRoom(roomID string) ([]*models.Mission, error)
	UpdateMissionContent(id, content string) error
	AssignMission(missionID, playerID string) error

	// Accusations
	CreateAccusation(accusation *models.Accusation) error
	ListAccusationsByRoom(roomID string) ([]*models.Accusation, error)
	UpdateAccusationResult(id string, isCorrect bool) error
}
