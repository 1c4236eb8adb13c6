package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/secretmission/mission-backend/models"
)

// GormStore persists records in Postgres. Selected when DATABASE_URL is set.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}

// -------------------- Rooms --------------------

func (s *GormStore) CreateRoom(room *models.Room) error {
	return s.db.Create(room).Error
}

func (s *GormStore) GetRoom(id string) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (s *GormStore) GetRoomByCode(code string) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, "code = ?", code).Error; err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (s *GormStore) UpdateRoomStatus(id string, status models.RoomStatus) error {
	return s.db.Model(&models.Room{}).Where("id = ?", id).
		Update("status", status).Error
}

// -------------------- Players --------------------

func (s *GormStore) CreatePlayer(player *models.Player) error {
	return s.db.Create(player).Error
}

func (s *GormStore) GetPlayer(id string) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &player, nil
}

func (s *GormStore) ListPlayersByRoom(roomID string) ([]*models.Player, error) {
	var players []*models.Player
	if err := s.db.Where("room_id = ?", roomID).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (s *GormStore) UpdatePlayerStrikes(id string, strikes int) error {
	return s.db.Model(&models.Player{}).Where("id = ?", id).
		Update("strikes", strikes).Error
}

func (s *GormStore) UpdatePlayerAlive(id string, alive bool) error {
	return s.db.Model(&models.Player{}).Where("id = ?", id).
		Update("is_alive", alive).Error
}

func (s *GormStore) UpdatePlayerMission(id string, mission string, completed bool) error {
	return s.db.Model(&models.Player{}).Where("id = ?", id).
		Updates(map[string]any{"mission": mission, "mission_completed": completed}).Error
}

// -------------------- Missions --------------------

func (s *GormStore) CreateMission(mission *models.Mission) error {
	return s.db.Create(mission).Error
}

func (s *GormStore) GetMission(id string) (*models.Mission, error) {
	var mission models.Mission
	if err := s.db.First(&mission, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &mission, nil
}

func (s *GormStore) ListMissionsByRoom(roomID string) ([]*models.Mission, error) {
	var missions []*models.Mission
	if err := s.db.Where("room_id = ?", roomID).Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

func (s *GormStore) ListUnassignedMissionsByRoom(roomID string) ([]*models.Mission, error) {
	var missions []*models.Mission
	err := s.db.Where("room_id = ? AND is_assigned = ?", roomID, false).
		Find(&missions).Error
	if err != nil {
		return nil, err
	}
	return missions, nil
}

func (s *GormStore) UpdateMissionContent(id, content string) error {
	return s.db.Model(&models.Mission{}).Where("id = ?", id).
		Update("content", content).Error
}

func (s *GormStore) AssignMission(missionID, playerID string) error {
	return s.db.Model(&models.Mission{}).Where("id = ?", missionID).
		Updates(map[string]any{"assigned_to_id": playerID, "is_assigned": true}).Error
}

// -------------------- Accusations --------------------

func (s *GormStore) CreateAccusation(accusation *models.Accusation) error {
	return s.db.Create(accusation).Error
}

func (s *GormStore) ListAccusationsByRoom(roomID string) ([]*models.Accusation, error) {
	var accusations []*models.Accusation
	if err := s.db.Where("room_id = ?", roomID).Find(&accusations).Error; err != nil {
		return nil, err
	}
	return accusations, nil
}

func (s *GormStore) UpdateAccusationResult(id string, isCorrect bool) error {
	return s.db.Model(&models.Accusation{}).Where("id = ?", id).
		Update("is_correct", isCorrect).Error
}

var _ Store = (*GormStore)(nil)
