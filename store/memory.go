package store

import (
	"sync"

	"github.com/secretmission/mission-backend/models"
)

// MemoryStore keeps all records in process memory. It is the default store:
// rooms only live for the lifetime of the server anyway.
type MemoryStore struct {
	mu          sync.RWMutex
	rooms       map[string]*models.Room
	players     map[string]*models.Player
	missions    map[string]*models.Mission
	accusations map[string]*models.Accusation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:       make(map[string]*models.Room),
		players:     make(map[string]*models.Player),
		missions:    make(map[string]*models.Mission),
		accusations: make(map[string]*models.Accusation),
	}
}

// -------------------- Rooms --------------------

func (s *MemoryStore) CreateRoom(room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
	return nil
}

func (s *MemoryStore) GetRoom(id string) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return room, nil
}

func (s *MemoryStore) GetRoomByCode(code string) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, room := range s.rooms {
		if room.Code == code {
			return room, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *MemoryStore) UpdateRoomStatus(id string, status models.RoomStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return models.ErrNotFound
	}
	room.Status = status
	return nil
}

// -------------------- Players --------------------

func (s *MemoryStore) CreatePlayer(player *models.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *MemoryStore) GetPlayer(id string) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return player, nil
}

func (s *MemoryStore) ListPlayersByRoom(roomID string) ([]*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*models.Player, 0)
	for _, p := range s.players {
		if p.RoomID == roomID {
			players = append(players, p)
		}
	}
	return players, nil
}

func (s *MemoryStore) UpdatePlayerStrikes(id string, strikes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[id]
	if !ok {
		return models.ErrNotFound
	}
	player.Strikes = strikes
	return nil
}

func (s *MemoryStore) UpdatePlayerAlive(id string, alive bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[id]
	if !ok {
		return models.ErrNotFound
	}
	player.IsAlive = alive
	return nil
}

func (s *MemoryStore) UpdatePlayerMission(id string, mission string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[id]
	if !ok {
		return models.ErrNotFound
	}
	player.Mission = &mission
	player.MissionCompleted = completed
	return nil
}

// -------------------- Missions --------------------

func (s *MemoryStore) CreateMission(mission *models.Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.missions[mission.ID] = mission
	return nil
}

func (s *MemoryStore) GetMission(id string) (*models.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mission, ok := s.missions[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return mission, nil
}

func (s *MemoryStore) ListMissionsByRoom(roomID string) ([]*models.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	missions := make([]*models.Mission, 0)
	for _, m := range s.missions {
		if m.RoomID == roomID {
			missions = append(missions, m)
		}
	}
	return missions, nil
}

func (s *MemoryStore) ListUnassignedMissionsByRoom(roomID string) ([]*models.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	missions := make([]*models.Mission, 0)
	for _, m := range s.missions {
		if m.RoomID == roomID && !m.IsAssigned {
			missions = append(missions, m)
		}
	}
	return missions, nil
}

func (s *MemoryStore) UpdateMissionContent(id, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	mission, ok := s.missions[id]
	if !ok {
		return models.ErrNotFound
	}
	mission.Content = content
	return nil
}

func (s *MemoryStore) AssignMission(missionID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	mission, ok := s.missions[missionID]
	if !ok {
		return models.ErrNotFound
	}
	mission.AssignedToID = &playerID
	mission.IsAssigned = true
	return nil
}

// -------------------- Accusations --------------------

func (s *MemoryStore) CreateAccusation(accusation *models.Accusation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accusations[accusation.ID] = accusation
	return nil
}

func (s *MemoryStore) ListAccusationsByRoom(roomID string) ([]*models.Accusation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accusations := make([]*models.Accusation, 0)
	for _, a := range s.accusations {
		if a.RoomID == roomID {
			accusations = append(accusations, a)
		}
	}
	return accusations, nil
}

func (s *MemoryStore) UpdateAccusationResult(id string, isCorrect bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	accusation, ok := s.accusations[id]
	if !ok {
		return models.ErrNotFound
	}
	accusation.IsCorrect = &isCorrect
	return nil
}

var _ Store = (*MemoryStore)(nil)
