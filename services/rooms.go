package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/secretmission/mission-backend/game"
	"github.com/secretmission/mission-backend/models"
	"github.com/secretmission/mission-backend/store"
	"github.com/secretmission/mission-backend/utils/logger"
)

// RoomService is the single entry point for room mutations. Every room gets
// its own mutex, so operations on the same room are serialized while
// different rooms run fully in parallel. Events are collected under the lock
// and broadcast after it is released.
type RoomService struct {
	store        store.Store
	hub          *Hub
	tickInterval time.Duration

	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	timers map[string]*SessionTimer
}

func NewRoomService(st store.Store, hub *Hub) *RoomService {
	return &RoomService{
		store:        st,
		hub:          hub,
		tickInterval: time.Second,
		locks:        make(map[string]*sync.Mutex),
		timers:       make(map[string]*SessionTimer),
	}
}

func (s *RoomService) roomLock(roomID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[roomID] = lock
	}
	return lock
}

// CreateRoom persists a new room in lobby status with a unique join code.
func (s *RoomService) CreateRoom(name string, maxPlayers, gameTimer int, settings *models.GameSettings) (*models.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: room name is required", models.ErrValidation)
	}
	if maxPlayers <= 0 {
		maxPlayers = game.DefaultMaxPlayers
	}
	if gameTimer <= 0 {
		gameTimer = game.DefaultGameTimer
	}

	code, err := s.uniqueCode()
	if err != nil {
		return nil, err
	}

	var settingsJSON datatypes.JSON
	if settings != nil {
		raw, err := json.Marshal(settings)
		if err != nil {
			return nil, fmt.Errorf("%w: bad settings", models.ErrValidation)
		}
		settingsJSON = datatypes.JSON(raw)
	}

	room := &models.Room{
		ID:         uuid.NewString(),
		Code:       code,
		Name:       name,
		MaxPlayers: maxPlayers,
		GameTimer:  gameTimer,
		Status:     models.StatusLobby,
		Settings:   settingsJSON,
		CreatedAt:  time.Now(),
	}
	if err := s.store.CreateRoom(room); err != nil {
		return nil, err
	}
	logger.Infof("[Room %s] created, code=%s capacity=%d timer=%ds", room.ID, room.Code, maxPlayers, gameTimer)
	return room, nil
}

func (s *RoomService) uniqueCode() (string, error) {
	for {
		code := game.GenerateRoomCode()
		_, err := s.store.GetRoomByCode(code)
		if errors.Is(err, models.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
		// collision, roll again
	}
}

// JoinRoom adds a player to a lobby room. The first joiner becomes host.
func (s *RoomService) JoinRoom(code, playerName string) (*models.Player, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, fmt.Errorf("%w: player name is required", models.ErrValidation)
	}

	found, err := s.store.GetRoomByCode(code)
	if err != nil {
		return nil, err
	}
	roomID := found.ID

	lock := s.roomLock(roomID)
	lock.Lock()
	var events []models.Event
	defer func() {
		lock.Unlock()
		s.emit(roomID, events)
	}()

	// re-read under the lock: the gorm store hands out copies, so the
	// pre-lock record may predate a status change by a queued operation
	room, err := s.store.GetRoom(roomID)
	if err != nil {
		return nil, err
	}
	if room.Status != models.StatusLobby {
		return nil, fmt.Errorf("%w: game already started", models.ErrInvalidState)
	}
	players, err := s.store.ListPlayersByRoom(room.ID)
	if err != nil {
		return nil, err
	}
	if len(players) >= room.MaxPlayers {
		return nil, fmt.Errorf("%w: %d/%d players", models.ErrRoomFull, len(players), room.MaxPlayers)
	}

	player := &models.Player{
		ID:       uuid.NewString(),
		RoomID:   room.ID,
		Name:     playerName,
		IsHost:   len(players) == 0,
		IsAlive:  true,
		JoinedAt: time.Now(),
	}
	if err := s.store.CreatePlayer(player); err != nil {
		return nil, err
	}

	logger.Infof("[Room %s] %s joined (%d/%d)", room.ID, playerName, len(players)+1, room.MaxPlayers)
	events = append(events, models.PlayerJoinedEvent{Player: player})
	return player, nil
}

// SubmitMission records a player's secret mission while the room is still in
// the lobby. Re-submitting overwrites the author's pending mission instead
// of creating a second one.
func (s *RoomService) SubmitMission(roomID, authorID, content string) (*models.Mission, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: mission text is required", models.ErrValidation)
	}

	lock := s.roomLock(roomID)
	lock.Lock()
	var events []models.Event
	defer func() {
		lock.Unlock()
		s.emit(roomID, events)
	}()

	room, err := s.store.GetRoom(roomID)
	if err != nil {
		return nil, err
	}
	if room.Status != models.StatusLobby {
		return nil, fmt.Errorf("%w: missions can only be submitted in the lobby", models.ErrInvalidState)
	}
	author, err := s.store.GetPlayer(authorID)
	if err != nil {
		return nil, err
	}
	if author.RoomID != room.ID {
		return nil, fmt.Errorf("%w: player is not in this room", models.ErrNotFound)
	}

	pending, err := s.store.ListUnassignedMissionsByRoom(room.ID)
	if err != nil {
		return nil, err
	}
	var mission *models.Mission
	for _, m := range pending {
		if m.AuthorID == authorID {
			mission = m
			break
		}
	}

	if mission != nil {
		if err := s.store.UpdateMissionContent(mission.ID, content); err != nil {
			return nil, err
		}
		mission.Content = content
	} else {
		mission = &models.Mission{
			ID:        uuid.NewString(),
			RoomID:    room.ID,
			AuthorID:  authorID,
			Content:   content,
			CreatedAt: time.Now(),
		}
		if err := s.store.CreateMission(mission); err != nil {
			return nil, err
		}
	}

	// The author's mission field doubles as the submitted marker until
	// assignment overwrites it at game start.
	if err := s.store.UpdatePlayerMission(authorID, content, false); err != nil {
		return nil, err
	}

	events = append(events, models.MissionSubmittedEvent{AuthorID: authorID})
	return mission, nil
}

// StartGame assigns missions, flips the room to playing and starts its
// session timer. Every current player must have submitted exactly one
// mission.
func (s *RoomService) StartGame(roomID string) error {
	lock := s.roomLock(roomID)
	lock.Lock()
	var events []models.Event
	defer func() {
		lock.Unlock()
		s.emit(roomID, events)
	}()

	room, err := s.store.GetRoom(roomID)
	if err != nil {
		return err
	}
	if room.Status != models.StatusLobby {
		return fmt.Errorf("%w: game already started", models.ErrInvalidState)
	}

	players, err := s.store.ListPlayersByRoom(room.ID)
	if err != nil {
		return err
	}
	missions, err := s.store.ListUnassignedMissionsByRoom(room.ID)
	if err != nil {
		return err
	}

	authors := make(map[string]bool, len(missions))
	for _, m := range missions {
		authors[m.AuthorID] = true
	}
	for _, p := range players {
		if !authors[p.ID] {
			return fmt.Errorf("%w: not all players have submitted missions", models.ErrPreconditionFailed)
		}
	}

	assignments, err := game.AssignMissions(nil, missions, players)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		if err := s.store.AssignMission(a.MissionID, a.PlayerID); err != nil {
			return err
		}
		if err := s.store.UpdatePlayerMission(a.PlayerID, a.Content, false); err != nil {
			return err
		}
	}

	if err := s.store.UpdateRoomStatus(room.ID, models.StatusPlaying); err != nil {
		return err
	}

	timer := NewSessionTimer(room.ID, room.GameTimer, s.tickInterval,
		func(remaining int) {
			s.hub.Broadcast(room.ID, models.TimeUpdateEvent{TimeRemaining: remaining})
		},
		func() error {
			return s.expireRoom(room.ID)
		},
	)
	s.mu.Lock()
	s.timers[room.ID] = timer
	s.mu.Unlock()
	go timer.Run()

	state, err := s.computeState(room.ID)
	if err != nil {
		return err
	}
	logger.Infof("[Room %s] game started with %d players", room.ID, len(players))
	events = append(events, models.GameStartedEvent{GameState: state})
	return nil
}

// SubmitAccusation resolves one player's guess at another's mission and
// applies the consequences: elimination of the accused on a hit, a strike
// (and possibly elimination) for the accuser on a miss, then a win-condition
// check.
func (s *RoomService) SubmitAccusation(roomID, accuserID, accusedID, guess string) (bool, models.GameState, error) {
	guess = strings.TrimSpace(guess)
	if guess == "" {
		return false, models.GameState{}, fmt.Errorf("%w: guess is required", models.ErrValidation)
	}

	lock := s.roomLock(roomID)
	lock.Lock()
	var events []models.Event
	defer func() {
		lock.Unlock()
		s.emit(roomID, events)
	}()

	room, err := s.store.GetRoom(roomID)
	if err != nil {
		return false, models.GameState{}, err
	}
	if room.Status != models.StatusPlaying {
		return false, models.GameState{}, fmt.Errorf("%w: game is not in progress", models.ErrInvalidState)
	}

	accuser, err := s.store.GetPlayer(accuserID)
	if err != nil {
		return false, models.GameState{}, err
	}
	accused, err := s.store.GetPlayer(accusedID)
	if err != nil {
		return false, models.GameState{}, err
	}
	if accuser.RoomID != room.ID || accused.RoomID != room.ID {
		return false, models.GameState{}, fmt.Errorf("%w: player is not in this room", models.ErrNotFound)
	}

	accusation := &models.Accusation{
		ID:        uuid.NewString(),
		RoomID:    room.ID,
		AccuserID: accuserID,
		AccusedID: accusedID,
		Guess:     guess,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateAccusation(accusation); err != nil {
		return false, models.GameState{}, err
	}

	outcome := game.ResolveAccusation(accuser, accused, guess)
	if err := s.store.UpdateAccusationResult(accusation.ID, outcome.IsCorrect); err != nil {
		return false, models.GameState{}, err
	}

	if outcome.IsCorrect {
		if err := s.store.UpdatePlayerAlive(accusedID, false); err != nil {
			return false, models.GameState{}, err
		}
		logger.Infof("[Room %s] %s caught %s", room.ID, accuser.Name, accused.Name)
		events = append(events, models.PlayerEliminatedEvent{
			PlayerID:       accusedID,
			AccuserID:      accuserID,
			CorrectMission: outcome.CorrectMission,
		})
	} else {
		if err := s.store.UpdatePlayerStrikes(accuserID, outcome.AccuserStrikes); err != nil {
			return false, models.GameState{}, err
		}
		if outcome.Reason != "" {
			if err := s.store.UpdatePlayerAlive(accuserID, false); err != nil {
				return false, models.GameState{}, err
			}
			logger.Infof("[Room %s] %s struck out", room.ID, accuser.Name)
			events = append(events, models.PlayerEliminatedEvent{
				PlayerID: accuserID,
				Reason:   outcome.Reason,
			})
		}
	}

	state, err := s.computeState(room.ID)
	if err != nil {
		return false, models.GameState{}, err
	}

	if state.PlayersAlive <= 1 {
		winners, err := s.finishRoom(room.ID)
		if err != nil {
			return false, models.GameState{}, err
		}
		state.TimeRemaining = 0
		events = append(events, models.GameEndedEvent{Winners: winners})
	}

	return outcome.IsCorrect, state, nil
}

// GetGameState recomputes the derived view. Callable at any status.
func (s *RoomService) GetGameState(roomID string) (models.GameState, error) {
	if _, err := s.store.GetRoom(roomID); err != nil {
		return models.GameState{}, err
	}
	return s.computeState(roomID)
}

// RoomByCode returns a room with its current players, for the lobby screen
// and reconnect recovery.
func (s *RoomService) RoomByCode(code string) (*models.Room, []*models.Player, error) {
	room, err := s.store.GetRoomByCode(code)
	if err != nil {
		return nil, nil, err
	}
	players, err := s.store.ListPlayersByRoom(room.ID)
	if err != nil {
		return nil, nil, err
	}
	return room, players, nil
}

// RoomSnapshot backs the room_state message sent on subscribe.
func (s *RoomService) RoomSnapshot(roomID string) (models.GameState, []*models.Player, error) {
	state, err := s.GetGameState(roomID)
	if err != nil {
		return models.GameState{}, nil, err
	}
	players, err := s.store.ListPlayersByRoom(roomID)
	if err != nil {
		return models.GameState{}, nil, err
	}
	return state, players, nil
}

// expireRoom is the timer's expiry callback. An error return makes the timer
// retry on its next tick.
func (s *RoomService) expireRoom(roomID string) error {
	lock := s.roomLock(roomID)
	lock.Lock()
	var events []models.Event
	defer func() {
		lock.Unlock()
		s.emit(roomID, events)
	}()

	room, err := s.store.GetRoom(roomID)
	if err != nil {
		return err
	}
	if room.Status == models.StatusFinished {
		// the win-condition path got there first
		return nil
	}

	winners, err := s.finishRoom(roomID)
	if err != nil {
		return err
	}
	logger.Infof("[Room %s] time up", roomID)
	events = append(events, models.GameEndedEvent{Reason: "time_up", Winners: winners})
	return nil
}

// finishRoom transitions to finished and stops the timer. Callers must hold
// the room lock.
func (s *RoomService) finishRoom(roomID string) ([]*models.Player, error) {
	if err := s.store.UpdateRoomStatus(roomID, models.StatusFinished); err != nil {
		return nil, err
	}
	s.stopTimer(roomID)

	players, err := s.store.ListPlayersByRoom(roomID)
	if err != nil {
		return nil, err
	}
	winners := make([]*models.Player, 0)
	for _, p := range players {
		if p.IsAlive {
			winners = append(winners, p)
		}
	}
	return winners, nil
}

func (s *RoomService) stopTimer(roomID string) {
	s.mu.Lock()
	timer := s.timers[roomID]
	delete(s.timers, roomID)
	s.mu.Unlock()
	if timer != nil {
		timer.Stop()
	}
}

func (s *RoomService) computeState(roomID string) (models.GameState, error) {
	room, err := s.store.GetRoom(roomID)
	if err != nil {
		return models.GameState{}, err
	}
	players, err := s.store.ListPlayersByRoom(roomID)
	if err != nil {
		return models.GameState{}, err
	}
	accusations, err := s.store.ListAccusationsByRoom(roomID)
	if err != nil {
		return models.GameState{}, err
	}

	alive := 0
	for _, p := range players {
		if p.IsAlive {
			alive++
		}
	}

	remaining := 0
	switch room.Status {
	case models.StatusLobby:
		remaining = room.GameTimer
	case models.StatusPlaying:
		s.mu.Lock()
		timer := s.timers[roomID]
		s.mu.Unlock()
		if timer != nil {
			remaining = timer.Remaining()
		} else {
			remaining = room.GameTimer
		}
	}

	return models.GameState{
		TimeRemaining: remaining,
		PlayersAlive:  alive,
		TotalPlayers:  len(players),
		Accusations:   len(accusations),
	}, nil
}

func (s *RoomService) emit(roomID string, events []models.Event) {
	for _, ev := range events {
		s.hub.Broadcast(roomID, ev)
	}
}
