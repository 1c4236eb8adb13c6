package models

import "encoding/json"

// Event is one of the fixed set of realtime messages pushed to room
// subscribers. Every kind carries a "type" discriminator on the wire.
type Event interface {
	EventType() string
}

type PlayerJoinedEvent struct {
	Player *Player `json:"player"`
}

func (PlayerJoinedEvent) EventType() string { return "player_joined" }

type MissionSubmittedEvent struct {
	AuthorID string `json:"authorId"`
}

func (MissionSubmittedEvent) EventType() string { return "mission_submitted" }

type GameStartedEvent struct {
	GameState GameState `json:"gameState"`
}

func (GameStartedEvent) EventType() string { return "game_started" }

// RoomStateEvent is sent to a single connection on its first subscribe,
// so reconnecting clients can recover without replay.
type RoomStateEvent struct {
	GameState GameState `json:"gameState"`
	Players   []*Player `json:"players"`
}

func (RoomStateEvent) EventType() string { return "room_state" }

type TimeUpdateEvent struct {
	TimeRemaining int `json:"timeRemaining"`
}

func (TimeUpdateEvent) EventType() string { return "time_update" }

type PlayerEliminatedEvent struct {
	PlayerID       string `json:"playerId"`
	AccuserID      string `json:"accuserId,omitempty"`
	CorrectMission string `json:"correctMission,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

func (PlayerEliminatedEvent) EventType() string { return "player_eliminated" }

type GameEndedEvent struct {
	Reason  string    `json:"reason,omitempty"`
	Winners []*Player `json:"winners"`
}

func (GameEndedEvent) EventType() string { return "game_ended" }

// EncodeEvent marshals an event with its type discriminator injected.
func EncodeEvent(e Event) ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	envelope := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	envelope["type"], _ = json.Marshal(e.EventType())
	return json.Marshal(envelope)
}
