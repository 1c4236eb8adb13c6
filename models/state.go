package models

// GameState is a derived view recomputed from Room, Player and Accusation
// records; it is never persisted.
type GameState struct {
	TimeRemaining int `json:"timeRemaining"`
	PlayersAlive  int `json:"playersAlive"`
	TotalPlayers  int `json:"totalPlayers"`
	Accusations   int `json:"accusations"`
}
