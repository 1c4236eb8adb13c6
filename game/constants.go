package game

const (
	// MaxStrikes eliminates a player on their third wrong accusation
	MaxStrikes = 3

	// MinPlayers needed for a valid mission assignment
	MinPlayers = 2

	// DefaultMaxPlayers when room creation omits a capacity
	DefaultMaxPlayers = 8

	// DefaultGameTimer in seconds (10 minutes)
	DefaultGameTimer = 600

	// TimeUpdateInterval controls how often time_update is broadcast,
	// in remaining-seconds multiples
	TimeUpdateInterval = 30

	// CodeLength is the length of room join codes
	CodeLength = 6

	// CodeChars are the characters used for join codes
	CodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)
