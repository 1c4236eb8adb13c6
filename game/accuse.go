package game

import (
	"strings"

	"github.com/secretmission/mission-backend/models"
)

// StrikeReason marks eliminations caused by accumulated wrong guesses, as
// opposed to being caught, which reveals the mission instead.
const StrikeReason = "too_many_strikes"

// AccusationOutcome describes what a resolved accusation did to the room.
type AccusationOutcome struct {
	IsCorrect      bool
	EliminatedID   string // empty when nobody was eliminated
	CorrectMission string // revealed only when the accused was caught
	Reason         string // StrikeReason when the accuser struck out
	AccuserStrikes int    // accuser's strike count after resolution
}

// ResolveAccusation checks a guess against the accused's assigned mission.
// A guess is correct when it appears anywhere in the mission text, case
// insensitively. Loose on purpose: exact-phrase matching makes the game
// nearly unwinnable.
func ResolveAccusation(accuser, accused *models.Player, guess string) AccusationOutcome {
	outcome := AccusationOutcome{AccuserStrikes: accuser.Strikes}

	if accused.Mission != nil &&
		strings.Contains(strings.ToLower(*accused.Mission), strings.ToLower(guess)) {
		outcome.IsCorrect = true
		outcome.EliminatedID = accused.ID
		outcome.CorrectMission = *accused.Mission
		return outcome
	}

	outcome.AccuserStrikes = accuser.Strikes + 1
	if outcome.AccuserStrikes >= MaxStrikes {
		outcome.AccuserStrikes = MaxStrikes
		outcome.EliminatedID = accuser.ID
		outcome.Reason = StrikeReason
	}
	return outcome
}
