package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/secretmission/mission-backend/models"
)

func playerWithMission(id, mission string) *models.Player {
	return &models.Player{ID: id, IsAlive: true, Mission: &mission}
}

func TestResolveAccusationSubstringMatch(t *testing.T) {
	accused := playerWithMission("accused", "Get someone to say the word banana")

	t.Run("exact text", func(t *testing.T) {
		outcome := ResolveAccusation(&models.Player{ID: "accuser"}, accused,
			"Get someone to say the word banana")
		assert.True(t, outcome.IsCorrect)
		assert.Equal(t, "accused", outcome.EliminatedID)
		assert.Equal(t, "Get someone to say the word banana", outcome.CorrectMission)
		assert.Empty(t, outcome.Reason)
	})

	t.Run("partial phrase", func(t *testing.T) {
		outcome := ResolveAccusation(&models.Player{ID: "accuser"}, accused, "the word banana")
		assert.True(t, outcome.IsCorrect)
	})

	t.Run("case insensitive", func(t *testing.T) {
		outcome := ResolveAccusation(&models.Player{ID: "accuser"}, accused, "BANANA")
		assert.True(t, outcome.IsCorrect)
	})

	t.Run("wrong guess", func(t *testing.T) {
		outcome := ResolveAccusation(&models.Player{ID: "accuser"}, accused, "apple")
		assert.False(t, outcome.IsCorrect)
		assert.Empty(t, outcome.EliminatedID)
		assert.Empty(t, outcome.CorrectMission)
		assert.Equal(t, 1, outcome.AccuserStrikes)
	})
}

func TestResolveAccusationUnassignedMissionIsNeverCorrect(t *testing.T) {
	outcome := ResolveAccusation(&models.Player{ID: "accuser"}, &models.Player{ID: "accused"}, "anything")
	assert.False(t, outcome.IsCorrect)
}

func TestResolveAccusationThirdStrikeEliminates(t *testing.T) {
	accused := playerWithMission("accused", "swap seats with the host")

	outcome := ResolveAccusation(&models.Player{ID: "accuser", Strikes: 1}, accused, "wrong")
	assert.Equal(t, 2, outcome.AccuserStrikes)
	assert.Empty(t, outcome.EliminatedID)

	outcome = ResolveAccusation(&models.Player{ID: "accuser", Strikes: 2}, accused, "wrong")
	assert.Equal(t, MaxStrikes, outcome.AccuserStrikes)
	assert.Equal(t, "accuser", outcome.EliminatedID)
	assert.Equal(t, StrikeReason, outcome.Reason)
}

func TestResolveAccusationStrikesNeverExceedMax(t *testing.T) {
	accused := playerWithMission("accused", "swap seats with the host")
	outcome := ResolveAccusation(&models.Player{ID: "accuser", Strikes: MaxStrikes}, accused, "wrong")
	assert.Equal(t, MaxStrikes, outcome.AccuserStrikes)
}
