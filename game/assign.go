package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/secretmission/mission-backend/models"
)

// Assignment pairs one mission with the player who must carry it out.
type Assignment struct {
	MissionID string
	PlayerID  string
	Content   string
}

// AssignMissions shuffles missions and players independently, pairs them by
// index and repairs self-assignments with adjacent swaps. Each repair scan is
// O(n); the scan repeats until clean, capped at n passes so pathological
// inputs fail instead of looping.
//
// rng may be nil, in which case a time-seeded source is used.
func AssignMissions(rng *rand.Rand, missions []*models.Mission, players []*models.Player) ([]Assignment, error) {
	n := len(players)
	if n < MinPlayers {
		return nil, fmt.Errorf("%w: need at least %d players", models.ErrPreconditionFailed, MinPlayers)
	}
	if len(missions) != n {
		return nil, fmt.Errorf("%w: %d missions for %d players", models.ErrPreconditionFailed, len(missions), n)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	shuffledMissions := append([]*models.Mission(nil), missions...)
	shuffledPlayers := append([]*models.Player(nil), players...)
	rng.Shuffle(n, func(i, j int) {
		shuffledMissions[i], shuffledMissions[j] = shuffledMissions[j], shuffledMissions[i]
	})
	rng.Shuffle(n, func(i, j int) {
		shuffledPlayers[i], shuffledPlayers[j] = shuffledPlayers[j], shuffledPlayers[i]
	})

	for pass := 0; pass < n; pass++ {
		clean := true
		for i := 0; i < n; i++ {
			if shuffledMissions[i].AuthorID == shuffledPlayers[i].ID {
				j := (i + 1) % n
				shuffledMissions[i], shuffledMissions[j] = shuffledMissions[j], shuffledMissions[i]
				clean = false
			}
		}
		if clean {
			break
		}
	}

	assignments := make([]Assignment, 0, n)
	for i := 0; i < n; i++ {
		if shuffledMissions[i].AuthorID == shuffledPlayers[i].ID {
			return nil, fmt.Errorf("%w: no valid assignment found", models.ErrPreconditionFailed)
		}
		assignments = append(assignments, Assignment{
			MissionID: shuffledMissions[i].ID,
			PlayerID:  shuffledPlayers[i].ID,
			Content:   shuffledMissions[i].Content,
		})
	}
	return assignments, nil
}
