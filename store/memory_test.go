package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretmission/mission-backend/models"
)

func TestMemoryStoreRooms(t *testing.T) {
	s := NewMemoryStore()

	room := &models.Room{ID: "r1", Code: "ABC123", Name: "Friday night", Status: models.StatusLobby}
	require.NoError(t, s.CreateRoom(room))

	got, err := s.GetRoom("r1")
	require.NoError(t, err)
	assert.Equal(t, "Friday night", got.Name)

	got, err = s.GetRoomByCode("ABC123")
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)

	_, err = s.GetRoom("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetRoomByCode("ZZZZZZ")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, s.UpdateRoomStatus("r1", models.StatusPlaying))
	got, err = s.GetRoom("r1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlaying, got.Status)

	assert.ErrorIs(t, s.UpdateRoomStatus("missing", models.StatusPlaying), models.ErrNotFound)
}

func TestMemoryStorePlayers(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.CreatePlayer(&models.Player{ID: "p1", RoomID: "r1", IsAlive: true}))
	require.NoError(t, s.CreatePlayer(&models.Player{ID: "p2", RoomID: "r1", IsAlive: true}))
	require.NoError(t, s.CreatePlayer(&models.Player{ID: "p3", RoomID: "other", IsAlive: true}))

	players, err := s.ListPlayersByRoom("r1")
	require.NoError(t, err)
	assert.Len(t, players, 2)

	require.NoError(t, s.UpdatePlayerStrikes("p1", 2))
	require.NoError(t, s.UpdatePlayerAlive("p1", false))
	require.NoError(t, s.UpdatePlayerMission("p1", "find the salt", false))

	p, err := s.GetPlayer("p1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Strikes)
	assert.False(t, p.IsAlive)
	require.NotNil(t, p.Mission)
	assert.Equal(t, "find the salt", *p.Mission)

	_, err = s.GetPlayer("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryStoreMissions(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.CreateMission(&models.Mission{ID: "m1", RoomID: "r1", AuthorID: "p1", Content: "one"}))
	require.NoError(t, s.CreateMission(&models.Mission{ID: "m2", RoomID: "r1", AuthorID: "p2", Content: "two"}))

	unassigned, err := s.ListUnassignedMissionsByRoom("r1")
	require.NoError(t, err)
	assert.Len(t, unassigned, 2)

	require.NoError(t, s.UpdateMissionContent("m1", "one, revised"))
	m, err := s.GetMission("m1")
	require.NoError(t, err)
	assert.Equal(t, "one, revised", m.Content)

	require.NoError(t, s.AssignMission("m1", "p2"))
	m, err = s.GetMission("m1")
	require.NoError(t, err)
	assert.True(t, m.IsAssigned)
	require.NotNil(t, m.AssignedToID)
	assert.Equal(t, "p2", *m.AssignedToID)

	unassigned, err = s.ListUnassignedMissionsByRoom("r1")
	require.NoError(t, err)
	assert.Len(t, unassigned, 1)

	all, err := s.ListMissionsByRoom("r1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemoryStoreAccusations(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.CreateAccusation(&models.Accusation{ID: "a1", RoomID: "r1", AccuserID: "p1", AccusedID: "p2", Guess: "banana"}))

	accusations, err := s.ListAccusationsByRoom("r1")
	require.NoError(t, err)
	require.Len(t, accusations, 1)
	assert.Nil(t, accusations[0].IsCorrect)

	require.NoError(t, s.UpdateAccusationResult("a1", true))
	accusations, err = s.ListAccusationsByRoom("r1")
	require.NoError(t, err)
	require.NotNil(t, accusations[0].IsCorrect)
	assert.True(t, *accusations[0].IsCorrect)

	assert.ErrorIs(t, s.UpdateAccusationResult("missing", false), models.ErrNotFound)
}
