package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretmission/mission-backend/models"
	"github.com/secretmission/mission-backend/routes"
	"github.com/secretmission/mission-backend/services"
	"github.com/secretmission/mission-backend/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	services.InitGameService(store.NewMemoryStore())
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoomLifecycleAPI(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/rooms",
		`{"name":"Friday night","maxPlayers":2,"gameTimer":600,"settings":{"missionPack":"classic","difficulty":"easy"}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var room models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Len(t, room.Code, 6)
	assert.Equal(t, models.StatusLobby, room.Status)

	// join two players, then the room is full
	w = doJSON(t, r, http.MethodPost, "/api/players", `{"code":"`+room.Code+`","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var alice models.Player
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alice))
	assert.True(t, alice.IsHost)

	w = doJSON(t, r, http.MethodPost, "/api/players", `{"code":"`+room.Code+`","name":"Bob"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/players", `{"code":"`+room.Code+`","name":"Carol"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// fetch room with players by code
	w = doJSON(t, r, http.MethodGet, "/api/rooms/"+room.Code, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched struct {
		Code    string           `json:"code"`
		Players []*models.Player `json:"players"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, room.Code, fetched.Code)
	assert.Len(t, fetched.Players, 2)

	// starting before everyone submitted fails
	w = doJSON(t, r, http.MethodPost, "/api/games/"+room.ID+"/start", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/games/"+room.ID+"/state", "")
	require.Equal(t, http.StatusOK, w.Code)
	var state models.GameState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, 2, state.TotalPlayers)
	assert.Equal(t, 2, state.PlayersAlive)
}

func TestUnknownRoomAPI(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/rooms/NOSUCH", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/players", `{"code":"NOSUCH","name":"Alice"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/rooms", `{"maxPlayers":4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
