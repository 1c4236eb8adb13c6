package services

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/secretmission/mission-backend/models"
	"github.com/secretmission/mission-backend/store"
	"github.com/secretmission/mission-backend/utils/logger"
)

var (
	// Rooms is the game-wide lifecycle controller, set by InitGameService.
	Rooms *RoomService

	hub *Hub
)

// InitGameService wires the shared hub and room controller onto the store.
func InitGameService(st store.Store) {
	hub = NewHub()
	Rooms = NewRoomService(st, hub)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict this in production to your domains
		return true
	},
}

type wsMessage struct {
	Type     string `json:"type"`
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

// HandleWebSocket upgrades the connection and serves the subscribe protocol:
// join_room attaches the connection to a room and answers with room_state,
// leave_room detaches it.
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("[WS] upgrade error: %v", err)
		return
	}

	client := newClient(hub, conn)
	go client.writePump()
	go readPump(client, conn)
}

func readPump(client *Client, conn *websocket.Conn) {
	defer hub.Unsubscribe(client)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("[WS] read error: %v", err)
			}
			return
		}

		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Debugf("[WS] invalid message: %v", err)
			continue
		}

		switch msg.Type {
		case "join_room":
			client.playerID = msg.PlayerID
			hub.Subscribe(client, msg.RoomID)
			logger.Infof("[WS] player %s subscribed to room %s", client.playerID, msg.RoomID)

			state, players, err := Rooms.RoomSnapshot(msg.RoomID)
			if err != nil {
				logger.Debugf("[WS] room_state for unknown room %s", msg.RoomID)
				continue
			}
			data, err := models.EncodeEvent(models.RoomStateEvent{GameState: state, Players: players})
			if err != nil {
				logger.Errorf("[WS] failed to encode room_state: %v", err)
				continue
			}
			client.trySend(data)

		case "leave_room":
			logger.Infof("[WS] player %s left their room", client.playerID)
			client.playerID = ""
			hub.Leave(client)

		default:
			logger.Debugf("[WS] unknown message type: %q", msg.Type)
		}
	}
}
