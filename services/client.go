package services

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/secretmission/mission-backend/utils/logger"
)

// Conn is the write side of a client connection. *websocket.Conn satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one subscribed connection. Outgoing events go through a buffered
// send channel drained by writePump, so broadcasts never block on the socket.
type Client struct {
	hub      *Hub
	conn     Conn
	roomID   string
	playerID string
	send     chan []byte
	once     sync.Once
}

func newClient(hub *Hub, conn Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 32),
	}
}

// Close is safe to call from both the read and write paths.
func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debugf("[WS] client write error: %v", err)
			c.hub.Unsubscribe(c)
			return
		}
	}
}

// trySend drops the message when the client's buffer is full or the client
// was closed between snapshot and send.
func (c *Client) trySend(data []byte) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf("[WS] dropping message to closed client")
		}
	}()
	select {
	case c.send <- data:
	default:
		logger.Debugf("[WS] dropping message to slow client")
	}
}
