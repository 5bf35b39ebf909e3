package realtime

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client is a single websocket connection. It stays roomless until the
// browser announces its user id with a join_room event; the client side
// re-announces after every reconnect, so membership never outlives the
// underlying connection.
type Client struct {
	hub     *Hub
	gateway *Gateway
	conn    *websocket.Conn
	send    chan []byte

	userID string
	joined bool
}

func NewClient(hub *Hub, gateway *Gateway, conn *websocket.Conn) *Client {
	return &Client{
		hub:     hub,
		gateway: gateway,
		conn:    conn,
		send:    make(chan []byte, 256),
	}
}

// ReadPump reads inbound frames and dispatches events until the connection
// drops, then tears down room membership.
func (c *Client) ReadPump() {
	defer func() {
		if c.joined {
			c.hub.Unregister(c)
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		c.handleEvent(raw)
	}
}

func (c *Client) handleEvent(raw []byte) {
	var evt Event
	if err := json.Unmarshal(raw, &evt); err != nil {
		// Malformed frames are dropped; the transport stays up
		return
	}

	switch evt.Event {
	case EventJoinRoom:
		var userID string
		if err := json.Unmarshal(evt.Data, &userID); err != nil || userID == "" {
			return
		}
		c.join(userID)

	case EventSendMessage:
		var payload MessagePayload
		if err := json.Unmarshal(evt.Data, &payload); err != nil {
			return
		}
		c.gateway.SendMessage(payload)

	case EventSendNotification:
		var payload NotificationPayload
		if err := json.Unmarshal(evt.Data, &payload); err != nil {
			return
		}
		c.gateway.SendNotification(payload.ReceiverID)
	}
}

// join registers the connection under userID. Repeated announcements on the
// same connection are no-ops, which makes join_room idempotent.
func (c *Client) join(userID string) {
	if c.joined {
		return
	}
	c.userID = userID
	c.joined = true
	c.hub.Register(c)
}

// WritePump flushes queued frames and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
