package realtime

import (
	"context"
	"sync"
)

// Hub is the per-process room registry: user id → set of live connections.
// A user with several tabs open holds several entries; a user with none is
// simply absent, which is a normal condition rather than an error.
type Hub struct {
	clients map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *targetedMessage

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
}

type targetedMessage struct {
	UserID string
	Data   []byte
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *targetedMessage, 256),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Register adds a client under its announced user id.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister drops a client and closes its send channel.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Run drains the hub's channels. Call once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]bool)
			}
			h.clients[client.userID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.userID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.userID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			// Write lock: a slow consumer gets evicted from the set below
			h.mu.Lock()
			if clients, ok := h.clients[msg.UserID]; ok {
				for client := range clients {
					select {
					case client.send <- msg.Data:
					default:
						close(client.send)
						delete(clients, client)
					}
				}
				if len(clients) == 0 {
					delete(h.clients, msg.UserID)
				}
			}
			h.mu.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

// SendToUser queues data for every live connection of userID. When the user
// has no connections the frame is silently dropped.
func (h *Hub) SendToUser(userID string, data []byte) {
	h.broadcast <- &targetedMessage{UserID: userID, Data: data}
}

// Stop shuts down the hub's run loop.
func (h *Hub) Stop() {
	h.cancel()
}
