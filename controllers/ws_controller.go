package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"alumniconnect-api/realtime"
)

// WSController upgrades realtime connections. The connection joins no room
// until the client announces its user id with a join_room event, and the
// client re-announces after every reconnect.
type WSController struct {
	hub            *realtime.Hub
	gateway        *realtime.Gateway
	allowedOrigins []string
	upgrader       websocket.Upgrader
}

func NewWSController(hub *realtime.Hub, gateway *realtime.Gateway, allowedOrigins string) *WSController {
	wc := &WSController{
		hub:            hub,
		gateway:        gateway,
		allowedOrigins: parseOrigins(allowedOrigins),
	}
	wc.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     wc.checkOrigin,
	}
	return wc
}

func parseOrigins(origins string) []string {
	if origins == "" {
		return nil
	}
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (wc *WSController) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // same-origin requests carry no Origin header
	}

	// No configured origins means development mode: allow all
	if len(wc.allowedOrigins) == 0 {
		return true
	}

	for _, allowed := range wc.allowedOrigins {
		if origin == allowed {
			return true
		}
	}

	return false
}

// Connect handles GET /ws — websocket upgrade
func (wc *WSController) Connect(c *gin.Context) {
	conn, err := wc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := realtime.NewClient(wc.hub, wc.gateway, conn)

	go client.WritePump()
	go client.ReadPump()
}
