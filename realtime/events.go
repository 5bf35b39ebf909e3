package realtime

import (
	"encoding/json"
	"time"
)

// Wire event names. Each websocket text frame carries one envelope:
// {"event": "...", "data": ...}
const (
	EventJoinRoom            = "join_room"
	EventSendMessage         = "send_message"
	EventReceiveMessage      = "receive_message"
	EventSendNotification    = "send_notification"
	EventReceiveNotification = "receive_notification"
)

// Event is an inbound envelope; Data stays raw until the event name picks
// the payload type.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outboundEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// MessagePayload is the send_message/receive_message body. The same shape
// goes back out to the receiver's connections.
type MessagePayload struct {
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// NotificationPayload addresses a payload-free refetch ping.
type NotificationPayload struct {
	ReceiverID string `json:"receiverId"`
}
