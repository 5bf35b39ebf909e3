package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Message is one append-only chat message between two users. Timestamp is
// the client stamp carried on the send_message event and is the ordering
// key; CreatedAt is the server stamp recorded at persistence time.
type Message struct {
	ID         bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SenderID   string        `json:"senderId" bson:"sender_id"`
	ReceiverID string        `json:"receiverId" bson:"receiver_id"`
	Message    string        `json:"message" bson:"message"`
	Timestamp  time.Time     `json:"timestamp" bson:"timestamp"`
	CreatedAt  time.Time     `json:"-" bson:"created_at"`
}
