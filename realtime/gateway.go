package realtime

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"alumniconnect-api/models"
)

const persistTimeout = 10 * time.Second

// MessageStore is the durability backstop for chat messages.
// Implemented by repositories.MessageRepository.
type MessageStore interface {
	Save(ctx context.Context, message *models.Message) error
	History(ctx context.Context, userAID, userBID string) ([]models.Message, error)
}

// Gateway routes chat messages and notification pings to live connections.
// Persistence and delivery are two independent effects of one send: the
// store write is fire-and-forget and never gates the emit, so chat keeps
// working even when the database write fails.
type Gateway struct {
	hub      *Hub
	messages MessageStore
	logger   *zap.Logger
}

func NewGateway(hub *Hub, messages MessageStore, logger *zap.Logger) *Gateway {
	return &Gateway{
		hub:      hub,
		messages: messages,
		logger:   logger,
	}
}

// SendMessage appends the message to the store (best effort, own goroutine)
// and emits receive_message to every connection the receiver has open. An
// offline receiver is a silent no-op; the stored record is the backstop
// picked up by the next history fetch.
func (g *Gateway) SendMessage(payload MessagePayload) {
	if payload.SenderID == "" || payload.ReceiverID == "" {
		return
	}
	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now()
	}

	go g.persist(payload)

	data, err := json.Marshal(outboundEvent{Event: EventReceiveMessage, Data: payload})
	if err != nil {
		g.logger.Error("failed to encode receive_message event", zap.Error(err))
		return
	}
	g.hub.SendToUser(payload.ReceiverID, data)
}

func (g *Gateway) persist(payload MessagePayload) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	message := &models.Message{
		SenderID:   payload.SenderID,
		ReceiverID: payload.ReceiverID,
		Message:    payload.Message,
		Timestamp:  payload.Timestamp,
	}

	if err := g.messages.Save(ctx, message); err != nil {
		// Logged only: delivery already happened and must not be rolled back
		g.logger.Error("failed to persist chat message",
			zap.String("sender_id", payload.SenderID),
			zap.String("receiver_id", payload.ReceiverID),
			zap.Error(err))
	}
}

// SendNotification emits a payload-free receive_notification ping to every
// live connection of receiverID. No persistence, no delivery guarantee.
func (g *Gateway) SendNotification(receiverID string) {
	if receiverID == "" {
		return
	}

	data, err := json.Marshal(outboundEvent{Event: EventReceiveNotification})
	if err != nil {
		g.logger.Error("failed to encode receive_notification event", zap.Error(err))
		return
	}
	g.hub.SendToUser(receiverID, data)
}

// History returns the stored conversation between two users, oldest first.
func (g *Gateway) History(ctx context.Context, userAID, userBID string) ([]models.Message, error) {
	return g.messages.History(ctx, userAID, userBID)
}
