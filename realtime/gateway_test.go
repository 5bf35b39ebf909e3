package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"alumniconnect-api/models"
)

type fakeMessageStore struct {
	saveCh  chan *models.Message
	saveErr error
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{saveCh: make(chan *models.Message, 8)}
}

func (f *fakeMessageStore) Save(ctx context.Context, message *models.Message) error {
	f.saveCh <- message
	return f.saveErr
}

func (f *fakeMessageStore) History(ctx context.Context, userAID, userBID string) ([]models.Message, error) {
	return nil, nil
}

func (f *fakeMessageStore) waitForSave(t *testing.T) *models.Message {
	t.Helper()
	select {
	case m := <-f.saveCh:
		return m
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for store write")
		return nil
	}
}

type receivedEnvelope struct {
	Event string         `json:"event"`
	Data  MessagePayload `json:"data"`
}

func decodeFrame(t *testing.T, data []byte) receivedEnvelope {
	t.Helper()
	var env receivedEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("failed to decode frame %s: %v", data, err)
	}
	return env
}

func TestSendMessage_DeliversToEveryReceiverConnection(t *testing.T) {
	hub := newTestHub(t)
	store := newFakeMessageStore()
	gateway := NewGateway(hub, store, zap.NewNop())

	tab1 := newJoinedClient(hub, "user-b")
	tab2 := newJoinedClient(hub, "user-b")

	stamp := time.Now().Round(time.Millisecond)
	gateway.SendMessage(MessagePayload{
		SenderID:   "user-a",
		ReceiverID: "user-b",
		Message:    "hi",
		Timestamp:  stamp,
	})

	for _, tab := range []*Client{tab1, tab2} {
		env := decodeFrame(t, recvFrame(t, tab))
		if env.Event != EventReceiveMessage {
			t.Fatalf("expected %s, got %s", EventReceiveMessage, env.Event)
		}
		if env.Data.SenderID != "user-a" || env.Data.Message != "hi" {
			t.Fatalf("unexpected payload: %+v", env.Data)
		}
	}

	saved := store.waitForSave(t)
	if saved.SenderID != "user-a" || saved.ReceiverID != "user-b" || saved.Message != "hi" {
		t.Fatalf("unexpected stored message: %+v", saved)
	}
	if !saved.Timestamp.Equal(stamp) {
		t.Fatalf("client timestamp not preserved: %v != %v", saved.Timestamp, stamp)
	}
}

func TestSendMessage_OfflineReceiverStillPersists(t *testing.T) {
	hub := newTestHub(t)
	store := newFakeMessageStore()
	gateway := NewGateway(hub, store, zap.NewNop())

	bystander := newJoinedClient(hub, "user-c")

	gateway.SendMessage(MessagePayload{
		SenderID:   "user-a",
		ReceiverID: "user-b",
		Message:    "hi",
		Timestamp:  time.Now(),
	})

	// The message is durably stored even though nobody was listening
	saved := store.waitForSave(t)
	if saved.ReceiverID != "user-b" {
		t.Fatalf("unexpected stored message: %+v", saved)
	}
	assertNoFrame(t, bystander)
}

func TestSendMessage_StoreFailureDoesNotBlockDelivery(t *testing.T) {
	hub := newTestHub(t)
	store := newFakeMessageStore()
	store.saveErr = errors.New("mongo down")
	gateway := NewGateway(hub, store, zap.NewNop())

	receiver := newJoinedClient(hub, "user-b")

	gateway.SendMessage(MessagePayload{
		SenderID:   "user-a",
		ReceiverID: "user-b",
		Message:    "still delivered",
		Timestamp:  time.Now(),
	})

	env := decodeFrame(t, recvFrame(t, receiver))
	if env.Data.Message != "still delivered" {
		t.Fatalf("unexpected payload: %+v", env.Data)
	}
	store.waitForSave(t)
}

func TestSendMessage_StampsMissingTimestamp(t *testing.T) {
	hub := newTestHub(t)
	store := newFakeMessageStore()
	gateway := NewGateway(hub, store, zap.NewNop())

	gateway.SendMessage(MessagePayload{
		SenderID:   "user-a",
		ReceiverID: "user-b",
		Message:    "no stamp",
	})

	saved := store.waitForSave(t)
	if saved.Timestamp.IsZero() {
		t.Fatal("expected server to stamp missing timestamp")
	}
}

func TestSendNotification_PayloadFreePing(t *testing.T) {
	hub := newTestHub(t)
	store := newFakeMessageStore()
	gateway := NewGateway(hub, store, zap.NewNop())

	receiver := newJoinedClient(hub, "user-b")

	gateway.SendNotification("user-b")

	frame := recvFrame(t, receiver)
	if string(frame) != `{"event":"receive_notification"}` {
		t.Fatalf("unexpected ping frame: %s", frame)
	}

	// No persistence for pings
	select {
	case m := <-store.saveCh:
		t.Fatalf("notification ping was persisted: %+v", m)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClient_InboundEventDispatch(t *testing.T) {
	hub := newTestHub(t)
	store := newFakeMessageStore()
	gateway := NewGateway(hub, store, zap.NewNop())

	receiver := newJoinedClient(hub, "user-b")

	sender := &Client{hub: hub, gateway: gateway, send: make(chan []byte, 16)}

	// Malformed frames and unknown events are dropped silently
	sender.handleEvent([]byte(`not json`))
	sender.handleEvent([]byte(`{"event":"presence_query"}`))

	// join_room announces the identity; repeats are no-ops
	sender.handleEvent([]byte(`{"event":"join_room","data":"user-a"}`))
	if !sender.joined || sender.userID != "user-a" {
		t.Fatalf("join_room did not register: joined=%v userID=%q", sender.joined, sender.userID)
	}
	sender.handleEvent([]byte(`{"event":"join_room","data":"user-z"}`))
	if sender.userID != "user-a" {
		t.Fatal("second join_room on the same connection must not rebind the identity")
	}

	sender.handleEvent([]byte(`{"event":"send_message","data":{"senderId":"user-a","receiverId":"user-b","message":"hello","timestamp":"2026-01-05T10:00:00Z"}}`))

	env := decodeFrame(t, recvFrame(t, receiver))
	if env.Event != EventReceiveMessage || env.Data.Message != "hello" {
		t.Fatalf("unexpected delivery: %+v", env)
	}
	store.waitForSave(t)

	sender.handleEvent([]byte(`{"event":"send_notification","data":{"receiverId":"user-b"}}`))
	frame := recvFrame(t, receiver)
	if string(frame) != `{"event":"receive_notification"}` {
		t.Fatalf("unexpected ping frame: %s", frame)
	}
}
