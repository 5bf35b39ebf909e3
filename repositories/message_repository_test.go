package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumniconnect-api/database"
	"alumniconnect-api/models"
)

// requires a running MongoDB; set MONGO_URI to run
func setupMessageRepo(t *testing.T) *MessageRepository {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set; skipping integration test")
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, uri, "alumniconnect_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close(context.Background()) })

	require.NoError(t, client.MessagesCollection().Drop(ctx))
	require.NoError(t, client.CreateIndexes(ctx))

	return NewMessageRepository(client.MessagesCollection())
}

func TestMessageRepository_SaveAndHistory(t *testing.T) {
	repo := setupMessageRepo(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Millisecond)

	first := &models.Message{SenderID: "user-a", ReceiverID: "user-b", Message: "hi", Timestamp: base}
	require.NoError(t, repo.Save(ctx, first))
	assert.False(t, first.ID.IsZero())
	assert.False(t, first.CreatedAt.IsZero())

	reply := &models.Message{SenderID: "user-b", ReceiverID: "user-a", Message: "hello", Timestamp: base.Add(time.Second)}
	require.NoError(t, repo.Save(ctx, reply))

	// Unrelated conversation must not leak in
	other := &models.Message{SenderID: "user-a", ReceiverID: "user-c", Message: "elsewhere", Timestamp: base}
	require.NoError(t, repo.Save(ctx, other))

	history, err := repo.History(ctx, "user-a", "user-b")
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Chronological, both directions, same result from either side
	assert.Equal(t, "hi", history[0].Message)
	assert.Equal(t, "hello", history[1].Message)

	mirrored, err := repo.History(ctx, "user-b", "user-a")
	require.NoError(t, err)
	require.Len(t, mirrored, 2)
	assert.Equal(t, history[0].ID, mirrored[0].ID)
}

func TestMessageRepository_TimestampTiesKeepInsertionOrder(t *testing.T) {
	repo := setupMessageRepo(t)
	ctx := context.Background()

	stamp := time.Now().UTC().Truncate(time.Millisecond)
	for _, text := range []string{"one", "two", "three"} {
		m := &models.Message{SenderID: "user-a", ReceiverID: "user-b", Message: text, Timestamp: stamp}
		require.NoError(t, repo.Save(ctx, m))
	}

	history, err := repo.History(ctx, "user-a", "user-b")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []string{"one", "two", "three"},
		[]string{history[0].Message, history[1].Message, history[2].Message})
}

func TestMessageRepository_EmptyHistory(t *testing.T) {
	repo := setupMessageRepo(t)

	history, err := repo.History(context.Background(), "nobody-1", "nobody-2")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Len(t, history, 0)
}
