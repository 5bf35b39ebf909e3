package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"alumniconnect-api/models"
)

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(coll *mongo.Collection) *MessageRepository {
	return &MessageRepository{coll: coll}
}

// Save appends one message document. CreatedAt is stamped here; the caller's
// Timestamp is kept untouched since it is the conversation ordering key.
func (r *MessageRepository) Save(ctx context.Context, message *models.Message) error {
	message.CreatedAt = time.Now()

	result, err := r.coll.InsertOne(ctx, message)
	if err != nil {
		return err
	}

	message.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// History returns every message exchanged between the two users, in either
// direction, oldest first. Ties on the client timestamp fall back to _id so
// insertion order wins.
func (r *MessageRepository) History(ctx context.Context, userAID, userBID string) ([]models.Message, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"sender_id": userAID, "receiver_id": userBID},
			bson.M{"sender_id": userBID, "receiver_id": userAID},
		},
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "timestamp", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}
