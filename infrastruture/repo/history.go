package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	dmn "github.com/maxfahl/Labyrinths/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const historyTimeout = 2 * time.Second

// HistoryRepo stores saved mazes, one document per entry.
type HistoryRepo struct {
	collection *mongo.Collection
}

// NewHistoryRepo creates a HistoryRepo on the given database and collection.
func NewHistoryRepo(client *mongo.Client, dbName, collectionName string) *HistoryRepo {
	return &HistoryRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the index used to list a user's history.
func (h *HistoryRepo) EnsureIndexes(ctx context.Context) error {
	_, err := h.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}

// Save replaces the entry with the same ID, or inserts it.
func (h *HistoryRepo) Save(ctx context.Context, saved *dmn.SavedMaze) error {
	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	filter := bson.M{"_id": saved.ID, "userId": saved.UserID}
	opts := options.Replace().SetUpsert(true)
	if _, err := h.collection.ReplaceOne(ctx, filter, saved, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves one entry of userID.
func (h *HistoryRepo) ByID(ctx context.Context, userID, id uuid.UUID) (*dmn.SavedMaze, error) {
	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	var saved dmn.SavedMaze
	err := h.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&saved)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrSavedMazeNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &saved, nil
}

// ByUser lists the entries of userID, newest first.
func (h *HistoryRepo) ByUser(ctx context.Context, userID uuid.UUID) ([]*dmn.SavedMaze, error) {
	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := h.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	defer cursor.Close(ctx)

	result := []*dmn.SavedMaze{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	return result, nil
}

// Delete removes one entry of userID.
func (h *HistoryRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	res, err := h.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	if res.DeletedCount == 0 {
		return dmn.ErrSavedMazeNotFound
	}
	return nil
}

// Clear removes every entry of userID.
func (h *HistoryRepo) Clear(ctx context.Context, userID uuid.UUID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	res, err := h.collection.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("unexpected error: %w", err)
	}
	return res.DeletedCount, nil
}
