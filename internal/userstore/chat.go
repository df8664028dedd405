package userstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prism-careers/internal/storage"
)

// SaveChatMessage appends one mentor exchange to the user's history.
func (s *Store) SaveChatMessage(ctx context.Context, uid, message, response string) error {
	_, err := s.db.Collection(storage.CollChatHistory).InsertOne(ctx, ChatMessage{
		UserID:    uid,
		Message:   message,
		Response:  response,
		Timestamp: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("save chat message for %q: %w", uid, err)
	}
	return nil
}

// ChatHistory returns the most recent window of exchanges in chronological
// (oldest-first) order. Storage is queried newest-first to bound the
// window, then reversed for callers.
func (s *Store) ChatHistory(ctx context.Context, uid string, limit int) ([]ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.db.Collection(storage.CollChatHistory).Find(ctx, bson.M{"uid": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch chat history for %q: %w", uid, err)
	}
	defer cursor.Close(ctx)

	history := []ChatMessage{}
	for cursor.Next(ctx) {
		var msg ChatMessage
		if err := cursor.Decode(&msg); err != nil {
			return nil, fmt.Errorf("decode chat message: %w", err)
		}
		history = append(history, msg)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return Chronological(history), nil
}

// Chronological reverses a newest-first window in place-order terms,
// returning oldest-first.
func Chronological(newestFirst []ChatMessage) []ChatMessage {
	out := make([]ChatMessage, len(newestFirst))
	for i, msg := range newestFirst {
		out[len(newestFirst)-1-i] = msg
	}
	return out
}
