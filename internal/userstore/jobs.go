package userstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prism-careers/internal/storage"
)

// JobListings is a stub collaborator: no external job source is wired in,
// so the listing set is always empty. Applications are still recorded.
func (s *Store) JobListings(ctx context.Context, careerID string, limit int) ([]map[string]any, error) {
	return []map[string]any{}, nil
}

// RecordApplication appends a job application and returns its id.
func (s *Store) RecordApplication(ctx context.Context, app JobApplication) (string, error) {
	app.ID = uuid.New().String()
	app.AppliedAt = time.Now()
	_, err := s.db.Collection(storage.CollJobApplications).InsertOne(ctx, app)
	if err != nil {
		return "", fmt.Errorf("record application for %q: %w", app.UserID, err)
	}
	return app.ID, nil
}

// ApplicationsByUser lists a user's applications, newest first.
func (s *Store) ApplicationsByUser(ctx context.Context, uid string) ([]JobApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})
	cursor, err := s.db.Collection(storage.CollJobApplications).Find(ctx, bson.M{"uid": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch applications for %q: %w", uid, err)
	}
	defer cursor.Close(ctx)

	apps := []JobApplication{}
	for cursor.Next(ctx) {
		var app JobApplication
		if err := cursor.Decode(&app); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, cursor.Err()
}
