package storage

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the application.
const (
	CollCareers         = "careers"
	CollUsers           = "users"
	CollAssessments     = "assessments"
	CollChatHistory     = "chat_history"
	CollJobApplications = "job_applications"
	CollCareerRequests  = "career_requests"
)

type DB struct {
	client *mongo.Client
	name   string
}

func NewDB(uri, dbName string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25).
		SetConnectTimeout(10*time.Second))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &DB{client: client, name: dbName}, nil
}

func (db *DB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.client.Disconnect(ctx); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// Collection returns a handle in the configured database.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.client.Database(db.name).Collection(name)
}
