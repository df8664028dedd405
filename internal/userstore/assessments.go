package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prism-careers/internal/storage"
)

// SaveAssessment appends an immutable assessment record and returns its id.
func (s *Store) SaveAssessment(ctx context.Context, uid string, answers []AnswerPair, results AssessmentResults) (string, error) {
	record := AssessmentRecord{
		ID:        uuid.New().String(),
		UserID:    uid,
		Answers:   answers,
		Results:   results,
		CreatedAt: time.Now(),
	}
	_, err := s.db.Collection(storage.CollAssessments).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("save assessment for %q: %w", uid, err)
	}
	return record.ID, nil
}

// LatestResults returns the newest assessment's recommendation payload, or
// nil when the user has never completed one.
func (s *Store) LatestResults(ctx context.Context, uid string) (*AssessmentResults, error) {
	var record AssessmentRecord
	err := s.db.Collection(storage.CollAssessments).FindOne(ctx,
		bson.M{"uid": uid},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch latest assessment for %q: %w", uid, err)
	}
	return &record.Results, nil
}

// Context assembles the personalization block for the AI mentor from the
// latest assessment plus the user's shortlist.
func (s *Store) Context(ctx context.Context, uid string) (MentorContext, error) {
	mc := MentorContext{
		CareerMatches:   []map[string]any{},
		SkillsToDevelop: []map[string]any{},
		SelectedCareers: []string{},
	}

	latest, err := s.LatestResults(ctx, uid)
	if err != nil {
		return mc, err
	}
	if latest != nil {
		mc.AssessmentCompleted = true
		mc.CareerMatches = latest.CareerPaths
		mc.SkillsToDevelop = latest.SkillsGap
	}

	selected, err := s.GetSelectedCareers(ctx, uid)
	if err != nil {
		return mc, err
	}
	mc.SelectedCareers = selected
	return mc, nil
}
