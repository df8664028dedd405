package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prism-careers/internal/storage"
)

// Store is the single-document-per-user persistence layer. The document
// store's atomic single-document update is the only concurrency primitive
// relied upon; writes are last-writer-wins per user document.
type Store struct {
	db *storage.DB
}

func NewStore(db *storage.DB) *Store {
	return &Store{db: db}
}

func (s *Store) users() *mongo.Collection {
	return s.db.Collection(storage.CollUsers)
}

// UpsertProfile creates or refreshes the user document and stamps the
// last login.
func (s *Store) UpsertProfile(ctx context.Context, uid, email, displayName string) error {
	set := bson.M{
		"uid":        uid,
		"email":      email,
		"last_login": time.Now(),
	}
	if displayName != "" {
		set["display_name"] = displayName
	}

	_, err := s.users().UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": set},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert profile %q: %w", uid, err)
	}
	return nil
}

func (s *Store) getProfile(ctx context.Context, uid string) (*Profile, error) {
	var profile Profile
	err := s.users().FindOne(ctx, bson.M{"uid": uid}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch profile %q: %w", uid, err)
	}
	return &profile, nil
}

// SaveSelectedCareers replaces the user's shortlist. Callers cap the list
// at three entries before the write; the store does not re-check.
func (s *Store) SaveSelectedCareers(ctx context.Context, uid string, careers []string) error {
	_, err := s.users().UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": bson.M{"selected_careers": careers}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save selected careers for %q: %w", uid, err)
	}
	return nil
}

func (s *Store) GetSelectedCareers(ctx context.Context, uid string) ([]string, error) {
	profile, err := s.getProfile(ctx, uid)
	if err != nil || profile == nil {
		return []string{}, err
	}
	if profile.SelectedCareers == nil {
		return []string{}, nil
	}
	return profile.SelectedCareers, nil
}

// SaveJourney replaces the user's active career journey wholesale; its
// cardinality is exactly one per user.
func (s *Store) SaveJourney(ctx context.Context, uid, slug, title string) error {
	_, err := s.users().UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": bson.M{"current_journey": Journey{
			Slug:       slug,
			Title:      title,
			SelectedAt: time.Now(),
		}}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save journey for %q: %w", uid, err)
	}
	return nil
}

func (s *Store) GetJourney(ctx context.Context, uid string) (*Journey, error) {
	profile, err := s.getProfile(ctx, uid)
	if err != nil || profile == nil {
		return nil, err
	}
	return profile.CurrentJourney, nil
}

// UpdateRoadmapProgress writes one checkbox at the composite
// (career id, stage, step id) address inside the user document.
func (s *Store) UpdateRoadmapProgress(ctx context.Context, uid, careerID, stage, stepID, stepTitle string, completed bool, note string) error {
	key := fmt.Sprintf("roadmap_progress.%s.%s.%s", careerID, stage, stepID)
	_, err := s.users().UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": bson.M{key: StepProgress{
			Completed: completed,
			StepTitle: stepTitle,
			Note:      note,
			UpdatedAt: time.Now(),
		}}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("update roadmap progress for %q: %w", uid, err)
	}
	return nil
}

// GetRoadmapProgress reads the per-stage step map for one career. A career
// the user never touched yields an empty map, not an error.
func (s *Store) GetRoadmapProgress(ctx context.Context, uid, careerID string) (map[string]map[string]StepProgress, error) {
	profile, err := s.getProfile(ctx, uid)
	if err != nil {
		return nil, err
	}
	return CareerProgress(profile, careerID), nil
}

// CareerProgress extracts one career's stage/step map from a profile.
// Progress written under other career ids never leaks into the result;
// an absent profile or untouched career yields an empty map.
func CareerProgress(profile *Profile, careerID string) map[string]map[string]StepProgress {
	if profile == nil || profile.RoadmapProgress == nil {
		return map[string]map[string]StepProgress{}
	}
	progress, ok := profile.RoadmapProgress[careerID]
	if !ok {
		return map[string]map[string]StepProgress{}
	}
	return progress
}

// Progress aggregates the dashboard stats for a user.
func (s *Store) Progress(ctx context.Context, uid string) (ProgressStats, error) {
	count, err := s.db.Collection(storage.CollAssessments).CountDocuments(ctx, bson.M{"uid": uid})
	if err != nil {
		return ProgressStats{}, fmt.Errorf("count assessments for %q: %w", uid, err)
	}

	selected, err := s.GetSelectedCareers(ctx, uid)
	if err != nil {
		return ProgressStats{}, err
	}

	completion := 20
	if count > 0 {
		completion += 40
	}
	if len(selected) > 0 {
		completion += 20
	}

	return ProgressStats{
		AssessmentsCompleted: int(count),
		CareersExplored:      len(selected),
		ProfileCompletion:    completion,
		NextMilestone:        "Complete Career Roadmap",
	}, nil
}

// RecentActivity lists the user's latest assessments as dashboard rows.
func (s *Store) RecentActivity(ctx context.Context, uid string, limit int) ([]Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.db.Collection(storage.CollAssessments).Find(ctx, bson.M{"uid": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch recent activity for %q: %w", uid, err)
	}
	defer cursor.Close(ctx)

	activities := []Activity{}
	for cursor.Next(ctx) {
		var record AssessmentRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, fmt.Errorf("decode assessment: %w", err)
		}
		activities = append(activities, Activity{
			Type:        "assessment",
			Title:       "Career Assessment",
			Date:        record.CreatedAt.Format("2006-01-02"),
			Description: "Completed career assessment",
		})
	}
	return activities, cursor.Err()
}
