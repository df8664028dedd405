package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prism-careers/internal/storage"
)

// Store is the read/upsert path over the careers collection.
type Store struct {
	db *storage.DB
}

func NewStore(db *storage.DB) *Store {
	return &Store{db: db}
}

func (s *Store) careers() *mongo.Collection {
	return s.db.Collection(storage.CollCareers)
}

// GetBySlug fetches the full career document. A missing slug returns
// (nil, nil); that absence is a domain outcome, not an error.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*Career, error) {
	var career Career
	err := s.careers().FindOne(ctx, bson.M{"slug": slug}).Decode(&career)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch career %q: %w", slug, err)
	}
	return &career, nil
}

type summaryDoc struct {
	ID               primitive.ObjectID `bson:"_id"`
	Slug             string             `bson:"slug"`
	Title            string             `bson:"title"`
	Category         string             `bson:"category"`
	ShortDescription string             `bson:"short_description"`
	AvgSalaryMin     *int               `bson:"avg_salary_min"`
	AvgSalaryMax     *int               `bson:"avg_salary_max"`
	PopularExams     []string           `bson:"popular_exams"`
	EntranceExams    []EntranceExam     `bson:"entrance_exams"`
}

// ListSummaries returns the projected catalog listing in title order, with
// the salary bounds pre-formatted as a lakhs range. When a document has no
// precomputed popular_exams field, the first five embedded entrance exam
// names stand in for it.
func (s *Store) ListSummaries(ctx context.Context) ([]Summary, error) {
	opts := options.Find().
		SetProjection(bson.M{
			"slug": 1, "title": 1, "category": 1, "short_description": 1,
			"avg_salary_min": 1, "avg_salary_max": 1, "popular_exams": 1,
			"entrance_exams.exam_name": 1,
		}).
		SetSort(bson.D{{Key: "title", Value: 1}})

	cursor, err := s.careers().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []Summary{}
	for cursor.Next(ctx) {
		var doc summaryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode career summary: %w", err)
		}

		exams := doc.PopularExams
		if exams == nil {
			exams = []string{}
			for i, exam := range doc.EntranceExams {
				if i == 5 {
					break
				}
				exams = append(exams, exam.ExamName)
			}
		}

		summaries = append(summaries, Summary{
			ID:               doc.ID.Hex(),
			Slug:             doc.Slug,
			Title:            doc.Title,
			Category:         doc.Category,
			ShortDescription: doc.ShortDescription,
			AvgSalaryMin:     doc.AvgSalaryMin,
			AvgSalaryMax:     doc.AvgSalaryMax,
			AvgSalary:        FormatSalary(doc.AvgSalaryMin, doc.AvgSalaryMax),
			PopularExams:     exams,
		})
	}
	return summaries, cursor.Err()
}

// Resolve runs the exact slug lookup and falls back to the fuzzy title
// match over the full catalog. A nil career with a nil error means the
// candidate is genuinely absent from the catalog.
func (s *Store) Resolve(ctx context.Context, slug, title string) (*Career, error) {
	career, err := s.GetBySlug(ctx, slug)
	if err != nil || career != nil {
		return career, err
	}

	entries, err := s.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if matched := Match(slug, title, entries); matched != nil {
		return s.GetBySlug(ctx, matched.Slug)
	}
	return nil, nil
}

// UpsertFromRecommendation merges an AI-recommended career path into the
// catalog: update in place when the derived slug exists, otherwise insert
// with empty placeholder embedded collections. Returns the canonical slug.
func (s *Store) UpsertFromRecommendation(ctx context.Context, rec RecommendedCareer) (string, error) {
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		return "", errors.New("recommendation has no title")
	}

	slug := Slugify(title)
	salaryMin, salaryMax := ParseSalaryText(rec.SalaryRange)

	description := rec.Description
	if description == "" {
		description = title
	}

	doc := bson.M{
		"slug":              slug,
		"title":             title,
		"category":          InferCategory(title, rec.Description),
		"short_description": truncate(description, 200),
		"full_description":  description,
		"avg_salary_min":    salaryMin,
		"avg_salary_max":    salaryMax,
		"growth_prospects":  rec.GrowthProspects,
		"updated_at":        time.Now(),
	}

	_, err := s.careers().UpdateOne(ctx, bson.M{"slug": slug}, bson.M{
		"$set": doc,
		"$setOnInsert": bson.M{
			"entrance_exams":    []EntranceExam{},
			"educational_paths": []EducationalPath{},
			"skills_required":   []Skill{},
			"roadmap":           []RoadmapStep{},
			"job_roles":         []JobRole{},
			"resources":         []Resource{},
		},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("upsert career %q: %w", slug, err)
	}
	return slug, nil
}

// SaveRequest records a user's ask for a career the catalog does not have.
func (s *Store) SaveRequest(ctx context.Context, req CareerRequest) error {
	req.Status = "pending"
	req.CreatedAt = time.Now()
	_, err := s.db.Collection(storage.CollCareerRequests).InsertOne(ctx, req)
	if err != nil {
		return fmt.Errorf("save career request: %w", err)
	}
	return nil
}
