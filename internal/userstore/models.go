package userstore

import "time"

// Journey is the user's single currently-selected career path.
type Journey struct {
	Slug       string    `bson:"slug" json:"slug"`
	Title      string    `bson:"title" json:"title"`
	SelectedAt time.Time `bson:"selected_at" json:"selected_at"`
}

// StepProgress is one roadmap checkbox, keyed in the user document by
// (career id, stage, step id).
type StepProgress struct {
	Completed bool      `bson:"completed" json:"completed"`
	StepTitle string    `bson:"step_title,omitempty" json:"step_title,omitempty"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Profile is the single per-user document. Every mutation against it is an
// upsert keyed by uid; there is no separate create path.
type Profile struct {
	UserID          string                                        `bson:"uid" json:"user_id"`
	Email           string                                        `bson:"email" json:"email"`
	DisplayName     string                                        `bson:"display_name,omitempty" json:"display_name,omitempty"`
	LastLogin       time.Time                                     `bson:"last_login" json:"last_login"`
	CurrentJourney  *Journey                                      `bson:"current_journey,omitempty" json:"current_journey,omitempty"`
	SelectedCareers []string                                      `bson:"selected_careers,omitempty" json:"selected_careers,omitempty"`
	RoadmapProgress map[string]map[string]map[string]StepProgress `bson:"roadmap_progress,omitempty" json:"roadmap_progress,omitempty"`
}

// AnswerPair is one submitted question/answer.
type AnswerPair struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

// AssessmentResults is the structured recommendation payload stored with
// each assessment record.
type AssessmentResults struct {
	CareerPaths        []map[string]any `bson:"career_paths" json:"career_paths"`
	SkillsGap          []map[string]any `bson:"skills_gap" json:"skills_gap"`
	LearningResources  []map[string]any `bson:"learning_resources" json:"learning_resources"`
	PersonalizedAdvice string           `bson:"personalized_advice" json:"personalized_advice"`
}

// AssessmentRecord is immutable once written; "latest" means newest
// created_at.
type AssessmentRecord struct {
	ID        string            `bson:"assessment_id" json:"assessment_id"`
	UserID    string            `bson:"uid" json:"user_id"`
	Answers   []AnswerPair      `bson:"answers" json:"answers"`
	Results   AssessmentResults `bson:"results" json:"results"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}

// ChatMessage is one mentor exchange.
type ChatMessage struct {
	UserID    string    `bson:"uid" json:"-"`
	Message   string    `bson:"message" json:"message"`
	Response  string    `bson:"response" json:"response"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// JobApplication is append-only; the listing fields are denormalized at
// application time.
type JobApplication struct {
	ID           string    `bson:"application_id" json:"application_id"`
	UserID       string    `bson:"uid" json:"user_id"`
	JobListingID string    `bson:"job_listing_id,omitempty" json:"job_listing_id,omitempty"`
	JobTitle     string    `bson:"job_title" json:"job_title"`
	CompanyName  string    `bson:"company_name,omitempty" json:"company_name,omitempty"`
	JobLocation  string    `bson:"job_location,omitempty" json:"job_location,omitempty"`
	SalaryRange  string    `bson:"salary_range,omitempty" json:"salary_range,omitempty"`
	JobURL       string    `bson:"job_url,omitempty" json:"job_url,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	AppliedAt    time.Time `bson:"applied_at" json:"applied_at"`
}

// ProgressStats backs the dashboard progress card.
type ProgressStats struct {
	AssessmentsCompleted int    `json:"assessments_completed"`
	CareersExplored      int    `json:"careers_explored"`
	ProfileCompletion    int    `json:"profile_completion"`
	NextMilestone        string `json:"next_milestone"`
}

// Activity is one dashboard recent-activity row.
type Activity struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// MentorContext is the personalization block injected into the mentor's
// system prompt.
type MentorContext struct {
	AssessmentCompleted bool
	CareerMatches       []map[string]any
	SkillsToDevelop     []map[string]any
	SelectedCareers     []string
}
