package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Career is the full catalog document. Related data is embedded; the
// embedded collections have no existence outside their parent career.
type Career struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug             string             `bson:"slug" json:"slug"`
	Title            string             `bson:"title" json:"title"`
	Category         string             `bson:"category" json:"category"`
	ShortDescription string             `bson:"short_description" json:"short_description"`
	FullDescription  string             `bson:"full_description,omitempty" json:"full_description,omitempty"`
	AvgSalaryMin     *int               `bson:"avg_salary_min,omitempty" json:"avg_salary_min,omitempty"`
	AvgSalaryMax     *int               `bson:"avg_salary_max,omitempty" json:"avg_salary_max,omitempty"`
	GrowthProspects  string             `bson:"growth_prospects,omitempty" json:"growth_prospects,omitempty"`
	WorkEnvironment  string             `bson:"work_environment,omitempty" json:"work_environment,omitempty"`
	JobOutlook       string             `bson:"job_outlook,omitempty" json:"job_outlook,omitempty"`
	EntranceExams    []EntranceExam     `bson:"entrance_exams" json:"entrance_exams"`
	EducationalPaths []EducationalPath  `bson:"educational_paths" json:"educational_paths"`
	SkillsRequired   []Skill            `bson:"skills_required" json:"skills_required"`
	Roadmap          []RoadmapStep      `bson:"roadmap" json:"roadmap"`
	JobRoles         []JobRole          `bson:"job_roles" json:"job_roles"`
	Resources        []Resource         `bson:"resources" json:"resources"`
	UpdatedAt        time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type EntranceExam struct {
	ExamName        string `bson:"exam_name" json:"exam_name"`
	ExamFullName    string `bson:"exam_full_name,omitempty" json:"exam_full_name,omitempty"`
	ExamLevel       string `bson:"exam_level,omitempty" json:"exam_level,omitempty"`
	ConductingBody  string `bson:"conducting_body,omitempty" json:"conducting_body,omitempty"`
	Frequency       string `bson:"frequency,omitempty" json:"frequency,omitempty"`
	ExamPattern     string `bson:"exam_pattern,omitempty" json:"exam_pattern,omitempty"`
	PreparationTime string `bson:"preparation_time,omitempty" json:"preparation_time,omitempty"`
	DifficultyLevel string `bson:"difficulty_level,omitempty" json:"difficulty_level,omitempty"`
}

type EducationalPath struct {
	DegreeLevel     string `bson:"degree_level" json:"degree_level"`
	DegreeName      string `bson:"degree_name" json:"degree_name"`
	Duration        string `bson:"duration,omitempty" json:"duration,omitempty"`
	Eligibility     string `bson:"eligibility,omitempty" json:"eligibility,omitempty"`
	TopColleges     string `bson:"top_colleges,omitempty" json:"top_colleges,omitempty"`
	Specializations string `bson:"specializations,omitempty" json:"specializations,omitempty"`
}

type Skill struct {
	SkillName       string `bson:"skill_name" json:"skill_name"`
	SkillCategory   string `bson:"skill_category,omitempty" json:"skill_category,omitempty"`
	ImportanceLevel string `bson:"importance_level,omitempty" json:"importance_level,omitempty"`
	Description     string `bson:"description,omitempty" json:"description,omitempty"`
}

type RoadmapStep struct {
	Stage       string `bson:"stage" json:"stage"`
	Timeline    string `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	ActionItems string `bson:"action_items,omitempty" json:"action_items,omitempty"`
	SortOrder   int    `bson:"sort_order" json:"sort_order"`
}

type JobRole struct {
	RoleTitle        string `bson:"role_title" json:"role_title"`
	ExperienceLevel  string `bson:"experience_level,omitempty" json:"experience_level,omitempty"`
	Responsibilities string `bson:"responsibilities,omitempty" json:"responsibilities,omitempty"`
	SalaryRange      string `bson:"salary_range,omitempty" json:"salary_range,omitempty"`
}

type Resource struct {
	ResourceType string `bson:"resource_type" json:"resource_type"`
	ResourceName string `bson:"resource_name" json:"resource_name"`
	Provider     string `bson:"provider,omitempty" json:"provider,omitempty"`
	URL          string `bson:"url,omitempty" json:"url,omitempty"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
	IsFree       bool   `bson:"is_free,omitempty" json:"is_free,omitempty"`
}

// Summary is the projected catalog listing used by the explore surface.
type Summary struct {
	ID               string   `json:"id,omitempty"`
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	ShortDescription string   `json:"short_description"`
	AvgSalaryMin     *int     `json:"avg_salary_min,omitempty"`
	AvgSalaryMax     *int     `json:"avg_salary_max,omitempty"`
	AvgSalary        string   `json:"avg_salary"`
	PopularExams     []string `json:"popular_exams"`
	MatchPercentage  *float64 `json:"match_percentage,omitempty"`
	IsRecommended    bool     `json:"is_recommended,omitempty"`
}

// RecommendedCareer is the career-path fragment produced by the assessment AI.
type RecommendedCareer struct {
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	MatchPercentage   float64 `json:"match_percentage"`
	RequiredEducation string  `json:"required_education"`
	SalaryRange       string  `json:"salary_range"`
	GrowthProspects   string  `json:"growth_prospects"`
}

// CareerRequest tracks a user's ask to add a missing career to the catalog.
type CareerRequest struct {
	UserID      string    `bson:"uid" json:"user_id"`
	CareerTitle string    `bson:"career_title" json:"career_title"`
	CareerSlug  string    `bson:"career_slug" json:"career_slug"`
	UserEmail   string    `bson:"user_email,omitempty" json:"user_email,omitempty"`
	UserName    string    `bson:"user_name,omitempty" json:"user_name,omitempty"`
	Message     string    `bson:"message,omitempty" json:"message,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
