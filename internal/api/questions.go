package api

// Question is one assessment prompt shown to the user. Free-text and
// choice questions share the shape; Options is empty for text questions.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Category string   `json:"category"`
}

// AssessmentQuestions is the fixed question set served to clients and
// echoed back with answers at submission time.
var AssessmentQuestions = []Question{
	{
		ID:       "q1",
		Question: "What subjects or topics do you enjoy the most in school/college?",
		Type:     "text",
		Category: "interests",
	},
	{
		ID:       "q2",
		Question: "Which of these activities do you prefer? (Select multiple)",
		Type:     "multiple_choice",
		Options: []string{
			"Solving mathematical problems",
			"Creative writing or art",
			"Building or fixing things",
			"Helping others",
			"Analyzing data",
			"Public speaking or debates",
		},
		Category: "preferences",
	},
	{
		ID:       "q3",
		Question: "What are your strongest skills?",
		Type:     "text",
		Category: "skills",
	},
	{
		ID:       "q4",
		Question: "What is your educational background or current academic level?",
		Type:     "text",
		Category: "education",
	},
	{
		ID:       "q5",
		Question: "Which industries interest you the most? (Select up to 3)",
		Type:     "multiple_choice",
		Options: []string{
			"Technology & IT",
			"Healthcare & Medicine",
			"Finance & Banking",
			"Education & Research",
			"Arts & Entertainment",
			"Engineering & Manufacturing",
			"Business & Entrepreneurship",
			"Government & Public Service",
			"Agriculture & Environment",
		},
		Category: "industries",
	},
	{
		ID:       "q6",
		Question: "What are your long-term career goals?",
		Type:     "text",
		Category: "goals",
	},
	{
		ID:       "q7",
		Question: "Do you prefer working independently or in teams?",
		Type:     "single_choice",
		Options:  []string{"Independently", "In teams", "Both equally"},
		Category: "work_style",
	},
	{
		ID:       "q8",
		Question: "What motivates you most in a career?",
		Type:     "single_choice",
		Options: []string{
			"High salary and financial stability",
			"Passion and interest in the field",
			"Making a social impact",
			"Work-life balance",
			"Growth opportunities and challenges",
		},
		Category: "motivation",
	},
	{
		ID:       "q9",
		Question: "Are you aware of entrance exams relevant to your career interests? If yes, which ones?",
		Type:     "text",
		Category: "exams",
	},
	{
		ID:       "q10",
		Question: "What challenges or obstacles do you face in choosing a career path?",
		Type:     "text",
		Category: "challenges",
	},
}
