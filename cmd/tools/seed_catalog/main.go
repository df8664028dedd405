// Seeds the careers collection with the baseline catalog entries.
//
// Usage:
//
//	go run ./cmd/tools/seed_catalog -drop
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"prism-careers/internal/catalog"
	"prism-careers/internal/config"
	"prism-careers/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	drop := flag.Bool("drop", false, "drop the careers collection before seeding")
	flag.Parse()

	cfg := config.LoadConfig()
	if cfg.MongoURI == "" {
		log.Fatal("set MONGODB_URI environment variable")
	}

	db, err := storage.NewDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("db open:", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	coll := db.Collection(storage.CollCareers)

	if *drop {
		if err := coll.Drop(ctx); err != nil {
			log.Fatal("drop careers:", err)
		}
		log.Println("Cleared existing careers")
	}

	inserted := 0
	for _, career := range seedCareers() {
		career.UpdatedAt = time.Now().UTC()
		_, err := coll.UpdateOne(ctx,
			bson.M{"slug": career.Slug},
			bson.M{"$set": career},
			options.Update().SetUpsert(true))
		if err != nil {
			log.Printf("Failed to upsert %s: %v", career.Title, err)
			continue
		}
		log.Printf("Seeded: %s", career.Title)
		inserted++
	}

	log.Printf("Summary: %d/%d careers seeded", inserted, len(seedCareers()))
}

func intp(v int) *int { return &v }

func seedCareers() []catalog.Career {
	return []catalog.Career{
		{
			Slug:             "software-engineer",
			Title:            "Software Engineer",
			Category:         "Technology",
			ShortDescription: "Design, develop, and maintain software applications and systems.",
			FullDescription:  "Software Engineers apply engineering principles to the design, development, maintenance, testing, and evaluation of computer software. They work on a wide range of projects, from building web applications and mobile apps to developing operating systems and network control systems.",
			AvgSalaryMin:     intp(500000),
			AvgSalaryMax:     intp(2500000),
			GrowthProspects:  "Excellent",
			WorkEnvironment:  "Office/Remote, Collaborative",
			JobOutlook:       "High demand globally",
			EntranceExams: []catalog.EntranceExam{
				{ExamName: "JEE Main", ExamFullName: "Joint Entrance Examination - Main", ExamLevel: "UG", ConductingBody: "NTA", Frequency: "Twice a year", ExamPattern: "MCQs in Physics, Chemistry, Maths", PreparationTime: "1-2 years", DifficultyLevel: "High"},
				{ExamName: "BITSAT", ExamFullName: "Birla Institute of Technology and Science Admission Test", ExamLevel: "UG", ConductingBody: "BITS Pilani", Frequency: "Annual", ExamPattern: "MCQs in PCM, English, Logical Reasoning", PreparationTime: "1 year", DifficultyLevel: "High"},
				{ExamName: "GATE", ExamFullName: "Graduate Aptitude Test in Engineering", ExamLevel: "PG", ConductingBody: "IITs", Frequency: "Annual", ExamPattern: "Technical subjects + General Aptitude", PreparationTime: "6-12 months", DifficultyLevel: "High"},
			},
			EducationalPaths: []catalog.EducationalPath{
				{DegreeLevel: "UG", DegreeName: "B.Tech in Computer Science/IT", Duration: "4 years", Eligibility: "10+2 with PCM", TopColleges: "IITs, NITs, IIITs, BITS", Specializations: "AI, Web Dev, Cyber Security"},
				{DegreeLevel: "UG", DegreeName: "BCA (Bachelor of Computer Applications)", Duration: "3 years", Eligibility: "10+2 any stream with Maths", TopColleges: "Christ University, Loyola College", Specializations: "Application Development"},
				{DegreeLevel: "PG", DegreeName: "M.Tech in Computer Science", Duration: "2 years", Eligibility: "B.Tech + GATE", TopColleges: "IITs, NITs, IISc", Specializations: "Data Science, Systems Engineering"},
			},
			SkillsRequired: []catalog.Skill{
				{SkillName: "Python/Java/C++", SkillCategory: "Technical", ImportanceLevel: "Critical", Description: "Core programming languages"},
				{SkillName: "Data Structures & Algorithms", SkillCategory: "Technical", ImportanceLevel: "Critical", Description: "Problem solving foundation"},
				{SkillName: "System Design", SkillCategory: "Technical", ImportanceLevel: "High", Description: "Designing scalable systems"},
				{SkillName: "Git/GitHub", SkillCategory: "Technical", ImportanceLevel: "High", Description: "Version control"},
				{SkillName: "Communication", SkillCategory: "Soft Skill", ImportanceLevel: "Medium", Description: "Team collaboration"},
			},
			Roadmap: []catalog.RoadmapStep{
				{Stage: "Foundation", Timeline: "Year 1-2", Title: "Learn Basics", Description: "Master a programming language and DSA.", ActionItems: "Learn Python/Java, Practice on LeetCode, Build simple CLI apps", SortOrder: 1},
				{Stage: "Development", Timeline: "Year 2-3", Title: "Build Projects", Description: "Create web or mobile applications.", ActionItems: "Learn a framework (React/Django), Build a portfolio website, Contribute to Open Source", SortOrder: 2},
				{Stage: "Internship", Timeline: "Year 3-4", Title: "Gain Experience", Description: "Work in a real-world environment.", ActionItems: "Apply for internships, Network on LinkedIn, Mock interviews", SortOrder: 3},
				{Stage: "Placement", Timeline: "Year 4", Title: "Job Hunt", Description: "Secure a full-time role.", ActionItems: "Prepare resume, Practice system design, Apply to companies", SortOrder: 4},
			},
			JobRoles: []catalog.JobRole{
				{RoleTitle: "Junior Software Engineer", ExperienceLevel: "0-2 years", Responsibilities: "Bug fixing, minor features", SalaryRange: "₹5-10 LPA"},
				{RoleTitle: "Senior Software Engineer", ExperienceLevel: "3-6 years", Responsibilities: "System design, mentoring, major features", SalaryRange: "₹15-35 LPA"},
				{RoleTitle: "Tech Lead", ExperienceLevel: "6+ years", Responsibilities: "Architecture, team leadership", SalaryRange: "₹35-60+ LPA"},
			},
			Resources: []catalog.Resource{
				{ResourceType: "Course", ResourceName: "CS50: Introduction to Computer Science", Provider: "Harvard/edX", URL: "https://cs50.harvard.edu/x/", Description: "Best intro to CS", IsFree: true},
				{ResourceType: "Platform", ResourceName: "LeetCode", Provider: "LeetCode", URL: "https://leetcode.com/", Description: "Practice coding problems", IsFree: true},
				{ResourceType: "Book", ResourceName: "Clean Code", Provider: "Robert C. Martin", URL: "https://www.amazon.com/Clean-Code-Handbook-Software-Craftsmanship/dp/0132350882", Description: "Best practices for coding"},
			},
		},
		{
			Slug:             "data-scientist",
			Title:            "Data Scientist",
			Category:         "Technology",
			ShortDescription: "Analyze complex data to help organizations make better decisions.",
			FullDescription:  "Data Scientists use scientific methods, processes, algorithms, and systems to extract knowledge and insights from structured and unstructured data. They combine skills from statistics, computer science, and domain expertise.",
			AvgSalaryMin:     intp(600000),
			AvgSalaryMax:     intp(3000000),
			GrowthProspects:  "Very High",
			WorkEnvironment:  "Office/Remote, Analytical",
			JobOutlook:       "Rapidly growing field",
			EntranceExams: []catalog.EntranceExam{
				{ExamName: "GATE", ExamFullName: "Graduate Aptitude Test in Engineering", ExamLevel: "PG", ConductingBody: "IITs", Frequency: "Annual", ExamPattern: "Data Science & AI Paper", PreparationTime: "6-12 months", DifficultyLevel: "High"},
				{ExamName: "ISI Admission Test", ExamFullName: "Indian Statistical Institute Admission Test", ExamLevel: "PG", ConductingBody: "ISI", Frequency: "Annual", ExamPattern: "Mathematics & Statistics", PreparationTime: "1 year", DifficultyLevel: "Very High"},
			},
			EducationalPaths: []catalog.EducationalPath{
				{DegreeLevel: "UG", DegreeName: "B.Sc in Statistics/Data Science", Duration: "3 years", Eligibility: "10+2 with Maths", TopColleges: "ISI, CMI, IITs", Specializations: "Statistics, ML"},
				{DegreeLevel: "PG", DegreeName: "M.Sc/M.Tech in Data Science", Duration: "2 years", Eligibility: "Graduation in relevant field", TopColleges: "IITs, IISc, ISI", Specializations: "Deep Learning, NLP"},
			},
			SkillsRequired: []catalog.Skill{
				{SkillName: "Python/R", SkillCategory: "Technical", ImportanceLevel: "Critical", Description: "Data analysis languages"},
				{SkillName: "Statistics & Probability", SkillCategory: "Technical", ImportanceLevel: "Critical", Description: "Mathematical foundation"},
				{SkillName: "Machine Learning", SkillCategory: "Technical", ImportanceLevel: "Critical", Description: "Predictive modeling"},
				{SkillName: "SQL", SkillCategory: "Technical", ImportanceLevel: "High", Description: "Data extraction"},
				{SkillName: "Data Visualization", SkillCategory: "Technical", ImportanceLevel: "High", Description: "Presenting insights"},
			},
			Roadmap: []catalog.RoadmapStep{
				{Stage: "Foundation", Timeline: "Month 0-6", Title: "Math & Code", Description: "Learn Stats and Python.", ActionItems: "Complete Stats 101, Learn Python syntax, Pandas/NumPy", SortOrder: 1},
				{Stage: "Core ML", Timeline: "Month 6-12", Title: "Algorithms", Description: "Understand ML algorithms.", ActionItems: "Learn Scikit-learn, Implement Linear Regression, Decision Trees", SortOrder: 2},
				{Stage: "Deep Learning", Timeline: "Year 1-2", Title: "Advanced AI", Description: "Neural Networks and beyond.", ActionItems: "Learn TensorFlow/PyTorch, Build CNN/RNN models", SortOrder: 3},
				{Stage: "Application", Timeline: "Ongoing", Title: "Real Projects", Description: "Solve real problems.", ActionItems: "Kaggle competitions, End-to-end deployment", SortOrder: 4},
			},
			JobRoles: []catalog.JobRole{
				{RoleTitle: "Data Analyst", ExperienceLevel: "0-2 years", Responsibilities: "Data cleaning, visualization", SalaryRange: "₹4-8 LPA"},
				{RoleTitle: "Data Scientist", ExperienceLevel: "2-5 years", Responsibilities: "Model building, insights", SalaryRange: "₹10-25 LPA"},
				{RoleTitle: "Principal Data Scientist", ExperienceLevel: "5+ years", Responsibilities: "Strategy, advanced AI", SalaryRange: "₹30-50+ LPA"},
			},
			Resources: []catalog.Resource{
				{ResourceType: "Course", ResourceName: "Machine Learning Specialization", Provider: "Coursera/Andrew Ng", URL: "https://www.coursera.org/specializations/machine-learning-introduction", Description: "Best ML intro"},
				{ResourceType: "Platform", ResourceName: "Kaggle", Provider: "Google", URL: "https://www.kaggle.com/", Description: "Data Science competitions", IsFree: true},
			},
		},
	}
}
