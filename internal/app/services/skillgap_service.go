package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/repositories"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
)

// roleSkills maps each target role to its required skill list. Order
// matters: results are reported in this order.
var roleSkills = map[string][]string{
	"Data Analyst":         {"Python", "SQL", "PowerBI", "Excel", "Tableau", "Statistics", "Pandas"},
	"Software Engineer":    {"DSA", "Java", "Python", "Git", "SQL", "System Design", "OOP"},
	"Full Stack Developer": {"HTML", "CSS", "React", "Node.js", "MongoDB", "REST API", "Git"},
	"DevOps Engineer":      {"Linux", "Docker", "Kubernetes", "CI/CD", "AWS", "Jenkins", "Bash"},
	"ML Engineer":          {"Python", "Machine Learning", "Deep Learning", "TensorFlow", "Pandas", "NumPy", "Statistics"},
}

type learningResource struct {
	Platform string
	URL      string
	Hours    int
}

var skillResources = map[string]learningResource{
	// Core programming
	"Python": {"freeCodeCamp", "https://www.freecodecamp.org/learn/scientific-computing-with-python/", 20},
	"Java":   {"Codecademy", "https://www.codecademy.com/learn/learn-java", 20},
	"OOP":    {"GeeksforGeeks", "https://www.geeksforgeeks.org/object-oriented-programming-oops-concept-in-java/", 10},
	"DSA":    {"LeetCode", "https://leetcode.com/explore/learn/", 40},
	"Git":    {"GitHub Docs", "https://docs.github.com/en/get-started/quickstart/git-and-github-learning-resources", 10},
	"SQL":    {"SQLZoo", "https://sqlzoo.net/wiki/SQL_Tutorial", 10},
	"Bash":   {"The Odin Project", "https://www.theodinproject.com/lessons/foundations-command-line-basics", 8},
	"C":      {"Learn-C.org", "https://www.learn-c.org/", 15},
	"C++":    {"LearnCpp.com", "https://www.learncpp.com/", 20},

	// Web and frontend
	"HTML":       {"MDN Web Docs", "https://developer.mozilla.org/en-US/docs/Learn/HTML", 8},
	"CSS":        {"MDN Web Docs", "https://developer.mozilla.org/en-US/docs/Learn/CSS", 10},
	"React":      {"React Docs", "https://react.dev/learn", 12},
	"Node.js":    {"Node.js Docs", "https://nodejs.org/en/learn/getting-started/introduction-to-nodejs", 10},
	"REST API":   {"freeCodeCamp", "https://www.freecodecamp.org/news/rest-api-tutorial-rest-client-rest-service-and-api-calls-explained-with-code-examples/", 8},
	"JavaScript": {"javascript.info", "https://javascript.info/", 20},
	"TypeScript": {"TypeScript Docs", "https://www.typescriptlang.org/docs/", 12},
	"Django":     {"Django Docs", "https://docs.djangoproject.com/en/stable/intro/tutorial01/", 15},
	"Flask":      {"Flask Docs", "https://flask.palletsprojects.com/en/latest/tutorial/", 10},

	// Data and analytics
	"Pandas":             {"Kaggle Learn", "https://www.kaggle.com/learn/pandas", 8},
	"NumPy":              {"NumPy Official", "https://numpy.org/learn/", 6},
	"Statistics":         {"Khan Academy", "https://www.khanacademy.org/math/statistics-probability", 20},
	"Excel":              {"Microsoft Support", "https://support.microsoft.com/en-us/excel", 8},
	"PowerBI":            {"Microsoft Learn", "https://learn.microsoft.com/en-us/training/powerplatform/power-bi", 15},
	"Tableau":            {"Tableau Training", "https://www.tableau.com/learn/training", 10},
	"Data Visualization": {"Kaggle Learn", "https://www.kaggle.com/learn/data-visualization", 8},
	"EDA":                {"Kaggle Learn", "https://www.kaggle.com/learn/data-cleaning", 6},

	// Machine learning and AI
	"Machine Learning": {"Coursera – Andrew Ng", "https://www.coursera.org/learn/machine-learning", 30},
	"Deep Learning":    {"fast.ai", "https://course.fast.ai/", 25},
	"TensorFlow":       {"TensorFlow.org", "https://www.tensorflow.org/tutorials", 15},
	"Scikit-learn":     {"Scikit-learn Docs", "https://scikit-learn.org/stable/tutorial/index.html", 10},
	"NLP":              {"Hugging Face Course", "https://huggingface.co/learn/nlp-course/chapter1/1", 20},
	"Computer Vision":  {"fast.ai", "https://course.fast.ai/", 20},

	// Architecture and design
	"System Design":     {"Educative.io", "https://www.educative.io/blog/complete-guide-system-design-interview", 20},
	"DBMS":              {"GeeksforGeeks", "https://www.geeksforgeeks.org/dbms/", 12},
	"OS":                {"GeeksforGeeks", "https://www.geeksforgeeks.org/operating-systems/", 15},
	"Computer Networks": {"GeeksforGeeks", "https://www.geeksforgeeks.org/computer-network-tutorials/", 12},

	// DevOps and cloud
	"Linux":      {"Linux Journey", "https://linuxjourney.com/", 12},
	"Docker":     {"Docker Docs", "https://docs.docker.com/get-started/", 8},
	"Kubernetes": {"Kubernetes.io", "https://kubernetes.io/docs/tutorials/kubernetes-basics/", 12},
	"AWS":        {"AWS Skill Builder", "https://skillbuilder.aws/", 20},
	"Jenkins":    {"Jenkins Docs", "https://www.jenkins.io/doc/tutorials/", 8},
	"CI/CD":      {"GitHub Actions", "https://docs.github.com/en/actions/learn-github-actions", 6},

	// Databases
	"MongoDB":    {"MongoDB University", "https://learn.mongodb.com/", 8},
	"MySQL":      {"MySQL Tutorial", "https://www.mysqltutorial.org/", 8},
	"PostgreSQL": {"PostgreSQL Tutorial", "https://www.postgresqltutorial.com/", 10},
}

// fallbackURLs covers skills absent from skillResources, keyed lowercase.
var fallbackURLs = map[string]string{
	"r":           "https://www.coursera.org/learn/r-programming",
	"matlab":      "https://www.mathworks.com/learn/tutorials/matlab-onramp.html",
	"spark":       "https://spark.apache.org/docs/latest/quick-start.html",
	"hadoop":      "https://hadoop.apache.org/docs/stable/hadoop-mapreduce-client/hadoop-mapreduce-client-core/MapReduceTutorial.html",
	"selenium":    "https://www.selenium.dev/documentation/webdriver/getting_started/",
	"spring boot": "https://spring.io/guides/gs/spring-boot/",
	"graphql":     "https://graphql.org/learn/",
	"redis":       "https://redis.io/docs/get-started/",
	"firebase":    "https://firebase.google.com/docs/guides",
	"azure":       "https://learn.microsoft.com/en-us/azure/guides/developer/azure-developer-guide",
	"gcp":         "https://cloud.google.com/learn/training",
}

// SkillGapService matches student skills against role requirements and
// suggests learning resources for the gaps
type SkillGapService struct {
	profileRepo *repositories.StudentProfileRepository
}

// NewSkillGapService creates a new skill gap service
func NewSkillGapService(profileRepo *repositories.StudentProfileRepository) *SkillGapService {
	return &SkillGapService{
		profileRepo: profileRepo,
	}
}

// Roles lists the known target roles in a stable order
func (s *SkillGapService) Roles() []string {
	roles := make([]string, 0, len(roleSkills))
	for role := range roleSkills {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// AnalyzeForStudent loads the student's profile and runs the gap analysis.
// A student without a profile gets the full report with nothing matched.
func (s *SkillGapService) AnalyzeForStudent(ctx context.Context, studentID int64, targetRole string) (*dto.SkillGapResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return Analyze(nil, targetRole), nil
		}
		return nil, err
	}

	return Analyze(profile.Skills, targetRole), nil
}

// Analyze splits a role's required skills into have and missing based on a
// case-insensitive comparison of the student's skills, attaching a learning
// resource to every missing skill. Unknown roles yield an empty requirement
// list and a zero match.
func Analyze(studentSkills []string, targetRole string) *dto.SkillGapResponse {
	owned := make(map[string]bool, len(studentSkills))
	for _, skill := range studentSkills {
		owned[strings.ToLower(skill)] = true
	}

	required := roleSkills[targetRole]
	have := []string{}
	missing := []dto.SkillResource{}
	for _, skill := range required {
		if owned[strings.ToLower(skill)] {
			have = append(have, skill)
			continue
		}
		missing = append(missing, resourceFor(skill))
	}

	matchPct := 0
	if len(required) > 0 {
		matchPct = len(have) * 100 / len(required)
	}

	return &dto.SkillGapResponse{
		Role:     targetRole,
		Required: append([]string{}, required...),
		Have:     have,
		Missing:  missing,
		MatchPct: matchPct,
	}
}

// resourceFor resolves a learning resource in three steps: the curated
// table, then the fallback URL map, then a GeeksforGeeks search as the
// last resort.
func resourceFor(skill string) dto.SkillResource {
	if res, ok := skillResources[skill]; ok {
		return dto.SkillResource{Skill: skill, Platform: res.Platform, URL: res.URL, Hours: res.Hours}
	}
	if url, ok := fallbackURLs[strings.ToLower(skill)]; ok {
		return dto.SkillResource{Skill: skill, Platform: "Official Docs", URL: url, Hours: 10}
	}
	searchTerm := strings.ReplaceAll(skill, " ", "+")
	return dto.SkillResource{
		Skill:    skill,
		Platform: "GeeksforGeeks",
		URL:      "https://www.geeksforgeeks.org/search/?q=" + searchTerm,
		Hours:    10,
	}
}
