package services

import (
	"strings"

	"github.com/derya/learnhub/internal/app/models"
)

// recommendationVocabulary is the fixed keyword list matched against
// model replies and course records. Matching is case-insensitive
// substring search, a heuristic filter rather than a ranking.
var recommendationVocabulary = []string{
	"programming", "javascript", "python", "react", "node", "web development",
	"data science", "machine learning", "ai", "artificial intelligence",
	"database", "sql", "mongodb", "backend", "frontend", "fullstack",
	"mobile development", "android", "ios", "flutter", "react native",
	"devops", "cloud", "aws", "azure", "docker", "kubernetes",
	"cybersecurity", "networking", "linux", "system administration",
	"ui/ux", "design", "photoshop", "figma", "user experience",
	"project management", "agile", "scrum", "business analysis",
	"digital marketing", "seo", "social media", "content marketing",
}

// ExtractKeywords returns the vocabulary entries present in text
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)

	var keywords []string
	for _, keyword := range recommendationVocabulary {
		if strings.Contains(lower, keyword) {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}

// FilterCoursesByKeywords returns the courses whose title, description
// or category contains any of the keywords. Order follows the input
// slice; ties are not ranked.
func FilterCoursesByKeywords(courses []*models.Course, keywords []string) []*models.Course {
	matched := []*models.Course{}
	for _, course := range courses {
		if courseMatchesAny(course, keywords) {
			matched = append(matched, course)
		}
	}
	return matched
}

func courseMatchesAny(course *models.Course, keywords []string) bool {
	title := strings.ToLower(course.Title)
	description := strings.ToLower(course.Description)
	category := strings.ToLower(course.Category)

	for _, keyword := range keywords {
		if strings.Contains(title, keyword) ||
			strings.Contains(description, keyword) ||
			strings.Contains(category, keyword) {
			return true
		}
	}
	return false
}
