package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/derya/learnhub/internal/app/models"
)

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords("I recommend learning JavaScript and some Machine Learning basics")
	assert.Contains(t, keywords, "javascript")
	assert.Contains(t, keywords, "machine learning")
	assert.NotContains(t, keywords, "python")
}

func TestExtractKeywordsNoMatches(t *testing.T) {
	assert.Empty(t, ExtractKeywords("nothing relevant here"))
}

func TestFilterCoursesByKeywords(t *testing.T) {
	courses := []*models.Course{
		{Title: "JavaScript Fundamentals", Description: "Learn the basics", Category: "Web Development"},
		{Title: "Watercolor Painting", Description: "Paint with watercolors", Category: "Art"},
		{Title: "Intro to Baking", Description: "Covers python-free sourdough", Category: "Cooking"},
	}

	matched := FilterCoursesByKeywords(courses, []string{"javascript"})
	assert.Len(t, matched, 1)
	assert.Equal(t, "JavaScript Fundamentals", matched[0].Title)

	// Matching is substring search on title, description and category
	matched = FilterCoursesByKeywords(courses, []string{"python"})
	assert.Len(t, matched, 1)
	assert.Equal(t, "Intro to Baking", matched[0].Title)

	assert.Empty(t, FilterCoursesByKeywords(courses, nil))
}
