package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/learnhub/internal/app/models"
	"github.com/derya/learnhub/internal/pkg/apperrors"
)

func seedCatalog(t *testing.T, courseRepo *fakeCourseRepo) {
	t.Helper()

	courses := []*models.Course{
		{
			Title:       "JavaScript Fundamentals",
			Description: "Learn the basics of JavaScript programming",
			Category:    "Web Development",
			Level:       models.LevelBeginner,
		},
		{
			Title:       "Python for Data Science",
			Description: "Analyze data with Python and pandas",
			Category:    "Data Science",
			Level:       models.LevelIntermediate,
		},
	}
	for _, course := range courses {
		_, err := courseRepo.Create(context.Background(), course)
		require.NoError(t, err)
	}
}

func TestRecommendParsesModelReply(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	seedCatalog(t, courseRepo)

	completer := &fakeCompleter{
		reply: `[{"title": "JavaScript Fundamentals", "reason": "Good starting point for web development"}]`,
	}
	service := NewRecommendService(courseRepo, completer, zerolog.Nop())

	resp, err := service.Recommend(context.Background(), "I want to learn web development")
	require.NoError(t, err)

	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "JavaScript Fundamentals", resp.Recommendations[0].Title)
	assert.False(t, resp.Degraded)
	assert.Equal(t, "I want to learn web development", resp.Prompt)

	// The reply mentions javascript and web development, so the catalog
	// intersection picks the matching course.
	require.Len(t, resp.MatchedCourses, 1)
	assert.Equal(t, "JavaScript Fundamentals", resp.MatchedCourses[0].Title)

	// The catalog is embedded in the outgoing prompt
	assert.Contains(t, completer.lastPrompt, "JavaScript Fundamentals")
	assert.Contains(t, completer.lastPrompt, "Python for Data Science")
}

func TestRecommendDegradesOnUnparsableReply(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	seedCatalog(t, courseRepo)

	completer := &fakeCompleter{reply: "Sure! I'd recommend starting with JavaScript."}
	service := NewRecommendService(courseRepo, completer, zerolog.Nop())

	resp, err := service.Recommend(context.Background(), "where do I start?")
	require.NoError(t, err)

	// Exactly one placeholder, never an error
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Unable to parse recommendations", resp.Recommendations[0].Title)
	assert.Equal(t, "Please try a different prompt", resp.Recommendations[0].Reason)
	assert.True(t, resp.Degraded)

	// Keyword matching still runs against the free-text reply
	require.Len(t, resp.MatchedCourses, 1)
	assert.Equal(t, "JavaScript Fundamentals", resp.MatchedCourses[0].Title)
}

func TestRecommendUpstreamFailure(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	seedCatalog(t, courseRepo)

	completer := &fakeCompleter{err: errors.New("connection refused")}
	service := NewRecommendService(courseRepo, completer, zerolog.Nop())

	_, err := service.Recommend(context.Background(), "anything")
	assert.ErrorIs(t, err, apperrors.ErrExternalService)
}

func TestRecommendEmptyPrompt(t *testing.T) {
	service := NewRecommendService(newFakeCourseRepo(), &fakeCompleter{}, zerolog.Nop())

	_, err := service.Recommend(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRecommendEmptyCatalog(t *testing.T) {
	completer := &fakeCompleter{reply: `[]`}
	service := NewRecommendService(newFakeCourseRepo(), completer, zerolog.Nop())

	resp, err := service.Recommend(context.Background(), "anything at all")
	require.NoError(t, err)
	assert.Empty(t, resp.Recommendations)
	assert.Empty(t, resp.MatchedCourses)
}
