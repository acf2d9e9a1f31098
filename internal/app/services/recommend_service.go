package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/derya/learnhub/internal/app/models/dto"
	"github.com/derya/learnhub/internal/app/repositories"
	"github.com/derya/learnhub/internal/pkg/apperrors"
)

const recommendSystemPrompt = "You are a helpful course recommendation assistant. Always respond with valid JSON."

// Completer sends one chat completion request and returns the reply text
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// RecommendService defines the interface for LLM-backed course recommendations
type RecommendService interface {
	Recommend(ctx context.Context, prompt string) (*dto.RecommendResponse, error)
}

// recommendServiceImpl implements the RecommendService interface
type recommendServiceImpl struct {
	courseRepo repositories.ICourseRepository
	completer  Completer
	logger     zerolog.Logger
}

// NewRecommendService creates a new recommendation service instance
func NewRecommendService(courseRepo repositories.ICourseRepository, completer Completer, logger zerolog.Logger) RecommendService {
	return &recommendServiceImpl{
		courseRepo: courseRepo,
		completer:  completer,
		logger:     logger,
	}
}

// Recommend forwards the prompt plus the course catalog to the language
// model and intersects its reply with the catalog. A reply that cannot
// be parsed degrades to a single placeholder recommendation instead of
// failing the request; only a failed upstream call is an error.
func (s *recommendServiceImpl) Recommend(ctx context.Context, prompt string) (*dto.RecommendResponse, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, apperrors.NewBadRequestError("Prompt is required")
	}

	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	contextLines := make([]string, 0, len(courses))
	for _, course := range courses {
		contextLines = append(contextLines, fmt.Sprintf("%s - %s (Category: %s, Level: %s)",
			course.Title, course.Description, course.Category, course.Level))
	}

	userPrompt := fmt.Sprintf(`Based on the user's request: %q

Available courses:
%s

Please recommend the most relevant courses from the available list above.
Respond with a JSON array of recommended course titles and brief explanations.
Format: [{"title": "Course Title", "reason": "Why this course is recommended"}]`,
		prompt, strings.Join(contextLines, "\n"))

	reply, err := s.completer.Complete(ctx, recommendSystemPrompt, userPrompt)
	if err != nil {
		s.logger.Error().Err(err).Msg("Completion request failed")
		return nil, apperrors.NewUpstreamError(err.Error())
	}

	response := &dto.RecommendResponse{Prompt: prompt}

	var recommendations []dto.Recommendation
	if err := json.Unmarshal([]byte(reply), &recommendations); err != nil {
		// Best-effort degradation: the model ignored the JSON format
		s.logger.Warn().Err(err).Msg("Model reply was not valid JSON, falling back to placeholder")
		response.Recommendations = []dto.Recommendation{{
			Title:  "Unable to parse recommendations",
			Reason: "Please try a different prompt",
		}}
		response.Degraded = true
	} else {
		response.Recommendations = recommendations
	}

	// Intersect the reply with the catalog by keyword matching so the
	// client gets concrete course records alongside the model's text.
	response.MatchedCourses = FilterCoursesByKeywords(courses, ExtractKeywords(reply))

	return response, nil
}
