package dto

import "github.com/derya/learnhub/internal/app/models"

// RecommendRequest represents a free-text recommendation prompt
type RecommendRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Recommendation is one course suggestion parsed from the model reply
type Recommendation struct {
	Title  string `json:"title" example:"Introduction to Go"`
	Reason string `json:"reason" example:"Covers the fundamentals you asked about"`
}

// RecommendResponse represents the recommendation result. Degraded is set
// when the model reply could not be parsed and the placeholder
// recommendation was substituted.
type RecommendResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	MatchedCourses  []*models.Course `json:"matchedCourses"`
	Prompt          string           `json:"prompt"`
	Degraded        bool             `json:"degraded,omitempty"`
}
