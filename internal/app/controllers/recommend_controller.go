package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/derya/learnhub/internal/app/models/dto"
	"github.com/derya/learnhub/internal/app/services"
	"github.com/derya/learnhub/internal/middleware"
)

// RecommendController handles LLM-backed course recommendations
type RecommendController struct {
	recommendService services.RecommendService
	logger           zerolog.Logger
}

// NewRecommendController creates a new RecommendController
func NewRecommendController(recommendService services.RecommendService, logger zerolog.Logger) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
		logger:           logger,
	}
}

// Recommend returns course recommendations for a free-text prompt
// @Summary Recommend courses
// @Description Sends the prompt and the course catalog to the language model and returns its suggestions together with matching catalog entries
// @Tags recommend
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecommendRequest true "Free-text prompt"
// @Success 200 {object} dto.RecommendResponse "Recommendations"
// @Failure 400 {object} dto.ErrorResponse "Missing prompt"
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 502 {object} dto.ErrorResponse "Language model unavailable"
// @Router /recommend [post]
func (c *RecommendController) Recommend(ctx *gin.Context) {
	var req dto.RecommendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.recommendService.Recommend(ctx.Request.Context(), req.Prompt)
	if err != nil {
		c.logger.Error().Err(err).Msg("Recommendation request failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
