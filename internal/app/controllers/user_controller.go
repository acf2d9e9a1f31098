package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/derya/learnhub/internal/app/models/dto"
	"github.com/derya/learnhub/internal/app/services"
	"github.com/derya/learnhub/internal/middleware"
)

// UserController handles operations on the authenticated user
type UserController struct {
	authService   services.AuthService
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(authService services.AuthService, courseService services.CourseService, logger zerolog.Logger) *UserController {
	return &UserController{
		authService:   authService,
		courseService: courseService,
		logger:        logger,
	}
}

// GetProfile returns the authenticated user's profile
// @Summary Get current user profile
// @Description Returns the profile of the authenticated user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "User profile"
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 403 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /user/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.authService.Profile(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to load profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetEnrolledCourses returns the courses the authenticated user is enrolled in
// @Summary List enrolled courses
// @Description Returns the full course records the authenticated user is enrolled in
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course "Enrolled courses"
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 403 {object} dto.ErrorResponse "Invalid or expired token"
// @Router /user/courses [get]
func (c *UserController) GetEnrolledCourses(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.courseService.ListEnrolled(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to load enrolled courses")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}
