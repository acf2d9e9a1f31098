package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derya/learnhub/internal/app/controllers"
	"github.com/derya/learnhub/internal/app/models"
	"github.com/derya/learnhub/internal/app/models/dto"
	"github.com/derya/learnhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	recommendController *controllers.RecommendController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Course routes ---
	courses := api.Group("/courses")
	{
		// Catalog reads are public
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)

		// Mutations require an instructor token
		coursesInstructorProtected := courses.Group("")
		coursesInstructorProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleInstructor)))
		{
			coursesInstructorProtected.POST("", courseController.CreateCourse)
			coursesInstructorProtected.PUT("/:id", courseController.UpdateCourse)
			coursesInstructorProtected.DELETE("/:id", courseController.DeleteCourse)
		}

		// Enrollment requires a student token
		coursesStudentProtected := courses.Group("")
		coursesStudentProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			coursesStudentProtected.POST("/:id/enroll", courseController.EnrollCourse)
		}
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		user := authenticated.Group("/user")
		{
			user.GET("/profile", userController.GetProfile)
			user.GET("/courses", userController.GetEnrolledCourses)
		}

		authenticated.POST("/recommend", recommendController.Recommend)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		})
	})
}
