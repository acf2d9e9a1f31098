// Package seed provisions demo data for local development.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/derya/learnhub/internal/app/models"
	"github.com/derya/learnhub/internal/app/repositories"
	"github.com/derya/learnhub/internal/pkg/apperrors"
	"github.com/derya/learnhub/internal/pkg/auth"
)

const (
	demoInstructorName     = "Demo Instructor"
	demoInstructorEmail    = "instructor@learnhub.dev"
	demoInstructorPassword = "instructor123"
)

// CreateDefaultData creates a demo instructor and a starter catalog when
// the database is empty. Existing data is left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	courseRepo := repositories.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")

	instructor, err := ensureDemoInstructor(ctx, userRepo)
	if err != nil {
		return err
	}

	courses, err := courseRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing courses: %w", err)
	}
	if len(courses) > 0 {
		lgr.Debug().Int("count", len(courses)).Msg("Catalog already populated, skipping seed courses")
		return nil
	}

	var finalErr error
	for _, course := range starterCourses(instructor) {
		if _, err := courseRepo.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Error creating seed course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Seed courses created")
	}
	return finalErr
}

func ensureDemoInstructor(ctx context.Context, userRepo repositories.IUserRepository) (*models.User, error) {
	existing, err := userRepo.GetByEmail(ctx, demoInstructorEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up demo instructor: %w", err)
	}

	hashedPassword, err := auth.HashPassword(demoInstructorPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	instructor := &models.User{
		Name:     demoInstructorName,
		Email:    demoInstructorEmail,
		Password: hashedPassword,
		Role:     models.RoleInstructor,
	}
	if err := userRepo.Create(ctx, instructor); err != nil {
		return nil, fmt.Errorf("failed to create demo instructor: %w", err)
	}
	return instructor, nil
}

func starterCourses(instructor *models.User) []*models.Course {
	return []*models.Course{
		{
			Title:          "JavaScript Fundamentals",
			Description:    "Learn the basics of JavaScript programming from variables to closures",
			Content:        "Variables, functions, objects, arrays, the event loop and async programming.",
			Price:          49.99,
			Category:       "Web Development",
			Level:          models.LevelBeginner,
			InstructorID:   instructor.ID,
			InstructorName: instructor.Name,
		},
		{
			Title:          "React for Beginners",
			Description:    "Build modern frontend applications with React components and hooks",
			Content:        "JSX, components, state, hooks, routing and data fetching.",
			Price:          59.99,
			Category:       "Web Development",
			Level:          models.LevelBeginner,
			InstructorID:   instructor.ID,
			InstructorName: instructor.Name,
		},
		{
			Title:          "Python for Data Science",
			Description:    "Analyze data with Python, pandas and machine learning basics",
			Content:        "NumPy, pandas, visualization and an introduction to scikit-learn.",
			Price:          79.99,
			Category:       "Data Science",
			Level:          models.LevelIntermediate,
			InstructorID:   instructor.ID,
			InstructorName: instructor.Name,
		},
		{
			Title:          "Docker and Kubernetes in Practice",
			Description:    "Containerize applications and run them on Kubernetes clusters",
			Content:        "Images, containers, compose, deployments, services and ingress.",
			Price:          89.99,
			Category:       "DevOps",
			Level:          models.LevelAdvanced,
			InstructorID:   instructor.ID,
			InstructorName: instructor.Name,
		},
	}
}
