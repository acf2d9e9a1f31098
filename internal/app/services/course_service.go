package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/derya/learnhub/internal/app/models"
	"github.com/derya/learnhub/internal/app/models/dto"
	"github.com/derya/learnhub/internal/app/repositories"
	"github.com/derya/learnhub/internal/pkg/apperrors"
)

// CourseService defines the interface for course and enrollment operations
type CourseService interface {
	List(ctx context.Context) ([]*models.Course, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, instructorID int64, req *dto.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, callerID, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, callerID, id int64) error
	Enroll(ctx context.Context, studentID, courseID int64) error
	ListEnrolled(ctx context.Context, userID int64) ([]*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// List returns the entire catalog
func (s *courseServiceImpl) List(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// Get returns a single course by id
func (s *courseServiceImpl) Get(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// Create creates a course owned by the authenticated instructor. The
// instructor reference and denormalized display name come from the
// caller's identity, never from the request body.
func (s *courseServiceImpl) Create(ctx context.Context, instructorID int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	instructor, err := s.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error resolving instructor: %w", err)
	}
	if instructor.Role != models.RoleInstructor {
		return nil, apperrors.NewForbiddenError("only instructors can create courses")
	}

	course := &models.Course{
		Title:          req.Title,
		Description:    req.Description,
		Content:        req.Content,
		Category:       req.Category,
		Level:          models.LevelBeginner,
		InstructorID:   instructor.ID,
		InstructorName: instructor.Name,
		Students:       []int64{},
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Level != "" {
		course.Level = models.CourseLevel(req.Level)
	}

	if _, err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().
		Int64("courseID", course.ID).
		Int64("instructorID", instructor.ID).
		Msg("Course created")

	return course, nil
}

// Update merges the provided fields into a course owned by the caller
func (s *courseServiceImpl) Update(ctx context.Context, callerID, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if course.InstructorID != callerID {
		return nil, apperrors.ErrNotCourseOwner
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Level != nil {
		fields["level"] = *req.Level
	}

	if err := s.courseRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete removes a course owned by the caller
func (s *courseServiceImpl) Delete(ctx context.Context, callerID, id int64) error {
	course, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if course.InstructorID != callerID {
		return apperrors.ErrNotCourseOwner
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	s.logger.Info().Int64("courseID", id).Int64("instructorID", callerID).Msg("Course deleted")

	return nil
}

// Enroll records the student in the course. The repository performs
// both sides of the relation in one transaction.
func (s *courseServiceImpl) Enroll(ctx context.Context, studentID, courseID int64) error {
	if courseID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	if err := s.courseRepo.Enroll(ctx, studentID, courseID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) || errors.Is(err, apperrors.ErrAlreadyEnrolled) {
			return err
		}
		return fmt.Errorf("error enrolling in course: %w", err)
	}

	s.logger.Info().Int64("userID", studentID).Int64("courseID", courseID).Msg("Student enrolled")

	return nil
}

// ListEnrolled resolves the caller's enrollments to full course records
func (s *courseServiceImpl) ListEnrolled(ctx context.Context, userID int64) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetEnrolledByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled courses: %w", err)
	}
	return courses, nil
}
