package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/learnhub/internal/app/models"
	"github.com/derya/learnhub/internal/app/models/dto"
	"github.com/derya/learnhub/internal/pkg/apperrors"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func setupCourseService(t *testing.T) (CourseService, *fakeUserRepo, *fakeCourseRepo, *models.User) {
	t.Helper()

	userRepo := newFakeUserRepo()
	courseRepo := newFakeCourseRepo()

	instructor := &models.User{
		Name:  "Ada Instructor",
		Email: "ada@example.com",
		Role:  models.RoleInstructor,
	}
	require.NoError(t, userRepo.Create(context.Background(), instructor))

	service := NewCourseService(courseRepo, userRepo, zerolog.Nop())
	return service, userRepo, courseRepo, instructor
}

func TestCreateCourse(t *testing.T) {
	service, _, _, instructor := setupCourseService(t)

	course, err := service.Create(context.Background(), instructor.ID, &dto.CreateCourseRequest{
		Title:       "Go Basics",
		Description: "An introduction to Go programming",
		Content:     "Syntax, types, goroutines",
		Category:    "Programming",
		Price:       floatPtr(29.99),
		Level:       "Intermediate",
	})
	require.NoError(t, err)

	assert.NotZero(t, course.ID)
	assert.Equal(t, instructor.ID, course.InstructorID)
	assert.Equal(t, "Ada Instructor", course.InstructorName)
	assert.Equal(t, models.LevelIntermediate, course.Level)
	assert.Equal(t, 29.99, course.Price)
	assert.Empty(t, course.Students)
}

func TestCreateCourseDefaults(t *testing.T) {
	service, _, _, instructor := setupCourseService(t)

	course, err := service.Create(context.Background(), instructor.ID, &dto.CreateCourseRequest{
		Title:       "Go Basics",
		Description: "An introduction to Go programming",
		Content:     "Syntax, types, goroutines",
		Category:    "Programming",
	})
	require.NoError(t, err)

	assert.Equal(t, models.LevelBeginner, course.Level)
	assert.Zero(t, course.Price)
}

func TestCreateCourseRequiresInstructorRole(t *testing.T) {
	service, userRepo, _, _ := setupCourseService(t)

	student := &models.User{
		Name:  "Sam Student",
		Email: "sam@example.com",
		Role:  models.RoleStudent,
	}
	require.NoError(t, userRepo.Create(context.Background(), student))

	_, err := service.Create(context.Background(), student.ID, &dto.CreateCourseRequest{
		Title:       "Unauthorized",
		Description: "Should not be created",
		Content:     "n/a",
		Category:    "Misc",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateCourseMergesFields(t *testing.T) {
	service, _, _, instructor := setupCourseService(t)

	course, err := service.Create(context.Background(), instructor.ID, &dto.CreateCourseRequest{
		Title:       "Go Basics",
		Description: "An introduction to Go programming",
		Content:     "Syntax, types, goroutines",
		Category:    "Programming",
		Price:       floatPtr(29.99),
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), instructor.ID, course.ID, &dto.UpdateCourseRequest{
		Title: strPtr("Go Basics, Second Edition"),
		Price: floatPtr(39.99),
	})
	require.NoError(t, err)

	assert.Equal(t, "Go Basics, Second Edition", updated.Title)
	assert.Equal(t, 39.99, updated.Price)
	// Untouched fields keep their values
	assert.Equal(t, "An introduction to Go programming", updated.Description)
	assert.Equal(t, "Programming", updated.Category)
}

func TestUpdateCourseOwnershipEnforced(t *testing.T) {
	service, userRepo, _, instructor := setupCourseService(t)

	other := &models.User{
		Name:  "Other Instructor",
		Email: "other@example.com",
		Role:  models.RoleInstructor,
	}
	require.NoError(t, userRepo.Create(context.Background(), other))

	course, err := service.Create(context.Background(), instructor.ID, &dto.CreateCourseRequest{
		Title:       "Go Basics",
		Description: "An introduction to Go programming",
		Content:     "Syntax, types, goroutines",
		Category:    "Programming",
	})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), other.ID, course.ID, &dto.UpdateCourseRequest{
		Title: strPtr("Hijacked"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotCourseOwner)

	err = service.Delete(context.Background(), other.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotCourseOwner)
}

func TestDeleteCourse(t *testing.T) {
	service, _, _, instructor := setupCourseService(t)

	course, err := service.Create(context.Background(), instructor.ID, &dto.CreateCourseRequest{
		Title:       "Go Basics",
		Description: "An introduction to Go programming",
		Content:     "Syntax, types, goroutines",
		Category:    "Programming",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), instructor.ID, course.ID))

	_, err = service.Get(context.Background(), course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestEnroll(t *testing.T) {
	service, userRepo, _, instructor := setupCourseService(t)

	student := &models.User{
		Name:  "Sam Student",
		Email: "sam@example.com",
		Role:  models.RoleStudent,
	}
	require.NoError(t, userRepo.Create(context.Background(), student))

	course, err := service.Create(context.Background(), instructor.ID, &dto.CreateCourseRequest{
		Title:       "Go Basics",
		Description: "An introduction to Go programming",
		Content:     "Syntax, types, goroutines",
		Category:    "Programming",
	})
	require.NoError(t, err)

	require.NoError(t, service.Enroll(context.Background(), student.ID, course.ID))

	// Enrolling twice is a conflict
	err = service.Enroll(context.Background(), student.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	// Unknown course
	err = service.Enroll(context.Background(), student.ID, 9999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	enrolled, err := service.ListEnrolled(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, course.ID, enrolled[0].ID)

	// The rejected second attempt must not duplicate the student id
	occurrences := 0
	for _, id := range enrolled[0].Students {
		if id == student.ID {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
}

func TestListCourses(t *testing.T) {
	service, userRepo, _, instructor := setupCourseService(t)

	titles := []string{"Go Basics", "SQL Deep Dive", "Distributed Systems"}
	var courseIDs []int64
	for _, title := range titles {
		course, err := service.Create(context.Background(), instructor.ID, &dto.CreateCourseRequest{
			Title:       title,
			Description: "Course about " + title,
			Content:     "n/a",
			Category:    "Programming",
		})
		require.NoError(t, err)
		courseIDs = append(courseIDs, course.ID)
	}

	// Two enrollments on the first course must not duplicate it in the list
	for _, email := range []string{"s1@example.com", "s2@example.com"} {
		student := &models.User{Name: "Student", Email: email, Role: models.RoleStudent}
		require.NoError(t, userRepo.Create(context.Background(), student))
		require.NoError(t, service.Enroll(context.Background(), student.ID, courseIDs[0]))
	}

	courses, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, len(titles))

	seen := map[int64]int{}
	for _, course := range courses {
		seen[course.ID]++
	}
	for _, id := range courseIDs {
		assert.Equal(t, 1, seen[id])
	}

	assert.Equal(t, courseIDs[0], courses[0].ID)
	assert.Len(t, courses[0].Students, 2)
}

func TestGetInvalidID(t *testing.T) {
	service, _, _, _ := setupCourseService(t)

	_, err := service.Get(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
