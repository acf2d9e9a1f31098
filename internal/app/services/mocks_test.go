package services

import (
	"context"

	"github.com/derya/learnhub/internal/app/models"
	"github.com/derya/learnhub/internal/pkg/apperrors"
)

// fakeUserRepo is an in-memory IUserRepository for service tests
type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// fakeCourseRepo is an in-memory ICourseRepository for service tests
type fakeCourseRepo struct {
	courses     map[int64]*models.Course
	enrollments map[int64]map[int64]bool // courseID -> userID set
	nextID      int64
	getAllErr   error
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		courses:     map[int64]*models.Course{},
		enrollments: map[int64]map[int64]bool{},
	}
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) (int64, error) {
	f.nextID++
	course.ID = f.nextID
	if course.Students == nil {
		course.Students = []int64{}
	}
	f.courses[course.ID] = course
	return course.ID, nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	courses := make([]*models.Course, 0, len(f.courses))
	for id := int64(1); id <= f.nextID; id++ {
		if course, ok := f.courses[id]; ok {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

func (f *fakeCourseRepo) Update(_ context.Context, id int64, fields map[string]interface{}) error {
	course, ok := f.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			course.Title = value.(string)
		case "description":
			course.Description = value.(string)
		case "content":
			course.Content = value.(string)
		case "price":
			course.Price = value.(float64)
		case "category":
			course.Category = value.(string)
		case "level":
			course.Level = models.CourseLevel(value.(string))
		}
	}
	return nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	delete(f.enrollments, id)
	return nil
}

func (f *fakeCourseRepo) Enroll(_ context.Context, userID, courseID int64) error {
	if _, ok := f.courses[courseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	if f.enrollments[courseID] == nil {
		f.enrollments[courseID] = map[int64]bool{}
	}
	if f.enrollments[courseID][userID] {
		return apperrors.ErrAlreadyEnrolled
	}
	f.enrollments[courseID][userID] = true
	f.courses[courseID].Students = append(f.courses[courseID].Students, userID)
	return nil
}

func (f *fakeCourseRepo) GetEnrolledByUser(_ context.Context, userID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for id := int64(1); id <= f.nextID; id++ {
		if f.enrollments[id][userID] {
			courses = append(courses, f.courses[id])
		}
	}
	return courses, nil
}

// fakeCompleter returns a canned reply or error
type fakeCompleter struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, _, userPrompt string) (string, error) {
	f.lastPrompt = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
