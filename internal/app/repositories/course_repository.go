package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/learnhub/internal/app/models"
	"github.com/derya/learnhub/internal/db"
	"github.com/derya/learnhub/internal/pkg/apperrors"
	"github.com/derya/learnhub/internal/pkg/dberrors"
	"github.com/derya/learnhub/internal/pkg/logger"
)

// courseColumns are the course fields selected on every read, with the
// enrolled student ids aggregated from the enrollments relation.
var courseColumns = []string{
	"c.id", "c.title", "c.description", "c.content", "c.price", "c.category",
	"c.level", "c.instructor_id", "c.instructor_name", "c.created_at",
	"COALESCE(ARRAY_AGG(e.user_id) FILTER (WHERE e.user_id IS NOT NULL), '{}') AS students",
}

// CourseRepository handles course and enrollment database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.Title, &course.Description, &course.Content,
		&course.Price, &course.Category, &course.Level,
		&course.InstructorID, &course.InstructorName, &course.CreatedAt,
		&course.Students,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// Create inserts a new course and returns its generated id
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "description", "content", "price", "category", "level", "instructor_id", "instructor_name").
		Values(course.Title, course.Description, course.Content, course.Price,
			course.Category, course.Level, course.InstructorID, course.InstructorName).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return course.ID, nil
}

// GetByID retrieves a course by id with its enrolled student ids
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses c").
		LeftJoin("enrollments e ON e.course_id = c.id").
		Where(squirrel.Eq{"c.id": id}).
		GroupBy("c.id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetAll retrieves the entire catalog in insertion order
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses c").
		LeftJoin("enrollments e ON e.course_id = c.id").
		GroupBy("c.id").
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during get all")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Update overwrites the provided fields of a course. Absent keys keep
// their stored values.
func (r *CourseRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("courses").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course; enrollments cascade
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Enroll records the student/course relation in a single transaction.
// The unique constraint on (user_id, course_id) makes a duplicate
// enrollment fail atomically, so concurrent calls cannot both succeed.
func (r *CourseRepository) Enroll(ctx context.Context, userID, courseID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM courses WHERE id = $1)", courseID).Scan(&exists)
		if err != nil {
			logger.Error().Err(err).Int64("courseID", courseID).Msg("Error checking course existence")
			return fmt.Errorf("error checking course existence: %w", err)
		}
		if !exists {
			return apperrors.ErrCourseNotFound
		}

		sql, args, err := r.sb.Insert("enrollments").
			Columns("user_id", "course_id").
			Values(userID, courseID).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build enroll query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsDuplicateKeyError(err) {
				return apperrors.ErrAlreadyEnrolled
			}
			// Course existence was checked above, so a dangling
			// reference can only be the user row.
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrUserNotFound
			}
			logger.Error().Err(err).
				Int64("userID", userID).
				Int64("courseID", courseID).
				Msg("Error executing enroll query")
			return fmt.Errorf("error enrolling in course: %w", err)
		}

		return nil
	})
}

// GetEnrolledByUser resolves a student's enrollments to full course records
func (r *CourseRepository) GetEnrolledByUser(ctx context.Context, userID int64) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses c").
		Join("enrollments my ON my.course_id = c.id").
		LeftJoin("enrollments e ON e.course_id = c.id").
		Where(squirrel.Eq{"my.user_id": userID}).
		GroupBy("c.id", "my.created_at").
		OrderBy("my.created_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enrolled courses SQL")
		return nil, fmt.Errorf("failed to build enrolled courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing enrolled courses query")
		return nil, fmt.Errorf("error querying enrolled courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning enrolled course row")
			return nil, fmt.Errorf("error scanning enrolled course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating enrolled course rows")
		return nil, fmt.Errorf("error iterating enrolled course rows: %w", err)
	}

	return courses, nil
}
