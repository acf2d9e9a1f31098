package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table.
// Students holds the ids of enrolled users, resolved from the
// enrollments relation.
type Course struct {
	ID             int64       `json:"id" db:"id" example:"1"`
	Title          string      `json:"title" db:"title" example:"Introduction to Go"`
	Description    string      `json:"description" db:"description" example:"Learn the basics of Go"`
	Content        string      `json:"content" db:"content"`
	Price          float64     `json:"price" db:"price" example:"0"` // Non-negative; 0 means free
	Category       string      `json:"category" db:"category" example:"programming"`
	Level          CourseLevel `json:"level" db:"level" example:"Beginner"`
	InstructorID   int64       `json:"instructor" db:"instructor_id" example:"2"`
	InstructorName string      `json:"instructorName" db:"instructor_name" example:"Jane Doe"`
	Students       []int64     `json:"students" db:"-"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
