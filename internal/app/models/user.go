package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Jane Doe"`                       // Display name
	Email     string    `json:"email" db:"email" example:"jane@example.com"`             // User's email address, unique across the store
	Password  string    `json:"-" db:"password"`                                         // Bcrypt password hash (never serialized)
	Role      RoleType  `json:"role" db:"role" example:"student"`                        // User's role (student or instructor)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
