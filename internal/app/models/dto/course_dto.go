package dto

// CreateCourseRequest represents the payload for creating a course.
// The owning instructor is taken from the authenticated identity,
// never from the body.
type CreateCourseRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Category    string   `json:"category" binding:"required"`
	Level       string   `json:"level,omitempty" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
}

// UpdateCourseRequest represents a partial course update. Only the
// provided fields overwrite stored values; absent fields keep their
// prior values.
type UpdateCourseRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Content     *string  `json:"content,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty"`
	Level       *string  `json:"level,omitempty" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
}
