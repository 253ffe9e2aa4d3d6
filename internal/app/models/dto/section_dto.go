package dto

// CreateSectionRequest represents section creation data
type CreateSectionRequest struct {
	CourseID int64  `json:"courseId" binding:"required,min=1"`
	Room     string `json:"room,omitempty"`
	TimeSlot string `json:"timeSlot,omitempty"`
}

// UpdateSectionRequest represents section update data
type UpdateSectionRequest struct {
	CourseID int64  `json:"courseId" binding:"required,min=1"`
	Room     string `json:"room,omitempty"`
	TimeSlot string `json:"timeSlot,omitempty"`
}
