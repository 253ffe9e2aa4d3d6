package dto

// CreateEnrollmentRequest represents an admin-created enrollment
type CreateEnrollmentRequest struct {
	StudentID int64  `json:"studentId" binding:"required,min=1"`
	SectionID int64  `json:"sectionId" binding:"required,min=1"`
	Grade     string `json:"grade,omitempty"`
}

// UpdateEnrollmentRequest represents enrollment update data
type UpdateEnrollmentRequest struct {
	StudentID int64  `json:"studentId" binding:"required,min=1"`
	SectionID int64  `json:"sectionId" binding:"required,min=1"`
	Grade     string `json:"grade,omitempty"`
}

// EnrollRequest represents a student self-enrollment in a course
type EnrollRequest struct {
	CourseID int64 `json:"courseId" binding:"required,min=1"`
}
