package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name         string `json:"name" binding:"required"`
	Credits      int    `json:"credits" binding:"omitempty,min=0"`
	Semester     string `json:"semester,omitempty"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	ProfessorID  *int64 `json:"professorId,omitempty"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name         string `json:"name" binding:"required"`
	Credits      int    `json:"credits" binding:"omitempty,min=0"`
	Semester     string `json:"semester,omitempty"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	ProfessorID  *int64 `json:"professorId,omitempty"`
}

// AssignProfessorRequest sets a course's professor
type AssignProfessorRequest struct {
	ProfessorID int64 `json:"professorId" binding:"required,min=1"`
}
