package models

// Course represents a course offered by a department
type Course struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Credits      int    `json:"credits"`
	Semester     string `json:"semester,omitempty"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	ProfessorID  *int64 `json:"professorId,omitempty"`

	// Resolved display names for read-side listings
	DepartmentName string `json:"departmentName,omitempty"`
	ProfessorName  string `json:"professorName,omitempty"`
}
