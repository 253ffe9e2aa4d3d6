package dto

// CreateProfessorRequest represents professor creation data
type CreateProfessorRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email,omitempty" binding:"omitempty,email"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// UpdateProfessorRequest represents professor update data. A blank
// password means "keep the stored password".
type UpdateProfessorRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email,omitempty" binding:"omitempty,email"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password,omitempty"`
}
