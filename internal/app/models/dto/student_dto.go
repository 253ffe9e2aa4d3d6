package dto

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UpdateStudentRequest represents student update data. A blank password
// means "keep the stored password".
type UpdateStudentRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password,omitempty"`
}
