package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location,omitempty"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location,omitempty"`
}
