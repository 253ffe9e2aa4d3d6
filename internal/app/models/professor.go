package models

// Professor defines the professor model based on the 'professors' table
type Professor struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	Username     string `json:"username"`
	Password     string `json:"-"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
