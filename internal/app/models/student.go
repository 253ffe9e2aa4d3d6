package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Username    string `json:"username"`
	Password    string `json:"-"`
}
