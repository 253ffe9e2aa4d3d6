package models

// Admin defines the administrator model based on the 'admins' table
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
