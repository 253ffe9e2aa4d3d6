package dto

import "github.com/umutk/registrar/internal/app/models"

// LoginRequest represents login credentials for one of the three roles
type LoginRequest struct {
	Username string          `json:"username" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Role     models.RoleType `json:"role" binding:"required,oneof=STUDENT PROFESSOR ADMIN"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse             `json:"token"`
	User  *models.AuthenticatedUser `json:"user"`
}
