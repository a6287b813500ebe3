package dto

import "time"

// RegisterRequest carries the fields of the registration form.
type RegisterRequest struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required,min=8"`
	Name           string `json:"name" binding:"required"`
	BusinessSector string `json:"businessSector" binding:"required,oneof=Services Products"`
}

// LoginRequest carries the login form credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login or token refresh.
type LoginResponse struct {
	UserID      string    `json:"userID"`
	Name        string    `json:"name"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
