package dto

import "github.com/adikale/placementhub/internal/app/models"

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required" example:"Rahul Sharma"`
	Email    string          `json:"email" binding:"required,email" example:"rahul@student.edu"`
	Password string          `json:"password" binding:"required,min=6" example:"pass123"`
	RoleType models.RoleType `json:"roleType" binding:"required" example:"STUDENT"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"rahul@student.edu"`
	Password string `json:"password" binding:"required" example:"pass123"`
}

// RefreshTokenRequest carries an opaque refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse is the token pair returned by login and refresh.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
}

// LoginResponse bundles the authenticated user with the token pair.
type LoginResponse struct {
	UserID   int64           `json:"userId" example:"2"`
	Name     string          `json:"name" example:"Rahul Sharma"`
	RoleType models.RoleType `json:"roleType" example:"STUDENT"`
	Tokens   TokenResponse   `json:"tokens"`
}

// RegisterResponse is returned after successful registration.
type RegisterResponse struct {
	UserID   int64           `json:"userId" example:"2"`
	RoleType models.RoleType `json:"roleType" example:"STUDENT"`
}
