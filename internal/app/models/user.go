package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleTPO     RoleType = "TPO"
	RoleAlumni  RoleType = "ALUMNI"
)

// ValidRole reports whether the given role is one of the known roles.
func ValidRole(r RoleType) bool {
	switch r {
	case RoleStudent, RoleTPO, RoleAlumni:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Rahul Sharma"`                    // Full name
	Email     string    `json:"email" db:"email" example:"rahul@student.edu"`             // User's email address
	Password  string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	RoleType  RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`                // STUDENT, TPO or ALUMNI
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
