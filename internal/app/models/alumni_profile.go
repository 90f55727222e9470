package models

import "time"

// AlumniProfile defines the alumni profile model based on the 'alumni_profiles' table
type AlumniProfile struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	Company      string    `json:"company" db:"company" example:"Google"`
	Role         string    `json:"role" db:"role" example:"Senior Software Engineer"`
	BatchYear    string    `json:"batchYear" db:"batch_year" example:"2021"`
	Branch       string    `json:"branch" db:"branch" example:"CS"`
	LinkedIn     string    `json:"linkedin" db:"linkedin"`
	Bio          string    `json:"bio" db:"bio"`
	OpenToMentor bool      `json:"openToMentor" db:"open_to_mentor"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}
