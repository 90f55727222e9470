package models

// Project is a single project entry on a student profile.
type Project struct {
	Name string `json:"name" example:"E-Commerce Site"`
	Desc string `json:"desc" example:"Built with Django and PostgreSQL"`
	URL  string `json:"url" example:"https://github.com/rahul/shop"`
}

// Certificate is a single certificate entry on a student profile.
type Certificate struct {
	Title  string `json:"title" example:"Python for Everybody"`
	Issuer string `json:"issuer" example:"Coursera"`
	Year   string `json:"year" example:"2024"`
}

// StudentProfile defines the student profile model based on the
// 'student_profiles' table. Skills, Projects and Certificates are stored
// as jsonb columns; the repository parses them and degrades malformed
// encodings to empty slices.
type StudentProfile struct {
	ID           int64         `json:"id" db:"id"`
	UserID       int64         `json:"userId" db:"user_id"`
	CGPA         float64       `json:"cgpa" db:"cgpa" example:"8.5"`
	Backlogs     int           `json:"backlogs" db:"backlogs" example:"0"`
	Branch       string        `json:"branch" db:"branch" example:"CS"`
	Skills       []string      `json:"skills"`
	Projects     []Project     `json:"projects"`
	Certificates []Certificate `json:"certificates"`
	Phone        string        `json:"phone" db:"phone"`
	DOB          string        `json:"dob" db:"dob"`
	LinkedIn     string        `json:"linkedin" db:"linkedin"`
	PhotoURL     string        `json:"photoUrl" db:"photo_url"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}
