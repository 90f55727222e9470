package models

import "time"

// ReferralPost defines an alumni-authored job opening based on the
// 'referral_posts' table.
type ReferralPost struct {
	ID          int64     `json:"id" db:"id"`
	AlumniID    int64     `json:"alumniId" db:"alumni_id"`
	Company     string    `json:"company" db:"company" example:"Google"`
	Role        string    `json:"role" db:"role" example:"SWE Intern"`
	Description string    `json:"description" db:"description"`
	JDLink      string    `json:"jdLink" db:"jd_link"`
	Deadline    string    `json:"deadline" db:"deadline" example:"2025-04-30"`
	PackageLPA  float64   `json:"packageLpa" db:"package_lpa"`
	Location    string    `json:"location" db:"location"`
	JobType     string    `json:"jobType" db:"job_type" example:"Full-Time"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Alumni        *User          `json:"alumni,omitempty"`
	AlumniProfile *AlumniProfile `json:"alumniProfile,omitempty"`
}

// ReferralRequestStatus values for referral requests.
type ReferralRequestStatus string

const (
	ReferralRequested ReferralRequestStatus = "requested"
	ReferralApproved  ReferralRequestStatus = "approved"
	ReferralReferred  ReferralRequestStatus = "referred"
	ReferralRejected  ReferralRequestStatus = "rejected"
)

// ReferralRequest defines the model based on the 'referral_requests' table.
// A (student, post) pair is unique.
type ReferralRequest struct {
	ID         int64                 `json:"id" db:"id"`
	StudentID  int64                 `json:"studentId" db:"student_id"`
	PostID     int64                 `json:"postId" db:"post_id"`
	AlumniID   int64                 `json:"alumniId" db:"alumni_id"`
	Message    string                `json:"message" db:"message"`
	Status     ReferralRequestStatus `json:"status" db:"status" example:"requested"`
	AlumniNote string                `json:"alumniNote" db:"alumni_note"`
	CreatedAt  time.Time             `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Student        *User           `json:"student,omitempty"`
	StudentProfile *StudentProfile `json:"studentProfile,omitempty"`
	Post           *ReferralPost   `json:"post,omitempty"`
}
