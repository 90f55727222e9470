package dto

import "github.com/adikale/placementhub/internal/app/models"

// UpdateStudentProfileRequest is the payload for a student editing their own
// profile. CGPA and Backlogs arrive as strings because the form-style client
// sends free text; malformed numerics are coerced to zero, not rejected.
type UpdateStudentProfileRequest struct {
	CGPA         string               `json:"cgpa" example:"8.5"`
	Backlogs     string               `json:"backlogs" example:"0"`
	Branch       string               `json:"branch" example:"CS"`
	Skills       []string             `json:"skills"`
	Projects     []models.Project     `json:"projects"`
	Certificates []models.Certificate `json:"certificates"`
	Phone        string               `json:"phone"`
	DOB          string               `json:"dob"`
	LinkedIn     string               `json:"linkedin"`
	PhotoURL     string               `json:"photoUrl"`
}

// UpdateAlumniProfileRequest is the payload for an alumnus editing their
// profile.
type UpdateAlumniProfileRequest struct {
	Company      string `json:"company" binding:"required"`
	Role         string `json:"role" binding:"required"`
	BatchYear    string `json:"batchYear"`
	Branch       string `json:"branch"`
	LinkedIn     string `json:"linkedin"`
	Bio          string `json:"bio"`
	OpenToMentor bool   `json:"openToMentor"`
}

// StudentDashboardResponse aggregates everything the student landing view
// needs in one round trip.
type StudentDashboardResponse struct {
	Profile        *models.StudentProfile `json:"profile"`
	Applications   []*models.Application  `json:"applications"`
	EligibleDrives []*models.Drive        `json:"eligibleDrives"`
	Notifications  []*models.Notification `json:"notifications"`
}

// AlumniDashboardResponse aggregates the alumni landing view.
type AlumniDashboardResponse struct {
	Profile            *models.AlumniProfile      `json:"profile"`
	ReferralPosts      []*models.ReferralPost     `json:"referralPosts"`
	MentorshipSlots    []*models.MentorshipSlot   `json:"mentorshipSlots"`
	MentorshipRequests []*models.MentorshipRequest `json:"mentorshipRequests"`
	ReferralRequests   []*models.ReferralRequest  `json:"referralRequests"`
	Notifications      []*models.Notification     `json:"notifications"`
}
