package dto

import "github.com/adikale/placementhub/internal/app/models"

// CreateDriveRequest is the payload for the placement office creating a
// drive. Numeric thresholds arrive as strings and are coerced (malformed
// input becomes 0/0.0).
type CreateDriveRequest struct {
	Company     string   `json:"company" binding:"required" example:"TCS"`
	Role        string   `json:"role" binding:"required" example:"Software Engineer"`
	MinCGPA     string   `json:"minCgpa" example:"7.0"`
	MaxBacklogs string   `json:"maxBacklogs" example:"0"`
	Branches    []string `json:"branches" example:"CS,MCA,IT"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline" example:"2025-03-30"`
	PackageLPA  string   `json:"packageLpa" example:"7.5"`
	Location    string   `json:"location"`
	JobType     string   `json:"jobType" example:"Full-Time"`
}

// CreateDriveResponse reports the created drive plus how many eligible
// students were notified.
type CreateDriveResponse struct {
	Drive            *models.Drive `json:"drive"`
	EligibleNotified int           `json:"eligibleNotified" example:"12"`
}

// EligibleCountRequest is the preview payload checked before a drive is
// persisted. An omitted backlog ceiling means the drive form's default of
// 10, not zero.
type EligibleCountRequest struct {
	MinCGPA     float64  `json:"min_cgpa" example:"7.0"`
	MaxBacklogs *int     `json:"max_backlogs" example:"0"`
	Branches    []string `json:"branches" example:"CS,MCA"`
}

// EligibleCountResponse is the preview result.
type EligibleCountResponse struct {
	Count int `json:"count" example:"12"`
}

// DriveListResponse is one page of the drive listing.
type DriveListResponse struct {
	Drives     []*models.Drive `json:"drives"`
	Pagination PaginationInfo  `json:"pagination"`
}

// DriveDetailResponse is the placement-office view of a single drive.
type DriveDetailResponse struct {
	Drive            *models.Drive               `json:"drive"`
	Eligible         []*models.StudentProfile    `json:"eligible"`
	BranchBreakdown  map[string]int              `json:"branchBreakdown"`
	Applications     []*models.Application       `json:"applications"`
	Schedules        []*models.InterviewSchedule `json:"schedules"`
	SelectedStudents []*models.StudentProfile    `json:"selectedStudents"`
}

// BroadcastRequest carries a free-text message for all applicants of a drive.
type BroadcastRequest struct {
	Message string `json:"message" binding:"required"`
}

// ScheduleInterviewRequest books a student into an interview slot.
type ScheduleInterviewRequest struct {
	StudentID     int64  `json:"studentId" binding:"required" example:"2"`
	InterviewDate string `json:"interviewDate" binding:"required" example:"2025-03-25"`
	TimeSlot      string `json:"timeSlot" binding:"required" example:"10:00 AM"`
	Notes         string `json:"notes"`
}

// UpdateApplicationStatusRequest moves an application through the rounds.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required" example:"technical"`
}
