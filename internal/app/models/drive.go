package models

import "time"

// DriveStatus defines the lifecycle state of a recruitment drive.
// The only transition is active -> completed; completed is terminal.
type DriveStatus string

const (
	DriveActive    DriveStatus = "active"
	DriveCompleted DriveStatus = "completed"
)

// Drive defines the recruitment drive model based on the 'drives' table.
// AllowedBranches is stored as a jsonb array; an empty array means the
// drive accepts every branch, not no branch.
type Drive struct {
	ID              int64       `json:"id" db:"id"`
	Company         string      `json:"company" db:"company" example:"TCS"`
	Role            string      `json:"role" db:"role" example:"Software Engineer"`
	MinCGPA         float64     `json:"minCgpa" db:"min_cgpa" example:"7.0"`
	MaxBacklogs     int         `json:"maxBacklogs" db:"max_backlogs" example:"0"`
	AllowedBranches []string    `json:"allowedBranches"`
	Description     string      `json:"description" db:"description"`
	Deadline        string      `json:"deadline" db:"deadline" example:"2025-03-30"`
	Status          DriveStatus `json:"status" db:"status" example:"active"`
	PackageLPA      float64     `json:"packageLpa" db:"package_lpa" example:"7.5"`
	Location        string      `json:"location" db:"location" example:"Bangalore"`
	JobType         string      `json:"jobType" db:"job_type" example:"Full-Time"`
	CreatedBy       int64       `json:"createdBy" db:"created_by"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}
