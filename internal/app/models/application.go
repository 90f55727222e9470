package models

import "time"

// ApplicationStatus is the closed set of states an application moves through.
// The progression is effectively a small state machine: applied feeds the
// screening rounds, which end in selected or rejected.
type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "applied"
	StatusAptitude           ApplicationStatus = "aptitude"
	StatusTechnical          ApplicationStatus = "technical"
	StatusHR                 ApplicationStatus = "hr"
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	StatusSelected           ApplicationStatus = "selected"
	StatusRejected           ApplicationStatus = "rejected"
)

// statusLabels maps raw status codes to the human-readable labels used in
// student-facing notifications.
var statusLabels = map[ApplicationStatus]string{
	StatusApplied:            "Applied",
	StatusAptitude:           "Aptitude Round",
	StatusTechnical:          "Technical Interview",
	StatusHR:                 "HR Round",
	StatusInterviewScheduled: "Interview Scheduled",
	StatusSelected:           "SELECTED! Congratulations!",
	StatusRejected:           "Not Selected",
}

// ValidApplicationStatus reports whether s is a known status code.
func ValidApplicationStatus(s ApplicationStatus) bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human-readable label for the status. Unknown codes fall
// back to the raw string so a notification is never empty.
func (s ApplicationStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Terminal reports whether the status ends the application's progression.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusSelected || s == StatusRejected
}

// CanTransitionTo reports whether moving from s to next is permitted.
// Terminal statuses are frozen; everything else may move to any other known
// status, which mirrors how placement offices actually run rounds (a drive
// may skip aptitude, rerun technical, or schedule interviews at any point).
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !ValidApplicationStatus(next) {
		return false
	}
	if s.Terminal() {
		return false
	}
	return s != next
}

// Application defines the application model based on the 'applications'
// table. A (student, drive) pair is unique.
type Application struct {
	ID        int64             `json:"id" db:"id"`
	StudentID int64             `json:"studentId" db:"student_id"`
	DriveID   int64             `json:"driveId" db:"drive_id"`
	Status    ApplicationStatus `json:"status" db:"status" example:"applied"`
	AppliedAt time.Time         `json:"appliedAt" db:"applied_at"`

	// Relations (populated when needed)
	Student *User  `json:"student,omitempty"`
	Drive   *Drive `json:"drive,omitempty"`
}
