package models

import "time"

// InterviewSchedule defines the interview slot model based on the
// 'interview_schedules' table. A (drive, date, time slot) triple is unique,
// which is the actual guard against double-booking a slot.
type InterviewSchedule struct {
	ID            int64     `json:"id" db:"id"`
	DriveID       int64     `json:"driveId" db:"drive_id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	InterviewDate string    `json:"interviewDate" db:"interview_date" example:"2025-03-25"`
	TimeSlot      string    `json:"timeSlot" db:"time_slot" example:"10:00 AM"`
	Notes         string    `json:"notes" db:"notes"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// Relation (populated when needed)
	Student *User `json:"student,omitempty"`
}
