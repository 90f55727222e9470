package models

import "time"

// MentorshipRequestStatus values for mentorship requests.
type MentorshipRequestStatus string

const (
	MentorshipPending  MentorshipRequestStatus = "pending"
	MentorshipAccepted MentorshipRequestStatus = "accepted"
	MentorshipRejected MentorshipRequestStatus = "rejected"
)

// MentorshipRequest defines the model based on the 'mentorship_requests'
// table. A (student, alumni) pair is unique.
type MentorshipRequest struct {
	ID          int64                   `json:"id" db:"id"`
	StudentID   int64                   `json:"studentId" db:"student_id"`
	AlumniID    int64                   `json:"alumniId" db:"alumni_id"`
	Message     string                  `json:"message" db:"message"`
	Status      MentorshipRequestStatus `json:"status" db:"status" example:"pending"`
	RequestedAt time.Time               `json:"requestedAt" db:"requested_at"`

	// Relations (populated when needed)
	Student        *User           `json:"student,omitempty"`
	StudentProfile *StudentProfile `json:"studentProfile,omitempty"`
}

// SlotStatus values for mentorship slots.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// MentorshipSlot defines the bookable slot model based on the
// 'mentorship_slots' table. Booking is a conditional update on
// status='available'; the losing racer sees no row updated.
type MentorshipSlot struct {
	ID        int64      `json:"id" db:"id"`
	AlumniID  int64      `json:"alumniId" db:"alumni_id"`
	Topic     string     `json:"topic" db:"topic" example:"Mock Interview (DSA)"`
	SlotDate  string     `json:"slotDate" db:"slot_date" example:"2025-03-25"`
	SlotTime  string     `json:"slotTime" db:"slot_time" example:"10:00 AM"`
	MeetLink  string     `json:"meetLink" db:"meet_link"`
	Status    SlotStatus `json:"status" db:"status" example:"available"`
	BookedBy  *int64     `json:"bookedBy,omitempty" db:"booked_by"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Alumni        *User          `json:"alumni,omitempty"`
	AlumniProfile *AlumniProfile `json:"alumniProfile,omitempty"`
	BookedStudent *User          `json:"bookedStudent,omitempty"`
}
