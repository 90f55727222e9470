package dto

import "github.com/adikale/placementhub/internal/app/models"

// CreateReferralPostRequest is the payload for an alumnus publishing a
// referral opening.
type CreateReferralPostRequest struct {
	Company     string `json:"company" binding:"required" example:"Google"`
	Role        string `json:"role" binding:"required" example:"SWE Intern"`
	Description string `json:"description"`
	JDLink      string `json:"jdLink"`
	Deadline    string `json:"deadline" example:"2025-04-30"`
	PackageLPA  string `json:"packageLpa" example:"12"`
	Location    string `json:"location"`
	JobType     string `json:"jobType" example:"Full-Time"`
}

// CreateSlotRequest is the payload for an alumnus offering a mentorship slot.
type CreateSlotRequest struct {
	Topic    string `json:"topic" binding:"required" example:"Mock Interview (DSA)"`
	SlotDate string `json:"slotDate" binding:"required" example:"2025-03-25"`
	SlotTime string `json:"slotTime" binding:"required" example:"10:00 AM"`
	MeetLink string `json:"meetLink"`
}

// MentorshipRequestRequest is the payload for a student requesting
// mentorship from an alumnus.
type MentorshipRequestRequest struct {
	Message string `json:"message" example:"Hi! I would love to connect and get your guidance."`
}

// RespondMentorshipRequest is the alumnus's accept/reject decision.
type RespondMentorshipRequest struct {
	Action models.MentorshipRequestStatus `json:"action" binding:"required,oneof=accepted rejected" example:"accepted"`
}

// ReferralRequestRequest is the payload for a student asking for a referral.
type ReferralRequestRequest struct {
	Message string `json:"message"`
}

// RespondReferralRequest is the alumnus's decision on a referral request.
type RespondReferralRequest struct {
	Action models.ReferralRequestStatus `json:"action" binding:"required,oneof=approved referred rejected" example:"approved"`
	Note   string                       `json:"note"`
}

// ConnectBoardResponse is the shared alumni-connect view: open referral
// posts, bookable slots and the alumni directory. RequestStatuses maps a
// referral post ID to the requesting student's own request status.
type ConnectBoardResponse struct {
	ReferralPosts   []*models.ReferralPost                 `json:"referralPosts"`
	AvailableSlots  []*models.MentorshipSlot               `json:"availableSlots"`
	Alumni          []*models.AlumniProfile                `json:"alumni"`
	RequestStatuses map[int64]models.ReferralRequestStatus `json:"requestStatuses,omitempty"`
}
