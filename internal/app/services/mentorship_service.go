package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/repositories"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/logger"
)

const defaultMentorshipMessage = "Hi! I would love to connect and get your guidance."

// MentorshipService handles mentorship requests and bookable slots
type MentorshipService struct {
	mentorshipRepo *repositories.MentorshipRepository
	userRepo       *repositories.UserRepository
	notifications  *NotificationService
}

// NewMentorshipService creates a new mentorship service
func NewMentorshipService(
	mentorshipRepo *repositories.MentorshipRepository,
	userRepo *repositories.UserRepository,
	notifications *NotificationService,
) *MentorshipService {
	return &MentorshipService{
		mentorshipRepo: mentorshipRepo,
		userRepo:       userRepo,
		notifications:  notifications,
	}
}

// Request sends a mentorship request from a student to an alumnus. A second
// request to the same alumnus is a conflict regardless of the first one's
// outcome.
func (s *MentorshipService) Request(ctx context.Context, studentID, alumniID int64, message string) (*models.MentorshipRequest, error) {
	alumni, err := s.userRepo.GetByID(ctx, alumniID)
	if err != nil {
		return nil, err
	}
	if alumni.RoleType != models.RoleAlumni {
		return nil, apperrors.NewBadRequestError("mentorship can only be requested from alumni")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		message = defaultMentorshipMessage
	}

	request := &models.MentorshipRequest{
		StudentID: studentID,
		AlumniID:  alumniID,
		Message:   message,
		Status:    models.MentorshipPending,
	}
	if err := s.mentorshipRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	student, err := s.userRepo.GetByID(ctx, studentID)
	if err == nil {
		notice := fmt.Sprintf("%s sent you a mentorship request!", student.Name)
		if err := s.notifications.Notify(ctx, alumniID, notice); err != nil {
			logger.Error().Err(err).Int64("alumniID", alumniID).Msg("Failed to notify mentorship request")
		}
	}

	return request, nil
}

// Respond lets an alumnus accept or reject a request addressed to them.
// The student is told either way.
func (s *MentorshipService) Respond(ctx context.Context, alumniID, requestID int64, action models.MentorshipRequestStatus) error {
	if action != models.MentorshipAccepted && action != models.MentorshipRejected {
		return apperrors.NewBadRequestError("action must be accepted or rejected")
	}

	request, err := s.mentorshipRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.AlumniID != alumniID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.mentorshipRepo.UpdateRequestStatus(ctx, requestID, action); err != nil {
		return err
	}

	alumni, err := s.userRepo.GetByID(ctx, alumniID)
	if err != nil {
		logger.Warn().Err(err).Int64("alumniID", alumniID).Msg("Responded but alumnus lookup failed, skipping notification")
		return nil
	}

	message := fmt.Sprintf("Your mentorship request to %s was not accepted this time.", alumni.Name)
	if action == models.MentorshipAccepted {
		message = fmt.Sprintf("%s accepted your mentorship request!", alumni.Name)
	}
	if err := s.notifications.Notify(ctx, request.StudentID, message); err != nil {
		logger.Error().Err(err).Int64("studentID", request.StudentID).Msg("Failed to notify mentorship response")
	}

	return nil
}

// AddSlot publishes a new bookable slot for an alumnus
func (s *MentorshipService) AddSlot(ctx context.Context, alumniID int64, topic, slotDate, slotTime, meetLink string) (*models.MentorshipSlot, error) {
	slot := &models.MentorshipSlot{
		AlumniID: alumniID,
		Topic:    topic,
		SlotDate: slotDate,
		SlotTime: slotTime,
		MeetLink: meetLink,
		Status:   models.SlotAvailable,
	}
	if err := s.mentorshipRepo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}

// BookSlot claims an available slot for a student. Exactly one of two
// concurrent bookings wins; the loser gets a conflict. Both the mentor and
// the student are notified on success.
func (s *MentorshipService) BookSlot(ctx context.Context, studentID, slotID int64) error {
	slot, err := s.mentorshipRepo.GetSlotByID(ctx, slotID)
	if err != nil {
		return err
	}

	if err := s.mentorshipRepo.BookSlot(ctx, slotID, studentID); err != nil {
		return err
	}

	student, err := s.userRepo.GetByID(ctx, studentID)
	if err == nil {
		notice := fmt.Sprintf("%s booked your '%s' slot on %s at %s!", student.Name, slot.Topic, slot.SlotDate, slot.SlotTime)
		if err := s.notifications.Notify(ctx, slot.AlumniID, notice); err != nil {
			logger.Error().Err(err).Int64("alumniID", slot.AlumniID).Msg("Failed to notify mentor of booking")
		}
	}

	confirmation := fmt.Sprintf("Slot booked: %s on %s at %s. Meeting link shared by mentor.", slot.Topic, slot.SlotDate, slot.SlotTime)
	if err := s.notifications.Notify(ctx, studentID, confirmation); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to confirm booking to student")
	}

	return nil
}

// RequestsByStudent lists a student's sent mentorship requests
func (s *MentorshipService) RequestsByStudent(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error) {
	return s.mentorshipRepo.GetRequestsByStudent(ctx, studentID)
}
