package services

import (
	"context"
	"fmt"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/repositories"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/logger"
)

// ApplicationService handles drive applications, status rounds and
// interview scheduling
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	driveRepo       *repositories.DriveRepository
	interviewRepo   *repositories.InterviewRepository
	notifications   *NotificationService
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	driveRepo *repositories.DriveRepository,
	interviewRepo *repositories.InterviewRepository,
	notifications *NotificationService,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		driveRepo:       driveRepo,
		interviewRepo:   interviewRepo,
		notifications:   notifications,
	}
}

// Apply creates an application for a student. Completed drives reject new
// applications, and a student can apply to a drive once.
func (s *ApplicationService) Apply(ctx context.Context, studentID, driveID int64) (*models.Application, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}
	if drive.Status == models.DriveCompleted {
		return nil, apperrors.ErrDriveCompleted
	}

	application := &models.Application{
		StudentID: studentID,
		DriveID:   driveID,
		Status:    models.StatusApplied,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", studentID).Int64("driveID", driveID).Msg("Application submitted")
	return application, nil
}

// MyApplications lists a student's applications with their drives
func (s *ApplicationService) MyApplications(ctx context.Context, studentID int64) ([]*models.Application, error) {
	return s.applicationRepo.GetByStudent(ctx, studentID)
}

// UpdateStatus moves an application to another round and notifies the
// student with the round's human-readable label. Terminal statuses are
// frozen; unknown statuses are rejected outright.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID int64, next models.ApplicationStatus) (*models.Application, error) {
	if !models.ValidApplicationStatus(next) {
		return nil, apperrors.ErrInvalidStatus
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if !application.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, next); err != nil {
		return nil, err
	}
	application.Status = next

	drive, err := s.driveRepo.GetByID(ctx, application.DriveID)
	if err != nil {
		logger.Warn().Err(err).Int64("driveID", application.DriveID).Msg("Status updated but drive lookup failed, skipping notification")
		return application, nil
	}

	message := fmt.Sprintf("[%s] Status: %s", drive.Company, next.Label())
	if err := s.notifications.Notify(ctx, application.StudentID, message); err != nil {
		logger.Error().Err(err).Int64("studentID", application.StudentID).Msg("Failed to notify status change")
	}

	return application, nil
}

// ScheduleInterview books a student into an interview slot for a drive,
// notifies them and moves their application to interview_scheduled. The
// slot is unique per (drive, date, time); a second booking conflicts.
func (s *ApplicationService) ScheduleInterview(ctx context.Context, driveID int64, req *dto.ScheduleInterviewRequest) (*models.InterviewSchedule, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	schedule := &models.InterviewSchedule{
		DriveID:       driveID,
		StudentID:     req.StudentID,
		InterviewDate: req.InterviewDate,
		TimeSlot:      req.TimeSlot,
		Notes:         req.Notes,
	}
	if err := s.interviewRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Interview scheduled for %s on %s at %s", drive.Company, req.InterviewDate, req.TimeSlot)
	if err := s.notifications.Notify(ctx, req.StudentID, message); err != nil {
		logger.Error().Err(err).Int64("studentID", req.StudentID).Msg("Failed to notify interview schedule")
	}

	// Move the student's application along; a student scheduled without an
	// application simply has nothing to update.
	applications, err := s.applicationRepo.GetByDrive(ctx, driveID)
	if err != nil {
		logger.Warn().Err(err).Int64("driveID", driveID).Msg("Could not load applications after scheduling")
		return schedule, nil
	}
	for _, application := range applications {
		if application.StudentID != req.StudentID {
			continue
		}
		if !application.Status.CanTransitionTo(models.StatusInterviewScheduled) {
			break
		}
		if err := s.applicationRepo.UpdateStatus(ctx, application.ID, models.StatusInterviewScheduled); err != nil {
			logger.Warn().Err(err).Int64("applicationID", application.ID).Msg("Could not mark application interview_scheduled")
		}
		break
	}

	return schedule, nil
}

// MySchedules lists a student's interview schedules
func (s *ApplicationService) MySchedules(ctx context.Context, studentID int64) ([]*models.InterviewSchedule, error) {
	return s.interviewRepo.GetByStudent(ctx, studentID)
}
