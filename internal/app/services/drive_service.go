package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/repositories"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/helpers"
	"github.com/adikale/placementhub/internal/pkg/logger"
)

// DriveService handles recruitment drive lifecycle and the notifications
// each transition fans out
type DriveService struct {
	driveRepo       *repositories.DriveRepository
	applicationRepo *repositories.ApplicationRepository
	interviewRepo   *repositories.InterviewRepository
	profileRepo     *repositories.StudentProfileRepository
	eligibility     *EligibilityService
	notifications   *NotificationService
}

// NewDriveService creates a new drive service
func NewDriveService(
	driveRepo *repositories.DriveRepository,
	applicationRepo *repositories.ApplicationRepository,
	interviewRepo *repositories.InterviewRepository,
	profileRepo *repositories.StudentProfileRepository,
	eligibility *EligibilityService,
	notifications *NotificationService,
) *DriveService {
	return &DriveService{
		driveRepo:       driveRepo,
		applicationRepo: applicationRepo,
		interviewRepo:   interviewRepo,
		profileRepo:     profileRepo,
		eligibility:     eligibility,
		notifications:   notifications,
	}
}

// Create persists a new active drive and notifies every eligible student.
// Numeric thresholds arrive as free text and coerce to zero when malformed.
func (s *DriveService) Create(ctx context.Context, tpoID int64, req *dto.CreateDriveRequest) (*dto.CreateDriveResponse, error) {
	branches := req.Branches
	if branches == nil {
		branches = []string{}
	}

	drive := &models.Drive{
		Company:         strings.TrimSpace(req.Company),
		Role:            strings.TrimSpace(req.Role),
		MinCGPA:         helpers.ParseFloatOrZero(req.MinCGPA),
		MaxBacklogs:     helpers.ParseIntOrZero(req.MaxBacklogs),
		AllowedBranches: branches,
		Description:     req.Description,
		Deadline:        req.Deadline,
		Status:          models.DriveActive,
		PackageLPA:      helpers.ParseFloatOrZero(req.PackageLPA),
		Location:        req.Location,
		JobType:         req.JobType,
		CreatedBy:       tpoID,
	}
	if drive.JobType == "" {
		drive.JobType = "Full-Time"
	}

	if err := s.driveRepo.Create(ctx, drive); err != nil {
		return nil, err
	}

	eligible, err := s.eligibility.EligibleStudents(ctx, drive)
	if err != nil {
		// The drive exists; a failed fanout is logged, not rolled back.
		logger.Error().Err(err).Int64("driveID", drive.ID).Msg("Failed to compute eligible students for new drive")
		return &dto.CreateDriveResponse{Drive: drive}, nil
	}

	message := fmt.Sprintf("New drive: %s (%s) - you're eligible!", drive.Company, drive.Role)
	notified := s.notifications.NotifyMany(ctx, userIDs(eligible), message)

	logger.Info().Int64("driveID", drive.ID).Int("notified", notified).Msg("Drive created")
	return &dto.CreateDriveResponse{Drive: drive, EligibleNotified: notified}, nil
}

// ListPage returns one page of drives plus pagination metadata
func (s *DriveService) ListPage(ctx context.Context, activeOnly bool, page, size int) (*dto.DriveListResponse, error) {
	status := models.DriveStatus("")
	if activeOnly {
		status = models.DriveActive
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	drives, err := s.driveRepo.GetPage(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}

	total, active, err := s.driveRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		total = active
	}

	return &dto.DriveListResponse{
		Drives:     drives,
		Pagination: helpers.NewPaginationInfo(int64(total), page, limit),
	}, nil
}

// GetByID retrieves one drive
func (s *DriveService) GetByID(ctx context.Context, id int64) (*models.Drive, error) {
	return s.driveRepo.GetByID(ctx, id)
}

// Complete closes an active drive and tells every applicant. The
// transition is one way; completing twice is a conflict.
func (s *DriveService) Complete(ctx context.Context, driveID int64) error {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return err
	}

	if err := s.driveRepo.Complete(ctx, driveID); err != nil {
		return err
	}

	applications, err := s.applicationRepo.GetByDrive(ctx, driveID)
	if err != nil {
		logger.Error().Err(err).Int64("driveID", driveID).Msg("Failed to load applicants for completion fanout")
		return nil
	}

	message := fmt.Sprintf("The %s drive has been closed.", drive.Company)
	s.notifications.NotifyMany(ctx, applicantIDs(applications), message)
	return nil
}

// Detail assembles the placement-office view of one drive: eligibility,
// branch breakdown, applications, schedules and selected students
func (s *DriveService) Detail(ctx context.Context, driveID int64) (*dto.DriveDetailResponse, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	eligible, err := s.eligibility.EligibleStudents(ctx, drive)
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.GetByDrive(ctx, driveID)
	if err != nil {
		return nil, err
	}

	schedules, err := s.interviewRepo.GetByDrive(ctx, driveID)
	if err != nil {
		return nil, err
	}

	var selected []*models.StudentProfile
	for _, application := range applications {
		if application.Status != models.StatusSelected {
			continue
		}
		profile, err := s.profileRepo.GetByUserID(ctx, application.StudentID)
		if err != nil {
			logger.Warn().Err(err).Int64("studentID", application.StudentID).Msg("Selected student has no profile")
			continue
		}
		profile.User = application.Student
		selected = append(selected, profile)
	}

	return &dto.DriveDetailResponse{
		Drive:            drive,
		Eligible:         eligible,
		BranchBreakdown:  BranchBreakdown(eligible),
		Applications:     applications,
		Schedules:        schedules,
		SelectedStudents: selected,
	}, nil
}

// previewMaxBacklogs is the backlog ceiling assumed when the preview
// request leaves it out, matching the drive creation form default.
const previewMaxBacklogs = 10

// previewCriteria builds the screening rule from a preview request,
// filling in the backlog default for an omitted ceiling.
func previewCriteria(req *dto.EligibleCountRequest) EligibilityCriteria {
	maxBacklogs := previewMaxBacklogs
	if req.MaxBacklogs != nil {
		maxBacklogs = *req.MaxBacklogs
	}
	return EligibilityCriteria{
		MinCGPA:     req.MinCGPA,
		MaxBacklogs: maxBacklogs,
		Branches:    req.Branches,
	}
}

// EligibleCount previews how many students an ad-hoc rule would reach,
// used before a drive is persisted
func (s *DriveService) EligibleCount(ctx context.Context, req *dto.EligibleCountRequest) (int, error) {
	eligible, err := s.eligibility.EligibleForCriteria(ctx, previewCriteria(req))
	if err != nil {
		return 0, err
	}
	return len(eligible), nil
}

// RemindEligible re-notifies every eligible student about an open drive
func (s *DriveService) RemindEligible(ctx context.Context, driveID int64) (int, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return 0, err
	}

	eligible, err := s.eligibility.EligibleStudents(ctx, drive)
	if err != nil {
		return 0, err
	}

	message := fmt.Sprintf("Reminder: Apply to %s (%s) before %s!", drive.Company, drive.Role, drive.Deadline)
	return s.notifications.NotifyMany(ctx, userIDs(eligible), message), nil
}

// BroadcastToApplicants sends a free-text message to every applicant of a
// drive, prefixed with the company name
func (s *DriveService) BroadcastToApplicants(ctx context.Context, driveID int64, message string) (int, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return 0, apperrors.NewBadRequestError("message cannot be empty")
	}

	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return 0, err
	}

	applications, err := s.applicationRepo.GetByDrive(ctx, driveID)
	if err != nil {
		return 0, err
	}

	full := fmt.Sprintf("[%s] %s", drive.Company, message)
	return s.notifications.NotifyMany(ctx, applicantIDs(applications), full), nil
}

func userIDs(profiles []*models.StudentProfile) []int64 {
	ids := make([]int64, 0, len(profiles))
	for _, profile := range profiles {
		ids = append(ids, profile.UserID)
	}
	return ids
}

func applicantIDs(applications []*models.Application) []int64 {
	ids := make([]int64, 0, len(applications))
	for _, application := range applications {
		ids = append(ids, application.StudentID)
	}
	return ids
}
