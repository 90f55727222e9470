package services

import (
	"context"
	"errors"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/repositories"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/helpers"
)

// ProfileService handles student and alumni profile management
type ProfileService struct {
	userRepo        *repositories.UserRepository
	studentRepo     *repositories.StudentProfileRepository
	alumniRepo      *repositories.AlumniProfileRepository
	applicationRepo *repositories.ApplicationRepository
	driveRepo       *repositories.DriveRepository
	mentorshipRepo  *repositories.MentorshipRepository
	referralRepo    *repositories.ReferralRepository
	eligibility     *EligibilityService
	notifications   *NotificationService
}

// NewProfileService creates a new profile service
func NewProfileService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentProfileRepository,
	alumniRepo *repositories.AlumniProfileRepository,
	applicationRepo *repositories.ApplicationRepository,
	driveRepo *repositories.DriveRepository,
	mentorshipRepo *repositories.MentorshipRepository,
	referralRepo *repositories.ReferralRepository,
	eligibility *EligibilityService,
	notifications *NotificationService,
) *ProfileService {
	return &ProfileService{
		userRepo:        userRepo,
		studentRepo:     studentRepo,
		alumniRepo:      alumniRepo,
		applicationRepo: applicationRepo,
		driveRepo:       driveRepo,
		mentorshipRepo:  mentorshipRepo,
		referralRepo:    referralRepo,
		eligibility:     eligibility,
		notifications:   notifications,
	}
}

// GetStudentProfile retrieves a student's profile with the user attached
func (s *ProfileService) GetStudentProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	profile, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		profile.User = user
	}

	return profile, nil
}

// UpdateStudentProfile saves a student's profile. Numeric fields arrive as
// free text and coerce to zero when malformed, matching the form-style
// clients this API serves.
func (s *ProfileService) UpdateStudentProfile(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{
		UserID:       userID,
		CGPA:         helpers.ParseFloatOrZero(req.CGPA),
		Backlogs:     helpers.ParseIntOrZero(req.Backlogs),
		Branch:       req.Branch,
		Skills:       orEmpty(req.Skills),
		Projects:     orEmptyProjects(req.Projects),
		Certificates: orEmptyCertificates(req.Certificates),
		Phone:        req.Phone,
		DOB:          req.DOB,
		LinkedIn:     req.LinkedIn,
		PhotoURL:     req.PhotoURL,
	}

	if err := s.studentRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// GetAlumniProfile retrieves an alumnus's profile with the user attached
func (s *ProfileService) GetAlumniProfile(ctx context.Context, userID int64) (*models.AlumniProfile, error) {
	profile, err := s.alumniRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		profile.User = user
	}

	return profile, nil
}

// UpdateAlumniProfile saves an alumnus's profile
func (s *ProfileService) UpdateAlumniProfile(ctx context.Context, userID int64, req *dto.UpdateAlumniProfileRequest) (*models.AlumniProfile, error) {
	profile := &models.AlumniProfile{
		UserID:       userID,
		Company:      req.Company,
		Role:         req.Role,
		BatchYear:    req.BatchYear,
		Branch:       req.Branch,
		LinkedIn:     req.LinkedIn,
		Bio:          req.Bio,
		OpenToMentor: req.OpenToMentor,
	}

	if err := s.alumniRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// StudentDashboard aggregates the student landing view: profile,
// applications, eligible active drives and the notification feed. A
// student without a profile gets an empty one rather than an error.
func (s *ProfileService) StudentDashboard(ctx context.Context, userID int64) (*dto.StudentDashboardResponse, error) {
	profile, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, err
		}
		profile = &models.StudentProfile{
			UserID:       userID,
			Skills:       []string{},
			Projects:     []models.Project{},
			Certificates: []models.Certificate{},
		}
	}

	applications, err := s.applicationRepo.GetByStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	drives, err := s.driveRepo.GetAll(ctx, models.DriveActive)
	if err != nil {
		return nil, err
	}

	feed, err := s.notifications.GetFeed(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboardResponse{
		Profile:        profile,
		Applications:   applications,
		EligibleDrives: s.eligibility.EligibleDrives(profile, drives),
		Notifications:  feed,
	}, nil
}

// AlumniDashboard aggregates the alumni landing view
func (s *ProfileService) AlumniDashboard(ctx context.Context, userID int64) (*dto.AlumniDashboardResponse, error) {
	profile, err := s.alumniRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, err
		}
		profile = &models.AlumniProfile{UserID: userID}
	}

	posts, err := s.referralRepo.GetPostsByAlumni(ctx, userID)
	if err != nil {
		return nil, err
	}

	slots, err := s.mentorshipRepo.GetSlotsByAlumni(ctx, userID)
	if err != nil {
		return nil, err
	}

	mentorshipRequests, err := s.mentorshipRepo.GetRequestsForAlumni(ctx, userID)
	if err != nil {
		return nil, err
	}

	referralRequests, err := s.referralRepo.GetRequestsForAlumni(ctx, userID)
	if err != nil {
		return nil, err
	}

	feed, err := s.notifications.GetFeed(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.AlumniDashboardResponse{
		Profile:            profile,
		ReferralPosts:      posts,
		MentorshipSlots:    slots,
		MentorshipRequests: mentorshipRequests,
		ReferralRequests:   referralRequests,
		Notifications:      feed,
	}, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func orEmptyProjects(values []models.Project) []models.Project {
	if values == nil {
		return []models.Project{}
	}
	return values
}

func orEmptyCertificates(values []models.Certificate) []models.Certificate {
	if values == nil {
		return []models.Certificate{}
	}
	return values
}
