package services

import (
	"context"
	"fmt"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/repositories"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/helpers"
	"github.com/adikale/placementhub/internal/pkg/logger"
)

// ReferralService handles alumni referral posts and student referral
// requests, plus the shared connect board
type ReferralService struct {
	referralRepo   *repositories.ReferralRepository
	mentorshipRepo *repositories.MentorshipRepository
	alumniRepo     *repositories.AlumniProfileRepository
	userRepo       *repositories.UserRepository
	notifications  *NotificationService
}

// NewReferralService creates a new referral service
func NewReferralService(
	referralRepo *repositories.ReferralRepository,
	mentorshipRepo *repositories.MentorshipRepository,
	alumniRepo *repositories.AlumniProfileRepository,
	userRepo *repositories.UserRepository,
	notifications *NotificationService,
) *ReferralService {
	return &ReferralService{
		referralRepo:   referralRepo,
		mentorshipRepo: mentorshipRepo,
		alumniRepo:     alumniRepo,
		userRepo:       userRepo,
		notifications:  notifications,
	}
}

// CreatePost publishes a referral opening for an alumnus. The package
// figure arrives as free text and coerces to zero when malformed.
func (s *ReferralService) CreatePost(ctx context.Context, alumniID int64, req *dto.CreateReferralPostRequest) (*models.ReferralPost, error) {
	post := &models.ReferralPost{
		AlumniID:    alumniID,
		Company:     req.Company,
		Role:        req.Role,
		Description: req.Description,
		JDLink:      req.JDLink,
		Deadline:    req.Deadline,
		PackageLPA:  helpers.ParseFloatOrZero(req.PackageLPA),
		Location:    req.Location,
		JobType:     req.JobType,
	}
	if post.JobType == "" {
		post.JobType = "Full-Time"
	}

	if err := s.referralRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// RequestReferral sends a student's referral request on a post and tells
// the post's author. A repeat request on the same post is a conflict.
func (s *ReferralService) RequestReferral(ctx context.Context, studentID, postID int64, message string) (*models.ReferralRequest, error) {
	post, err := s.referralRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	request := &models.ReferralRequest{
		StudentID: studentID,
		PostID:    postID,
		AlumniID:  post.AlumniID,
		Message:   message,
		Status:    models.ReferralRequested,
	}
	if err := s.referralRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	student, err := s.userRepo.GetByID(ctx, studentID)
	if err == nil {
		notice := fmt.Sprintf("%s requested a referral for %s - %s!", student.Name, post.Company, post.Role)
		if err := s.notifications.Notify(ctx, post.AlumniID, notice); err != nil {
			logger.Error().Err(err).Int64("alumniID", post.AlumniID).Msg("Failed to notify referral request")
		}
	}

	return request, nil
}

// Respond lets an alumnus move a referral request to approved, referred or
// rejected, with an optional note. The student is notified per outcome.
func (s *ReferralService) Respond(ctx context.Context, alumniID, requestID int64, action models.ReferralRequestStatus, note string) error {
	switch action {
	case models.ReferralApproved, models.ReferralReferred, models.ReferralRejected:
	default:
		return apperrors.NewBadRequestError("action must be approved, referred or rejected")
	}

	request, err := s.referralRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.AlumniID != alumniID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.referralRepo.UpdateRequest(ctx, requestID, action, note); err != nil {
		return err
	}

	post, err := s.referralRepo.GetPostByID(ctx, request.PostID)
	if err != nil {
		logger.Warn().Err(err).Int64("postID", request.PostID).Msg("Responded but post lookup failed, skipping notification")
		return nil
	}

	var message string
	switch action {
	case models.ReferralApproved:
		message = fmt.Sprintf("Referral approved for %s - %s!", post.Company, post.Role)
	case models.ReferralReferred:
		message = fmt.Sprintf("You have been referred for %s - %s!", post.Company, post.Role)
	case models.ReferralRejected:
		message = fmt.Sprintf("Your referral request for %s - %s was not approved this time.", post.Company, post.Role)
	}
	if err := s.notifications.Notify(ctx, request.StudentID, message); err != nil {
		logger.Error().Err(err).Int64("studentID", request.StudentID).Msg("Failed to notify referral response")
	}

	return nil
}

// ConnectBoard assembles the shared alumni-connect view: every referral
// post, open mentorship slots and the alumni directory. For students the
// board also maps post IDs to their own request statuses.
func (s *ReferralService) ConnectBoard(ctx context.Context, viewerID int64, viewerRole models.RoleType) (*dto.ConnectBoardResponse, error) {
	posts, err := s.referralRepo.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	slots, err := s.mentorshipRepo.GetAvailableSlots(ctx)
	if err != nil {
		return nil, err
	}

	alumni, err := s.alumniRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	board := &dto.ConnectBoardResponse{
		ReferralPosts:  posts,
		AvailableSlots: slots,
		Alumni:         alumni,
	}

	if viewerRole == models.RoleStudent {
		statuses, err := s.referralRepo.GetRequestStatusesByStudent(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		board.RequestStatuses = statuses
	}

	return board, nil
}
