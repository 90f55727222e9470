package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/repositories"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/logger"
	"github.com/adikale/placementhub/internal/pkg/resumepdf"
)

// ResumeService scores profile completeness and renders resume PDFs
type ResumeService struct {
	userRepo       *repositories.UserRepository
	profileRepo    *repositories.StudentProfileRepository
	resumeMetaRepo *repositories.ResumeMetaRepository
	renderer       *resumepdf.Renderer
}

// NewResumeService creates a new resume service
func NewResumeService(
	userRepo *repositories.UserRepository,
	profileRepo *repositories.StudentProfileRepository,
	resumeMetaRepo *repositories.ResumeMetaRepository,
	renderer *resumepdf.Renderer,
) *ResumeService {
	return &ResumeService{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		resumeMetaRepo: resumeMetaRepo,
		renderer:       renderer,
	}
}

// ScoreProfile applies the resume quality rubric to a profile. The score
// lands in [0, 100]; each tip names the highest-impact missing item for
// its rubric line.
func ScoreProfile(profile *models.StudentProfile) *dto.ResumeQualityResponse {
	score := 0
	tips := []string{}

	if profile.CGPA > 0 {
		score += 20
	} else {
		tips = append(tips, "Add your CGPA")
	}
	if profile.Branch != "" {
		score += 5
	} else {
		tips = append(tips, "Add your branch")
	}
	if profile.Phone != "" {
		score += 5
	} else {
		tips = append(tips, "Add phone number")
	}
	if profile.DOB != "" {
		score += 5
	} else {
		tips = append(tips, "Add date of birth")
	}
	if profile.LinkedIn != "" {
		score += 5
	} else {
		tips = append(tips, "Add your LinkedIn URL")
	}

	switch {
	case len(profile.Skills) >= 5:
		score += 20
	case len(profile.Skills) >= 3:
		score += 12
		tips = append(tips, "Add 2 more skills")
	case len(profile.Skills) > 0:
		score += 5
		tips = append(tips, "Add at least 5 skills")
	default:
		tips = append(tips, "Add your technical skills")
	}

	switch {
	case len(profile.Projects) >= 2:
		score += 25
	case len(profile.Projects) == 1:
		score += 15
		tips = append(tips, "Add one more project to reach 90%+")
	default:
		tips = append(tips, "Add at least 1 project")
	}

	switch {
	case len(profile.Certificates) >= 2:
		score += 15
	case len(profile.Certificates) == 1:
		score += 8
		tips = append(tips, "Add one more certificate")
	default:
		tips = append(tips, "Add a certificate (Coursera, NPTEL)")
	}

	return &dto.ResumeQualityResponse{Score: score, Tips: tips}
}

// Quality scores a student's profile. A student without a profile scores
// zero with a single tip to complete it first.
func (s *ResumeService) Quality(ctx context.Context, studentID int64) (*dto.ResumeQualityResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return &dto.ResumeQualityResponse{Score: 0, Tips: []string{"Complete your profile first"}}, nil
		}
		return nil, err
	}

	return ScoreProfile(profile), nil
}

// Build renders the student's resume PDF and records its location
func (s *ResumeService) Build(ctx context.Context, studentID int64) (*models.ResumeMeta, error) {
	user, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetByUserID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	path, err := s.renderer.Render(user, profile)
	if err != nil {
		return nil, err
	}

	meta := &models.ResumeMeta{
		StudentID: studentID,
		FilePath:  path,
	}
	if err := s.resumeMetaRepo.Upsert(ctx, meta); err != nil {
		// The PDF is on disk; losing the record just means the next
		// download regenerates it.
		logger.Warn().Err(err).Int64("studentID", studentID).Msg("Failed to record resume metadata")
	}

	return meta, nil
}

// Download returns the student's resume metadata, regenerating the PDF when
// no record exists yet or the recorded file has gone missing from disk.
func (s *ResumeService) Download(ctx context.Context, studentID int64) (*models.ResumeMeta, error) {
	meta, err := s.resumeMetaRepo.GetByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return s.Build(ctx, studentID)
		}
		return nil, err
	}

	if _, statErr := os.Stat(meta.FilePath); statErr != nil {
		return s.Build(ctx, studentID)
	}

	return meta, nil
}

// FileName returns the bare name of a stored resume file
func FileName(meta *models.ResumeMeta) string {
	return filepath.Base(meta.FilePath)
}
