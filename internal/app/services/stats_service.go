package services

import (
	"context"
	"math"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/repositories"
)

// topDriveLimit caps the "most applied" leaderboard.
const topDriveLimit = 5

// StatsService assembles the placement analytics snapshot for the TPO
type StatsService struct {
	userRepo        *repositories.UserRepository
	driveRepo       *repositories.DriveRepository
	applicationRepo *repositories.ApplicationRepository
	profileRepo     *repositories.StudentProfileRepository
}

// NewStatsService creates a new stats service
func NewStatsService(
	userRepo *repositories.UserRepository,
	driveRepo *repositories.DriveRepository,
	applicationRepo *repositories.ApplicationRepository,
	profileRepo *repositories.StudentProfileRepository,
) *StatsService {
	return &StatsService{
		userRepo:        userRepo,
		driveRepo:       driveRepo,
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
	}
}

// PlacementStats computes the analytics snapshot: totals, placement rate,
// per-branch progress, most-applied drives and the status distribution.
// The placement rate is rounded to one decimal; zero students means a
// zero rate, not a division error.
func (s *StatsService) PlacementStats(ctx context.Context) (*dto.PlacementStatsResponse, error) {
	totalStudents, err := s.userRepo.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	totalDrives, activeDrives, err := s.driveRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	totalApplications, err := s.applicationRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := s.applicationRepo.CountDistinctSelected(ctx)
	if err != nil {
		return nil, err
	}

	branchStats, err := s.profileRepo.BranchStats(ctx)
	if err != nil {
		return nil, err
	}

	topDrives, err := s.driveRepo.TopByApplications(ctx, topDriveLimit)
	if err != nil {
		return nil, err
	}

	distribution, err := s.applicationRepo.StatusDistribution(ctx)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if totalStudents > 0 {
		rate = math.Round(float64(placed)/float64(totalStudents)*1000) / 10
	}

	return &dto.PlacementStatsResponse{
		TotalStudents:      totalStudents,
		TotalDrives:        totalDrives,
		ActiveDrives:       activeDrives,
		TotalApplications:  totalApplications,
		PlacedStudents:     placed,
		PlacementRate:      rate,
		BranchStats:        branchStats,
		TopDrives:          topDrives,
		StatusDistribution: distribution,
	}, nil
}
