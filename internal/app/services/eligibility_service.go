package services

import (
	"context"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/repositories"
)

// EligibilityCriteria is the screening rule of a drive: CGPA floor,
// backlog ceiling and an optional branch whitelist.
type EligibilityCriteria struct {
	MinCGPA     float64
	MaxBacklogs int
	Branches    []string
}

// CriteriaFromDrive extracts the screening rule a drive was created with.
func CriteriaFromDrive(drive *models.Drive) EligibilityCriteria {
	return EligibilityCriteria{
		MinCGPA:     drive.MinCGPA,
		MaxBacklogs: drive.MaxBacklogs,
		Branches:    drive.AllowedBranches,
	}
}

// Matches applies the screening rule to one profile. An empty branch list
// means every branch qualifies. Boundary values pass: a student exactly at
// the CGPA floor or backlog ceiling is eligible.
func (c EligibilityCriteria) Matches(profile *models.StudentProfile) bool {
	if profile.CGPA < c.MinCGPA {
		return false
	}
	if profile.Backlogs > c.MaxBacklogs {
		return false
	}
	if len(c.Branches) == 0 {
		return true
	}
	for _, branch := range c.Branches {
		if profile.Branch == branch {
			return true
		}
	}
	return false
}

// Filter returns the profiles that pass the screening rule, preserving
// input order.
func (c EligibilityCriteria) Filter(profiles []*models.StudentProfile) []*models.StudentProfile {
	var eligible []*models.StudentProfile
	for _, profile := range profiles {
		if c.Matches(profile) {
			eligible = append(eligible, profile)
		}
	}
	return eligible
}

// EligibilityService screens students against drive criteria
type EligibilityService struct {
	profileRepo *repositories.StudentProfileRepository
}

// NewEligibilityService creates a new eligibility service
func NewEligibilityService(profileRepo *repositories.StudentProfileRepository) *EligibilityService {
	return &EligibilityService{
		profileRepo: profileRepo,
	}
}

// EligibleStudents returns the student profiles that pass a drive's criteria
func (s *EligibilityService) EligibleStudents(ctx context.Context, drive *models.Drive) ([]*models.StudentProfile, error) {
	profiles, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return CriteriaFromDrive(drive).Filter(profiles), nil
}

// EligibleForCriteria screens every student against an ad-hoc rule, used by
// the placement office to preview reach before publishing a drive
func (s *EligibilityService) EligibleForCriteria(ctx context.Context, criteria EligibilityCriteria) ([]*models.StudentProfile, error) {
	profiles, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return criteria.Filter(profiles), nil
}

// EligibleDrives returns the active drives a student qualifies for,
// newest first
func (s *EligibilityService) EligibleDrives(profile *models.StudentProfile, drives []*models.Drive) []*models.Drive {
	var eligible []*models.Drive
	for _, drive := range drives {
		if drive.Status != models.DriveActive {
			continue
		}
		if CriteriaFromDrive(drive).Matches(profile) {
			eligible = append(eligible, drive)
		}
	}
	return eligible
}

// BranchBreakdown counts eligible students per branch
func BranchBreakdown(profiles []*models.StudentProfile) map[string]int {
	breakdown := make(map[string]int)
	for _, profile := range profiles {
		branch := profile.Branch
		if branch == "" {
			branch = "Unknown"
		}
		breakdown[branch]++
	}
	return breakdown
}
