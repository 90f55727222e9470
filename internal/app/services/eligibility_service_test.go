package services

import (
	"testing"

	"github.com/adikale/placementhub/internal/app/models"
)

func profile(cgpa float64, backlogs int, branch string) *models.StudentProfile {
	return &models.StudentProfile{CGPA: cgpa, Backlogs: backlogs, Branch: branch}
}

func TestCriteriaMatches(t *testing.T) {
	criteria := EligibilityCriteria{MinCGPA: 7.0, MaxBacklogs: 0, Branches: []string{"CS", "IT"}}

	cases := []struct {
		name    string
		profile *models.StudentProfile
		want    bool
	}{
		{"all criteria met", profile(8.2, 0, "CS"), true},
		{"exactly at cgpa floor", profile(7.0, 0, "IT"), true},
		{"below cgpa floor", profile(6.99, 0, "CS"), false},
		{"too many backlogs", profile(9.0, 1, "CS"), false},
		{"wrong branch", profile(9.0, 0, "ME"), false},
		{"empty branch", profile(9.0, 0, ""), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := criteria.Matches(c.profile); got != c.want {
				t.Errorf("Matches() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCriteriaEmptyBranchesMeansUnrestricted(t *testing.T) {
	criteria := EligibilityCriteria{MinCGPA: 6.0, MaxBacklogs: 2}

	for _, branch := range []string{"CS", "ME", "Civil", ""} {
		if !criteria.Matches(profile(6.5, 1, branch)) {
			t.Errorf("empty branch list must accept branch %q", branch)
		}
	}
}

func TestCriteriaBacklogCeiling(t *testing.T) {
	criteria := EligibilityCriteria{MinCGPA: 0, MaxBacklogs: 2}

	if !criteria.Matches(profile(5.0, 2, "CS")) {
		t.Error("student exactly at backlog ceiling must be eligible")
	}
	if criteria.Matches(profile(5.0, 3, "CS")) {
		t.Error("student above backlog ceiling must not be eligible")
	}
}

func TestCriteriaFilterPreservesOrder(t *testing.T) {
	criteria := EligibilityCriteria{MinCGPA: 7.0, MaxBacklogs: 0, Branches: []string{"CS"}}

	profiles := []*models.StudentProfile{
		profile(8.5, 0, "CS"),
		profile(6.0, 0, "CS"),
		profile(9.1, 0, "CS"),
		profile(8.0, 2, "CS"),
		profile(7.0, 0, "CS"),
	}

	eligible := criteria.Filter(profiles)
	if len(eligible) != 3 {
		t.Fatalf("Filter() returned %d profiles, want 3", len(eligible))
	}
	wantCGPA := []float64{8.5, 9.1, 7.0}
	for i, p := range eligible {
		if p.CGPA != wantCGPA[i] {
			t.Errorf("eligible[%d].CGPA = %v, want %v", i, p.CGPA, wantCGPA[i])
		}
	}
}

func TestEligibleDrivesSkipsCompleted(t *testing.T) {
	student := profile(8.0, 0, "CS")
	drives := []*models.Drive{
		{ID: 1, MinCGPA: 7.0, Status: models.DriveActive, AllowedBranches: []string{"CS"}},
		{ID: 2, MinCGPA: 7.0, Status: models.DriveCompleted, AllowedBranches: []string{"CS"}},
		{ID: 3, MinCGPA: 9.0, Status: models.DriveActive},
		{ID: 4, MinCGPA: 6.0, Status: models.DriveActive},
	}

	svc := &EligibilityService{}
	eligible := svc.EligibleDrives(student, drives)

	if len(eligible) != 2 {
		t.Fatalf("EligibleDrives() returned %d drives, want 2", len(eligible))
	}
	if eligible[0].ID != 1 || eligible[1].ID != 4 {
		t.Errorf("EligibleDrives() = [%d %d], want [1 4]", eligible[0].ID, eligible[1].ID)
	}
}

func TestBranchBreakdown(t *testing.T) {
	profiles := []*models.StudentProfile{
		profile(8.0, 0, "CS"),
		profile(7.5, 0, "CS"),
		profile(6.0, 1, "ME"),
		profile(9.0, 0, ""),
	}

	breakdown := BranchBreakdown(profiles)
	if breakdown["CS"] != 2 || breakdown["ME"] != 1 || breakdown["Unknown"] != 1 {
		t.Errorf("BranchBreakdown() = %v", breakdown)
	}
}
