package services

import (
	"testing"

	"github.com/adikale/placementhub/internal/app/models"
)

func fullProfile() *models.StudentProfile {
	return &models.StudentProfile{
		CGPA:     8.5,
		Branch:   "CS",
		Phone:    "9876543210",
		DOB:      "2003-05-14",
		LinkedIn: "https://linkedin.com/in/rahul",
		Skills:   []string{"Python", "SQL", "Git", "React", "Docker"},
		Projects: []models.Project{
			{Name: "Shop", Desc: "E-commerce site"},
			{Name: "Bot", Desc: "Chat bot"},
		},
		Certificates: []models.Certificate{
			{Title: "Python for Everybody", Issuer: "Coursera", Year: "2024"},
			{Title: "SQL Basics", Issuer: "NPTEL", Year: "2023"},
		},
	}
}

func TestScoreProfileComplete(t *testing.T) {
	result := ScoreProfile(fullProfile())

	if result.Score != 100 {
		t.Errorf("Score = %d, want 100", result.Score)
	}
	if len(result.Tips) != 0 {
		t.Errorf("Tips = %v, want none for a complete profile", result.Tips)
	}
}

func TestScoreProfileEmpty(t *testing.T) {
	result := ScoreProfile(&models.StudentProfile{})

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if len(result.Tips) != 8 {
		t.Errorf("got %d tips, want one per rubric line (8): %v", len(result.Tips), result.Tips)
	}
}

func TestScoreProfileSkillTiers(t *testing.T) {
	cases := []struct {
		skills int
		want   int
	}{
		{0, 0},
		{1, 5},
		{2, 5},
		{3, 12},
		{4, 12},
		{5, 20},
		{9, 20},
	}
	for _, c := range cases {
		profile := &models.StudentProfile{}
		for i := 0; i < c.skills; i++ {
			profile.Skills = append(profile.Skills, "skill")
		}
		if got := ScoreProfile(profile).Score; got != c.want {
			t.Errorf("ScoreProfile with %d skills = %d, want %d", c.skills, got, c.want)
		}
	}
}

func TestScoreProfilePartial(t *testing.T) {
	profile := &models.StudentProfile{
		CGPA:     7.2,
		Branch:   "IT",
		Projects: []models.Project{{Name: "App"}},
	}

	// 20 (cgpa) + 5 (branch) + 15 (one project).
	result := ScoreProfile(profile)
	if result.Score != 40 {
		t.Errorf("Score = %d, want 40", result.Score)
	}

	wantTips := map[string]bool{
		"Add phone number":                    true,
		"Add date of birth":                   true,
		"Add your LinkedIn URL":               true,
		"Add your technical skills":           true,
		"Add one more project to reach 90%+":  true,
		"Add a certificate (Coursera, NPTEL)": true,
	}
	if len(result.Tips) != len(wantTips) {
		t.Fatalf("Tips = %v, want %d entries", result.Tips, len(wantTips))
	}
	for _, tip := range result.Tips {
		if !wantTips[tip] {
			t.Errorf("unexpected tip %q", tip)
		}
	}
}

func TestScoreProfileBounded(t *testing.T) {
	// Piling on extra items never pushes the score past 100.
	profile := fullProfile()
	for i := 0; i < 20; i++ {
		profile.Skills = append(profile.Skills, "extra")
		profile.Projects = append(profile.Projects, models.Project{Name: "p"})
		profile.Certificates = append(profile.Certificates, models.Certificate{Title: "c"})
	}

	if got := ScoreProfile(profile).Score; got != 100 {
		t.Errorf("Score = %d, want 100", got)
	}
}
