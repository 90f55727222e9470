package services

import "testing"

func TestEmptyStudentProfileDefaults(t *testing.T) {
	profile := emptyStudentProfile(42)

	if profile.UserID != 42 {
		t.Errorf("UserID = %d, want 42", profile.UserID)
	}
	if profile.CGPA != 0 || profile.Backlogs != 0 {
		t.Errorf("fresh profile has CGPA=%v backlogs=%d, want zeros", profile.CGPA, profile.Backlogs)
	}
	// The jsonb columns must start as [] rather than null, so the repo's
	// read path and the skill matcher see empty lists.
	if profile.Skills == nil || profile.Projects == nil || profile.Certificates == nil {
		t.Errorf("collections must be empty, not nil: %+v", profile)
	}
	if len(profile.Skills) != 0 || len(profile.Projects) != 0 || len(profile.Certificates) != 0 {
		t.Errorf("collections must start empty: %+v", profile)
	}
}

func TestEmptyAlumniProfileDefaults(t *testing.T) {
	profile := emptyAlumniProfile(7)

	if profile.UserID != 7 {
		t.Errorf("UserID = %d, want 7", profile.UserID)
	}
	if profile.OpenToMentor {
		t.Error("fresh alumni profile must not be open to mentor by default")
	}
}
