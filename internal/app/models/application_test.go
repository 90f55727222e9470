package models

import "testing"

func TestValidApplicationStatus(t *testing.T) {
	valid := []ApplicationStatus{
		StatusApplied, StatusAptitude, StatusTechnical, StatusHR,
		StatusInterviewScheduled, StatusSelected, StatusRejected,
	}
	for _, s := range valid {
		if !ValidApplicationStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}

	if ValidApplicationStatus("shortlisted") {
		t.Error("expected unknown status to be invalid")
	}
	if ValidApplicationStatus("") {
		t.Error("expected empty status to be invalid")
	}
}

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		status ApplicationStatus
		want   string
	}{
		{StatusApplied, "Applied"},
		{StatusAptitude, "Aptitude Round"},
		{StatusTechnical, "Technical Interview"},
		{StatusHR, "HR Round"},
		{StatusInterviewScheduled, "Interview Scheduled"},
		{StatusSelected, "SELECTED! Congratulations!"},
		{StatusRejected, "Not Selected"},
	}
	for _, c := range cases {
		if got := c.status.Label(); got != c.want {
			t.Errorf("Label(%q) = %q, want %q", c.status, got, c.want)
		}
	}

	// Unknown codes fall back to the raw string.
	if got := ApplicationStatus("waitlisted").Label(); got != "waitlisted" {
		t.Errorf("Label(waitlisted) = %q, want raw string", got)
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{"applied to aptitude", StatusApplied, StatusAptitude, true},
		{"applied to interview", StatusApplied, StatusInterviewScheduled, true},
		{"applied straight to selected", StatusApplied, StatusSelected, true},
		{"hr to rejected", StatusHR, StatusRejected, true},
		{"technical back to aptitude", StatusTechnical, StatusAptitude, true},
		{"selected frozen", StatusSelected, StatusApplied, false},
		{"rejected frozen", StatusRejected, StatusHR, false},
		{"no self transition", StatusAptitude, StatusAptitude, false},
		{"unknown target", StatusApplied, "shortlisted", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.from.CanTransitionTo(c.to); got != c.want {
				t.Errorf("CanTransitionTo(%q -> %q) = %v, want %v", c.from, c.to, got, c.want)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	if !StatusSelected.Terminal() || !StatusRejected.Terminal() {
		t.Error("selected and rejected must be terminal")
	}
	for _, s := range []ApplicationStatus{StatusApplied, StatusAptitude, StatusTechnical, StatusHR, StatusInterviewScheduled} {
		if s.Terminal() {
			t.Errorf("%q must not be terminal", s)
		}
	}
}
