package services

import (
	"strings"
	"testing"
)

func TestAnalyzeDataAnalyst(t *testing.T) {
	result := Analyze([]string{"python", "SQL", "Photoshop"}, "Data Analyst")

	if len(result.Required) != 7 {
		t.Fatalf("Required has %d skills, want 7", len(result.Required))
	}
	if len(result.Have) != 2 {
		t.Fatalf("Have = %v, want [Python SQL]", result.Have)
	}
	// Matched skills keep their canonical casing from the role table.
	if result.Have[0] != "Python" || result.Have[1] != "SQL" {
		t.Errorf("Have = %v, want [Python SQL]", result.Have)
	}
	if len(result.Missing) != 5 {
		t.Fatalf("Missing has %d entries, want 5", len(result.Missing))
	}
	if result.MatchPct != 28 {
		t.Errorf("MatchPct = %d, want 28", result.MatchPct)
	}

	for _, res := range result.Missing {
		if res.Platform == "" || res.URL == "" || res.Hours == 0 {
			t.Errorf("missing skill %q lacks a complete resource: %+v", res.Skill, res)
		}
	}
}

func TestAnalyzeUnknownRole(t *testing.T) {
	result := Analyze([]string{"Python"}, "Astronaut")

	if len(result.Required) != 0 || len(result.Have) != 0 || len(result.Missing) != 0 {
		t.Errorf("unknown role must yield empty lists, got %+v", result)
	}
	if result.MatchPct != 0 {
		t.Errorf("MatchPct = %d, want 0", result.MatchPct)
	}
}

func TestAnalyzeNoSkills(t *testing.T) {
	// A student without a profile is analyzed as having no skills and
	// still gets the full report instead of an error.
	result := Analyze(nil, "Data Analyst")

	if result.MatchPct != 0 {
		t.Errorf("MatchPct = %d, want 0", result.MatchPct)
	}
	if len(result.Have) != 0 {
		t.Errorf("Have = %v, want empty", result.Have)
	}
	if len(result.Missing) != len(result.Required) {
		t.Errorf("Missing has %d entries, want %d", len(result.Missing), len(result.Required))
	}
}

func TestAnalyzeFullMatch(t *testing.T) {
	result := Analyze(roleSkills["DevOps Engineer"], "DevOps Engineer")

	if result.MatchPct != 100 {
		t.Errorf("MatchPct = %d, want 100", result.MatchPct)
	}
	if len(result.Missing) != 0 {
		t.Errorf("Missing = %v, want empty", result.Missing)
	}
}

func TestAnalyzeMonotonic(t *testing.T) {
	// Adding a required skill never lowers the match percentage.
	skills := []string{}
	last := -1
	for _, s := range roleSkills["Software Engineer"] {
		skills = append(skills, s)
		pct := Analyze(skills, "Software Engineer").MatchPct
		if pct < last {
			t.Fatalf("match dropped from %d to %d after adding %q", last, pct, s)
		}
		last = pct
	}
	if last != 100 {
		t.Errorf("full skill set gives %d, want 100", last)
	}
}

func TestResourceForFallbacks(t *testing.T) {
	// Curated resource wins.
	res := resourceFor("Docker")
	if res.Platform != "Docker Docs" {
		t.Errorf("resourceFor(Docker).Platform = %q, want Docker Docs", res.Platform)
	}

	// Fallback table, matched case-insensitively.
	res = resourceFor("Spring Boot")
	if res.Platform != "Official Docs" || res.Hours != 10 {
		t.Errorf("resourceFor(Spring Boot) = %+v, want Official Docs / 10h", res)
	}
	if res.URL != "https://spring.io/guides/gs/spring-boot/" {
		t.Errorf("resourceFor(Spring Boot).URL = %q", res.URL)
	}

	// Last resort: a search URL with spaces encoded.
	res = resourceFor("Quantum Computing")
	if res.Platform != "GeeksforGeeks" {
		t.Errorf("resourceFor fallback platform = %q, want GeeksforGeeks", res.Platform)
	}
	if !strings.HasSuffix(res.URL, "q=Quantum+Computing") {
		t.Errorf("resourceFor fallback URL = %q", res.URL)
	}
}

func TestRolesStable(t *testing.T) {
	roles := (&SkillGapService{}).Roles()
	if len(roles) != 5 {
		t.Fatalf("Roles() returned %d roles, want 5", len(roles))
	}
	for i := 1; i < len(roles); i++ {
		if roles[i-1] >= roles[i] {
			t.Errorf("roles not sorted: %q before %q", roles[i-1], roles[i])
		}
	}
}
