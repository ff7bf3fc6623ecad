package insights

import (
	"testing"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
)

func TestDetectSkillGapDesigner(t *testing.T) {
	emp := core.Employee{Role: "Designer", Skills: []string{"Figma", "css"}}

	gap := DetectSkillGap(emp)
	if len(gap.Required) != 5 {
		t.Fatalf("expected 5 required skills for Designer, got %v", gap.Required)
	}

	expectedMissing := []string{"UI/UX", "Prototyping", "User Research"}
	if len(gap.Missing) != len(expectedMissing) {
		t.Fatalf("expected missing %v, got %v", expectedMissing, gap.Missing)
	}
	for i, skill := range expectedMissing {
		if gap.Missing[i] != skill {
			t.Fatalf("expected missing %v, got %v", expectedMissing, gap.Missing)
		}
	}
	if gap.CoveragePercent != 40 {
		t.Fatalf("expected 40%% coverage, got %d", gap.CoveragePercent)
	}
}

func TestDetectSkillGapCaseInsensitive(t *testing.T) {
	gap := DetectSkillGap(core.Employee{Role: "Designer", Skills: []string{"FIGMA"}})
	for _, missing := range gap.Missing {
		if missing == "Figma" {
			t.Fatal("uppercase declared skill should satisfy Figma")
		}
	}
}

func TestDetectSkillGapBidirectionalSubstring(t *testing.T) {
	// Declared "AWS" is a substring of the required cloud label.
	gap := DetectSkillGap(core.Employee{Role: "DevOps Engineer", Skills: []string{"aws"}})
	for _, missing := range gap.Missing {
		if missing == "Cloud (AWS/GCP/Azure)" {
			t.Fatal("declared substring should satisfy the longer required label")
		}
	}

	// Declared "Advanced JavaScript Frameworks" contains required "JavaScript".
	gap = DetectSkillGap(core.Employee{Role: "Software Engineer", Skills: []string{"Advanced JavaScript Frameworks"}})
	for _, missing := range gap.Missing {
		if missing == "JavaScript" {
			t.Fatal("required label inside declared skill should match")
		}
	}
}

func TestDetectSkillGapUnknownRole(t *testing.T) {
	gap := DetectSkillGap(core.Employee{Role: "Astronaut", Skills: []string{"Orbital Mechanics"}})
	if gap.CoveragePercent != 100 {
		t.Fatalf("unknown role should have full coverage by convention, got %d", gap.CoveragePercent)
	}
	if len(gap.Required) != 0 || len(gap.Missing) != 0 {
		t.Fatalf("unknown role should have empty required/missing, got %+v", gap)
	}
	if len(gap.Has) != 1 || gap.Has[0] != "Orbital Mechanics" {
		t.Fatalf("declared skills must pass through unmodified, got %v", gap.Has)
	}
}

func TestDetectSkillGapNoDeclaredSkills(t *testing.T) {
	gap := DetectSkillGap(core.Employee{Role: "Manager"})
	if gap.CoveragePercent != 0 {
		t.Fatalf("no declared skills should yield 0 coverage, got %d", gap.CoveragePercent)
	}
	if len(gap.Missing) != len(RoleSkills["Manager"]) {
		t.Fatalf("every required skill should be missing, got %v", gap.Missing)
	}
	if gap.Has == nil || len(gap.Has) != 0 {
		t.Fatalf("has must be an empty slice, got %#v", gap.Has)
	}
}

func TestDetectSkillGapFullCoverage(t *testing.T) {
	emp := core.Employee{Role: "Manager", Skills: RoleSkills["Manager"]}
	gap := DetectSkillGap(emp)
	if gap.CoveragePercent != 100 || len(gap.Missing) != 0 {
		t.Fatalf("expected full coverage, got %+v", gap)
	}
}

func TestRoleSkillsCatalog(t *testing.T) {
	if len(RoleSkills) < 10 {
		t.Fatalf("expected at least ten roles in the catalog, got %d", len(RoleSkills))
	}
	for role, skills := range RoleSkills {
		if len(skills) == 0 {
			t.Fatalf("role %s has no expected skills", role)
		}
	}
}

func TestCoverageBounds(t *testing.T) {
	for role := range RoleSkills {
		gap := DetectSkillGap(core.Employee{Role: role, Skills: []string{"completely unrelated"}})
		if gap.CoveragePercent < 0 || gap.CoveragePercent > 100 {
			t.Fatalf("coverage out of bounds for %s: %d", role, gap.CoveragePercent)
		}
	}
}
