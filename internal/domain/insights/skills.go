package insights

import (
	"math"
	"strings"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
)

// RoleSkills is the expected-skill catalog per role. Unknown roles map to an
// empty required list.
var RoleSkills = map[string][]string{
	"Software Engineer": {"JavaScript", "Git", "SQL", "REST APIs", "Testing"},
	"Senior Engineer":   {"JavaScript", "Git", "SQL", "REST APIs", "Testing", "System Design", "Code Review"},
	"Team Lead":         {"JavaScript", "Git", "System Design", "Code Review", "Project Management", "Communication"},
	"Manager":           {"Project Management", "Communication", "Leadership", "Budgeting", "Reporting"},
	"Designer":          {"Figma", "UI/UX", "Prototyping", "CSS", "User Research"},
	"Analyst":           {"SQL", "Excel", "Data Visualization", "Reporting", "Python"},
	"HR Manager":        {"Recruitment", "Onboarding", "Compliance", "Communication", "HRIS"},
	"Sales Rep":         {"CRM", "Communication", "Negotiation", "Product Knowledge", "Lead Generation"},
	"DevOps Engineer":   {"Docker", "Kubernetes", "CI/CD", "Linux", "Cloud (AWS/GCP/Azure)", "Monitoring"},
	"Data Scientist":    {"Python", "Machine Learning", "SQL", "Statistics", "Data Visualization", "TensorFlow"},
}

type GapResult struct {
	Required        []string `json:"required"`
	Missing         []string `json:"missing"`
	Has             []string `json:"has"`
	CoveragePercent int      `json:"coveragePercent"`
}

// DetectSkillGap compares declared skills against the role catalog. Matching
// is case-insensitive and substring-bidirectional: a declared skill counts
// when it contains the required label or the required label contains it.
func DetectSkillGap(emp core.Employee) GapResult {
	has := emp.Skills
	if has == nil {
		has = []string{}
	}

	required := RoleSkills[emp.Role]
	if len(required) == 0 {
		// No skills expected means full coverage by convention.
		return GapResult{Required: []string{}, Missing: []string{}, Has: has, CoveragePercent: 100}
	}

	declared := normalizeSkills(has)
	missing := []string{}
	for _, req := range required {
		if !skillMatched(declared, strings.ToLower(req)) {
			missing = append(missing, req)
		}
	}

	coverage := int(math.Round(float64(len(required)-len(missing)) / float64(len(required)) * 100))
	return GapResult{Required: required, Missing: missing, Has: has, CoveragePercent: coverage}
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		out = append(out, strings.ToLower(strings.TrimSpace(skill)))
	}
	return out
}

func skillMatched(declared []string, required string) bool {
	for _, skill := range declared {
		if strings.Contains(skill, required) || strings.Contains(required, skill) {
			return true
		}
	}
	return false
}
