package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
)

func TestScoreRosterSortedByScore(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	due := now.Add(24 * time.Hour)
	employees := []core.Employee{
		{ID: "e1", Name: "Ana", Role: "Analyst"},
		{ID: "e2", Name: "Ben", Role: "Manager"},
	}
	tasks := []core.Task{
		{EmployeeID: "e2", Status: core.TaskStatusCompleted, DueDate: timePtr(due), CompletedAt: timePtr(now)},
		{EmployeeID: "e1", Status: core.TaskStatusAssigned},
	}

	rows := ScoreRoster(employees, tasks, now)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != "e2" || rows[0].Score != 100 {
		t.Fatalf("expected Ben on top with 100, got %+v", rows[0])
	}
	if rows[1].Grade != "F" {
		t.Fatalf("expected F for zero completion, got %s", rows[1].Grade)
	}
}

func TestGapRosterCarriesGapPerEmployee(t *testing.T) {
	rows := GapRoster([]core.Employee{
		{ID: "e1", Name: "Ana", Role: "Designer", Skills: []string{"Figma"}},
		{ID: "e2", Name: "Ben", Role: "Unknown Role"},
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Gap.CoveragePercent != 20 {
		t.Fatalf("expected 20%% coverage for one of five skills, got %d", rows[0].Gap.CoveragePercent)
	}
	if rows[1].Gap.CoveragePercent != 100 {
		t.Fatalf("unknown role should report 100%% coverage, got %d", rows[1].Gap.CoveragePercent)
	}
}

func TestProductivityPromptMentionsEmployees(t *testing.T) {
	prompt := ProductivityPrompt([]EmployeeScore{
		{Name: "Ana", Role: "Analyst", ScoreResult: ScoreResult{Score: 91, Grade: "A", Stats: ScoreStats{Total: 10, Completed: 9}}},
	})
	if !strings.Contains(prompt, "Ana (Analyst): score=91, grade=A, completed=9/10, overdue=0") {
		t.Fatalf("prompt missing employee line:\n%s", prompt)
	}
}

func TestAssignmentPromptLimitsToTopThree(t *testing.T) {
	recs := []Recommendation{
		{Employee: core.Employee{Name: "A", Role: "r"}, TotalScore: 90},
		{Employee: core.Employee{Name: "B", Role: "r"}, TotalScore: 80},
		{Employee: core.Employee{Name: "C", Role: "r"}, TotalScore: 70},
		{Employee: core.Employee{Name: "D", Role: "r"}, TotalScore: 60},
	}
	prompt := AssignmentPrompt(TaskSpec{Title: "Ship it"}, recs)
	if !strings.Contains(prompt, `"Ship it"`) {
		t.Fatalf("prompt missing task title:\n%s", prompt)
	}
	if strings.Contains(prompt, "D (r)") {
		t.Fatalf("prompt should only include the top three candidates:\n%s", prompt)
	}
	if !strings.Contains(prompt, "skills matched=none") {
		t.Fatalf("empty matches should render as none:\n%s", prompt)
	}
}

func TestProductivityReportPDF(t *testing.T) {
	rows := []EmployeeScore{
		{Name: "Ana", Role: "Analyst", ScoreResult: ScoreResult{Score: 91, Grade: "A", Stats: ScoreStats{Total: 10, Completed: 9}}},
	}
	data, err := ProductivityReportPDF("Acme", rows, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("pdf error: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("expected PDF output, got %d bytes", len(data))
	}
}
