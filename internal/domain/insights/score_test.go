package insights

import (
	"testing"
	"time"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
)

var scoreNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

func completedTask(due, done time.Time) core.Task {
	return core.Task{Status: core.TaskStatusCompleted, DueDate: timePtr(due), CompletedAt: timePtr(done)}
}

func TestScoreEmptyTaskList(t *testing.T) {
	result := ScoreProductivityAt(nil, scoreNow)
	if result.Score != 0 || result.Grade != "N/A" {
		t.Fatalf("expected zero N/A result, got %+v", result)
	}
	if result.Insight != "No tasks assigned yet." {
		t.Fatalf("unexpected insight: %q", result.Insight)
	}
	if result.Breakdown != (ScoreBreakdown{}) || result.Stats != (ScoreStats{}) {
		t.Fatalf("expected zero breakdown and stats, got %+v", result)
	}
}

func TestScoreWorkedExample(t *testing.T) {
	// 10 tasks: 8 completed (6 on time), 2 overdue.
	// base=80, speedBonus=7.5, penalty=10 -> raw 77.5 -> 78.
	due := scoreNow.Add(-48 * time.Hour)
	var tasks []core.Task
	for i := 0; i < 6; i++ {
		tasks = append(tasks, completedTask(due, due.Add(-time.Hour)))
	}
	for i := 0; i < 2; i++ {
		tasks = append(tasks, completedTask(due, due.Add(time.Hour)))
	}
	for i := 0; i < 2; i++ {
		tasks = append(tasks, core.Task{Status: core.TaskStatusInProgress, DueDate: timePtr(due)})
	}

	result := ScoreProductivityAt(tasks, scoreNow)
	if result.Stats.Total != 10 || result.Stats.Completed != 8 || result.Stats.Overdue != 2 || result.Stats.CompletedOnTime != 6 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
	if result.Breakdown.Base != 80 || result.Breakdown.SpeedBonus != 8 || result.Breakdown.OverduePenalty != 10 {
		t.Fatalf("unexpected breakdown: %+v", result.Breakdown)
	}
	if result.Score != 78 {
		t.Fatalf("expected score 78 (80+7.5-10 rounded), got %d", result.Score)
	}
	if result.Grade != "B" {
		t.Fatalf("expected grade B, got %s", result.Grade)
	}
}

func TestScorePerfectPerformer(t *testing.T) {
	due := scoreNow.Add(24 * time.Hour)
	var tasks []core.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, completedTask(due, due.Add(-2*time.Hour)))
	}

	result := ScoreProductivityAt(tasks, scoreNow)
	if result.Score != 100 {
		t.Fatalf("expected clamp to 100 (base 100 + bonus 10), got %d", result.Score)
	}
	if result.Grade != "A" {
		t.Fatalf("expected grade A, got %s", result.Grade)
	}
}

func TestScoreGradeThresholds(t *testing.T) {
	cases := []struct {
		score int
		grade string
	}{
		{100, "A"}, {85, "A"}, {84, "B"}, {70, "B"}, {69, "C"},
		{50, "C"}, {49, "D"}, {30, "D"}, {29, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		grade, insight := gradeFor(tc.score)
		if grade != tc.grade {
			t.Fatalf("score %d: expected grade %s, got %s", tc.score, tc.grade, grade)
		}
		if insight == "" {
			t.Fatalf("score %d: missing insight text", tc.score)
		}
	}
}

func TestScoreOverduePenaltySaturates(t *testing.T) {
	past := scoreNow.Add(-time.Hour)
	overdueTask := core.Task{Status: core.TaskStatusAssigned, DueDate: timePtr(past)}
	onTime := completedTask(scoreNow.Add(time.Hour), scoreNow)

	previous := 101
	for overdue := 0; overdue <= 6; overdue++ {
		tasks := []core.Task{onTime, onTime, onTime, onTime}
		for i := 0; i < overdue; i++ {
			tasks = append(tasks, overdueTask)
		}
		result := ScoreProductivityAt(tasks, scoreNow)
		if result.Score > previous {
			t.Fatalf("score increased when overdue count grew to %d", overdue)
		}
		previous = result.Score
		if overdue >= 4 && result.Breakdown.OverduePenalty != maxOverduePenalty {
			t.Fatalf("expected penalty capped at %d for %d overdue, got %d", maxOverduePenalty, overdue, result.Breakdown.OverduePenalty)
		}
	}
}

func TestScoreBoundsAndClampAtZero(t *testing.T) {
	past := scoreNow.Add(-time.Hour)
	var tasks []core.Task
	for i := 0; i < 4; i++ {
		tasks = append(tasks, core.Task{Status: core.TaskStatusAssigned, DueDate: timePtr(past)})
	}

	result := ScoreProductivityAt(tasks, scoreNow)
	if result.Score != 0 {
		t.Fatalf("expected floor at 0 (base 0 - penalty 20), got %d", result.Score)
	}
	if result.Grade != "F" {
		t.Fatalf("expected grade F, got %s", result.Grade)
	}
}

func TestScoreCompletedTaskNeverOverdue(t *testing.T) {
	past := scoreNow.Add(-48 * time.Hour)
	tasks := []core.Task{completedTask(past, past.Add(72*time.Hour))}

	result := ScoreProductivityAt(tasks, scoreNow)
	if result.Stats.Overdue != 0 {
		t.Fatalf("completed tasks must not count as overdue: %+v", result.Stats)
	}
	if result.Stats.CompletedOnTime != 0 {
		t.Fatalf("late completion counted as on time: %+v", result.Stats)
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	due := scoreNow.Add(-24 * time.Hour)
	tasks := []core.Task{
		completedTask(due, due.Add(-time.Hour)),
		{Status: core.TaskStatusInProgress, DueDate: timePtr(due)},
		completedTask(due, due.Add(time.Hour)),
		{Status: core.TaskStatusAssigned},
	}
	reversed := make([]core.Task, len(tasks))
	for i, task := range tasks {
		reversed[len(tasks)-1-i] = task
	}

	a := ScoreProductivityAt(tasks, scoreNow)
	b := ScoreProductivityAt(reversed, scoreNow)
	if a != b {
		t.Fatalf("aggregation must be order independent: %+v vs %+v", a, b)
	}

	again := ScoreProductivityAt(tasks, scoreNow)
	if a != again {
		t.Fatalf("repeated calls must be identical: %+v vs %+v", a, again)
	}
}
