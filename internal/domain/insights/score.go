package insights

import (
	"math"
	"time"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
)

const (
	overduePenaltyPerTask = 5
	maxOverduePenalty     = 20
)

type ScoreBreakdown struct {
	Base           int `json:"base"`
	SpeedBonus     int `json:"speedBonus"`
	OverduePenalty int `json:"overduePenalty"`
}

type ScoreStats struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	Overdue         int `json:"overdue"`
	CompletedOnTime int `json:"completedOnTime"`
}

type ScoreResult struct {
	Score     int            `json:"score"`
	Grade     string         `json:"grade"`
	Insight   string         `json:"insight"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Stats     ScoreStats     `json:"stats"`
}

// ScoreProductivity grades an employee's task history. An empty history is a
// defined result ("N/A"), not an error.
func ScoreProductivity(tasks []core.Task) ScoreResult {
	return ScoreProductivityAt(tasks, time.Now())
}

func ScoreProductivityAt(tasks []core.Task, now time.Time) ScoreResult {
	if len(tasks) == 0 {
		return ScoreResult{
			Score:   0,
			Grade:   "N/A",
			Insight: "No tasks assigned yet.",
		}
	}

	stats := ScoreStats{Total: len(tasks)}
	for _, task := range tasks {
		completed := task.Status == core.TaskStatusCompleted
		if completed {
			stats.Completed++
		}
		if task.DueDate != nil && task.DueDate.Before(now) && !completed {
			stats.Overdue++
		}
		if completed && task.DueDate != nil && task.CompletedAt != nil && !task.CompletedAt.After(*task.DueDate) {
			stats.CompletedOnTime++
		}
	}

	base := float64(stats.Completed) / float64(stats.Total) * 100
	speedBonus := 0.0
	if stats.Completed > 0 {
		speedBonus = float64(stats.CompletedOnTime) / float64(stats.Completed) * 10
	}
	penalty := stats.Overdue * overduePenaltyPerTask
	if penalty > maxOverduePenalty {
		penalty = maxOverduePenalty
	}

	raw := base + speedBonus - float64(penalty)
	score := int(math.Round(math.Max(0, math.Min(100, raw))))

	grade, insight := gradeFor(score)
	return ScoreResult{
		Score:   score,
		Grade:   grade,
		Insight: insight,
		Breakdown: ScoreBreakdown{
			Base:           int(math.Round(base)),
			SpeedBonus:     int(math.Round(speedBonus)),
			OverduePenalty: penalty,
		},
		Stats: stats,
	}
}

func gradeFor(score int) (string, string) {
	switch {
	case score >= 85:
		return "A", "Exceptional performer. Consistently delivers on time."
	case score >= 70:
		return "B", "Solid performer with minor room for improvement."
	case score >= 50:
		return "C", "Average — task completion speed needs work."
	case score >= 30:
		return "D", "Below average, consider workload rebalancing."
	default:
		return "F", "Critical: very low completion or lots of overdue tasks."
	}
}
