package insights

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
)

// TaskSpec is the shape of a task being staffed; it may not be persisted yet.
type TaskSpec struct {
	Title          string   `json:"title"`
	RequiredSkills []string `json:"requiredSkills"`
}

type RecommendationBreakdown struct {
	SkillScore    int `json:"skillScore"`
	WorkloadScore int `json:"workloadScore"`
	ProdContrib   int `json:"prodContrib"`
}

type Recommendation struct {
	Employee      core.Employee           `json:"employee"`
	TotalScore    int                     `json:"totalScore"`
	MatchedSkills []string                `json:"matchedSkills"`
	ActiveTasks   int                     `json:"activeTasks"`
	Breakdown     RecommendationBreakdown `json:"breakdown"`
}

// RecommendForTask ranks active employees for a task by skill match (50),
// current workload (30), and productivity (20). Inactive employees are not
// candidates; an empty candidate list yields an empty ranking.
func RecommendForTask(task TaskSpec, employees []core.Employee, allTasks []core.Task) []Recommendation {
	return RecommendForTaskAt(task, employees, allTasks, time.Now())
}

func RecommendForTaskAt(task TaskSpec, employees []core.Employee, allTasks []core.Task, now time.Time) []Recommendation {
	out := []Recommendation{}
	for _, emp := range employees {
		if !emp.IsActive {
			continue
		}

		empTasks := tasksFor(allTasks, emp.ID)
		activeTasks := 0
		for _, t := range empTasks {
			if t.Status != core.TaskStatusCompleted {
				activeTasks++
			}
		}

		declared := normalizeSkills(emp.Skills)
		matched := []string{}
		for _, req := range task.RequiredSkills {
			if skillMatched(declared, strings.ToLower(req)) {
				matched = append(matched, req)
			}
		}

		skillScore := 50.0
		if len(task.RequiredSkills) > 0 {
			skillScore = float64(len(matched)) / float64(len(task.RequiredSkills)) * 50
		}
		workloadScore := math.Max(0, float64(30-activeTasks*6))
		prodScore := ScoreProductivityAt(empTasks, now).Score
		prodContrib := float64(prodScore) / 100 * 20

		out = append(out, Recommendation{
			Employee:      emp,
			TotalScore:    int(math.Round(skillScore + workloadScore + prodContrib)),
			MatchedSkills: matched,
			ActiveTasks:   activeTasks,
			Breakdown: RecommendationBreakdown{
				SkillScore:    int(math.Round(skillScore)),
				WorkloadScore: int(math.Round(workloadScore)),
				ProdContrib:   int(math.Round(prodContrib)),
			},
		})
	}

	// Deterministic ordering: highest total first, then lighter workload,
	// then employee id.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalScore != out[j].TotalScore {
			return out[i].TotalScore > out[j].TotalScore
		}
		if out[i].ActiveTasks != out[j].ActiveTasks {
			return out[i].ActiveTasks < out[j].ActiveTasks
		}
		return out[i].Employee.ID < out[j].Employee.ID
	})
	return out
}

func tasksFor(tasks []core.Task, employeeID string) []core.Task {
	var out []core.Task
	for _, task := range tasks {
		if task.EmployeeID == employeeID {
			out = append(out, task)
		}
	}
	return out
}
