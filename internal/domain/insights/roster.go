package insights

import (
	"sort"
	"time"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
)

// EmployeeScore is one roster row of the productivity report.
type EmployeeScore struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	IsActive   bool     `json:"isActive"`
	Skills     []string `json:"skills"`
	ScoreResult
}

// EmployeeGap is one roster row of the skill-gap report.
type EmployeeGap struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Skills     []string  `json:"skills"`
	Gap        GapResult `json:"gap"`
}

// ScoreRoster scores every employee over its own tasks and returns the rows
// sorted by score, highest first.
func ScoreRoster(employees []core.Employee, allTasks []core.Task, now time.Time) []EmployeeScore {
	out := make([]EmployeeScore, 0, len(employees))
	for _, emp := range employees {
		out = append(out, EmployeeScore{
			ID:          emp.ID,
			Name:        emp.Name,
			Role:        emp.Role,
			Department:  emp.Department,
			IsActive:    emp.IsActive,
			Skills:      emp.Skills,
			ScoreResult: ScoreProductivityAt(tasksFor(allTasks, emp.ID), now),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func GapRoster(employees []core.Employee) []EmployeeGap {
	out := make([]EmployeeGap, 0, len(employees))
	for _, emp := range employees {
		out = append(out, EmployeeGap{
			ID:         emp.ID,
			Name:       emp.Name,
			Role:       emp.Role,
			Department: emp.Department,
			Skills:     emp.Skills,
			Gap:        DetectSkillGap(emp),
		})
	}
	return out
}
