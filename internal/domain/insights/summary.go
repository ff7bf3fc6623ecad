package insights

import (
	"context"
	"fmt"
	"strings"
)

// Summarizer produces an optional natural-language summary. Absence (ok ==
// false) is the only failure mode; numeric results never depend on it.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, bool)
}

const promptRowLimit = 10

func ProductivityPrompt(rows []EmployeeScore) string {
	lines := make([]string, 0, promptRowLimit)
	for i, row := range rows {
		if i >= promptRowLimit {
			break
		}
		lines = append(lines, fmt.Sprintf("%s (%s): score=%d, grade=%s, completed=%d/%d, overdue=%d",
			row.Name, row.Role, row.Score, row.Grade, row.Stats.Completed, row.Stats.Total, row.Stats.Overdue))
	}

	return fmt.Sprintf(`You are an HR analytics AI assistant. Based on these employee productivity scores, write a brief team performance summary (3-4 sentences). Be specific, mention names, and give one actionable recommendation.

Employee Data:
%s

Keep it professional but conversational. No markdown formatting, just plain text.`, strings.Join(lines, "\n"))
}

func SkillGapPrompt(rows []EmployeeGap) string {
	lines := make([]string, 0, promptRowLimit)
	for i, row := range rows {
		if i >= promptRowLimit {
			break
		}
		lines = append(lines, fmt.Sprintf("%s (%s): has=[%s], missing=[%s], coverage=%d%%",
			row.Name, row.Role, strings.Join(row.Skills, ", "), strings.Join(row.Gap.Missing, ", "), row.Gap.CoveragePercent))
	}

	return fmt.Sprintf(`You are an HR analytics AI assistant. Based on these skill gap results, write a brief summary (3-4 sentences). Highlight the biggest gaps, suggest training priorities, and mention which employees need the most attention.

Skill Data:
%s

Keep it professional but conversational. No markdown formatting, just plain text.`, strings.Join(lines, "\n"))
}

func AssignmentPrompt(task TaskSpec, recommendations []Recommendation) string {
	lines := make([]string, 0, 3)
	for i, rec := range recommendations {
		if i >= 3 {
			break
		}
		matched := strings.Join(rec.MatchedSkills, ", ")
		if matched == "" {
			matched = "none"
		}
		lines = append(lines, fmt.Sprintf("%s (%s): score=%d, skills matched=%s, active tasks=%d",
			rec.Employee.Name, rec.Employee.Role, rec.TotalScore, matched, rec.ActiveTasks))
	}

	return fmt.Sprintf(`You are an HR analytics AI assistant. A new task %q needs to be assigned. Based on the ranking below, explain in 2-3 sentences why the top candidate is the best fit and any concerns about the others.

Top Candidates:
%s

Keep it professional but conversational. No markdown formatting, just plain text.`, task.Title, strings.Join(lines, "\n"))
}
