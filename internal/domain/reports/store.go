package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type EmployeeCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type TaskCounts struct {
	Total      int `json:"total"`
	Assigned   int `json:"assigned"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

type TopPerformer struct {
	EmployeeID     string  `json:"employeeId"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Completed      int     `json:"completed"`
	Total          int     `json:"total"`
	CompletionRate float64 `json:"completionRate"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Employees  int    `json:"employees"`
}

func (s *Store) EmployeeCounts(ctx context.Context, orgID string) (EmployeeCounts, error) {
	var counts EmployeeCounts
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1), COUNT(1) FILTER (WHERE is_active)
    FROM employees
    WHERE org_id = $1
  `, orgID).Scan(&counts.Total, &counts.Active)
	return counts, err
}

func (s *Store) TaskCounts(ctx context.Context, orgID string, now time.Time) (TaskCounts, error) {
	var counts TaskCounts
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1),
           COUNT(1) FILTER (WHERE status = $2),
           COUNT(1) FILTER (WHERE status = $3),
           COUNT(1) FILTER (WHERE status = $4),
           COUNT(1) FILTER (WHERE status != $4 AND due_date IS NOT NULL AND due_date < $5)
    FROM tasks
    WHERE org_id = $1
  `, orgID, core.TaskStatusAssigned, core.TaskStatusInProgress, core.TaskStatusCompleted, now).Scan(
		&counts.Total, &counts.Assigned, &counts.InProgress, &counts.Completed, &counts.Overdue,
	)
	return counts, err
}

// TopPerformers ranks employees by completed-task share, limited to those
// with at least one task.
func (s *Store) TopPerformers(ctx context.Context, orgID string, limit int) ([]TopPerformer, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.id, e.name, e.role,
           COUNT(t.id) FILTER (WHERE t.status = $2) AS completed,
           COUNT(t.id) AS total
    FROM employees e
    JOIN tasks t ON t.employee_id = e.id
    WHERE e.org_id = $1
    GROUP BY e.id, e.name, e.role
    ORDER BY COUNT(t.id) FILTER (WHERE t.status = $2)::float / COUNT(t.id) DESC, e.name
    LIMIT $3
  `, orgID, core.TaskStatusCompleted, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TopPerformer{}
	for rows.Next() {
		var row TopPerformer
		if err := rows.Scan(&row.EmployeeID, &row.Name, &row.Role, &row.Completed, &row.Total); err != nil {
			return nil, err
		}
		if row.Total > 0 {
			row.CompletionRate = float64(row.Completed) / float64(row.Total) * 100
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) RecentTasks(ctx context.Context, orgID string, limit int) ([]core.Task, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT t.id, t.org_id, COALESCE(t.employee_id::text, ''), t.title, COALESCE(t.description, ''),
           t.required_skills, t.priority, t.status, t.due_date, t.completed_at,
           COALESCE(t.completion_proof, ''), t.created_at,
           COALESCE(e.name, ''), COALESCE(e.role, '')
    FROM tasks t
    LEFT JOIN employees e ON t.employee_id = e.id
    WHERE t.org_id = $1
    ORDER BY t.created_at DESC
    LIMIT $2
  `, orgID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []core.Task{}
	for rows.Next() {
		var task core.Task
		if err := rows.Scan(
			&task.ID, &task.OrgID, &task.EmployeeID, &task.Title, &task.Description,
			&task.RequiredSkills, &task.Priority, &task.Status, &task.DueDate, &task.CompletedAt,
			&task.CompletionProof, &task.CreatedAt, &task.EmployeeName, &task.EmployeeRole,
		); err != nil {
			return nil, err
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (s *Store) DepartmentBreakdown(ctx context.Context, orgID string) ([]DepartmentCount, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT COALESCE(NULLIF(department, ''), 'Unassigned'), COUNT(1)
    FROM employees
    WHERE org_id = $1
    GROUP BY 1
    ORDER BY COUNT(1) DESC, 1
  `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DepartmentCount{}
	for rows.Next() {
		var row DepartmentCount
		if err := rows.Scan(&row.Department, &row.Employees); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
