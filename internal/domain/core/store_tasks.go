package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const taskColumns = `
  t.id, t.org_id, COALESCE(t.employee_id::text, ''), t.title, COALESCE(t.description, ''),
  t.required_skills, t.priority, t.status, t.due_date, t.completed_at,
  COALESCE(t.completion_proof, ''), t.created_at
`

type TaskFilter struct {
	// ScopeEmployeeID narrows visibility to one employee's tasks. It comes
	// from the principal, never from the request.
	ScopeEmployeeID string
	Status          string
	EmployeeID      string
}

func (s *Store) ListTasks(ctx context.Context, orgID string, filter TaskFilter) ([]Task, error) {
	query := `
    SELECT ` + taskColumns + `, COALESCE(e.name, ''), COALESCE(e.role, '')
    FROM tasks t
    LEFT JOIN employees e ON t.employee_id = e.id
    WHERE t.org_id = $1
  `
	args := []any{orgID}

	if filter.ScopeEmployeeID != "" {
		args = append(args, filter.ScopeEmployeeID)
		query += fmt.Sprintf(" AND t.employee_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND t.status = $%d", len(args))
	}
	if filter.EmployeeID != "" && filter.ScopeEmployeeID == "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND t.employee_id = $%d", len(args))
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var task Task
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

// AllTasks returns every task in the organization, for scoring and
// recommendation snapshots.
func (s *Store) AllTasks(ctx context.Context, orgID string) ([]Task, error) {
	return s.ListTasks(ctx, orgID, TaskFilter{})
}

func (s *Store) GetTask(ctx context.Context, orgID, scopeEmployeeID, taskID string) (Task, error) {
	query := `
    SELECT ` + taskColumns + `, COALESCE(e.name, ''), COALESCE(e.role, '')
    FROM tasks t
    LEFT JOIN employees e ON t.employee_id = e.id
    WHERE t.org_id = $1 AND t.id = $2
  `
	args := []any{orgID, taskID}
	if scopeEmployeeID != "" {
		args = append(args, scopeEmployeeID)
		query += " AND t.employee_id = $3"
	}

	var task Task
	err := s.DB.QueryRow(ctx, query, args...).Scan(
		&task.ID, &task.OrgID, &task.EmployeeID, &task.Title, &task.Description,
		&task.RequiredSkills, &task.Priority, &task.Status, &task.DueDate, &task.CompletedAt,
		&task.CompletionProof, &task.CreatedAt, &task.EmployeeName, &task.EmployeeRole,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	return task, err
}

func (s *Store) CreateTask(ctx context.Context, orgID string, task Task) (Task, error) {
	skills := task.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	var created Task
	err := s.DB.QueryRow(ctx, `
    INSERT INTO tasks (org_id, employee_id, title, description, required_skills, priority, due_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING `+strippedTaskColumns(), orgID, nullIfEmpty(task.EmployeeID), task.Title, nullIfEmpty(task.Description),
		skills, task.Priority, task.DueDate).Scan(
		&created.ID, &created.OrgID, &created.EmployeeID, &created.Title, &created.Description,
		&created.RequiredSkills, &created.Priority, &created.Status, &created.DueDate, &created.CompletedAt,
		&created.CompletionProof, &created.CreatedAt,
	)
	return created, err
}

func (s *Store) UpdateTask(ctx context.Context, orgID, taskID string, task Task) (Task, error) {
	skills := task.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	var updated Task
	err := s.DB.QueryRow(ctx, `
    UPDATE tasks
    SET employee_id = $1,
        title = $2,
        description = $3,
        required_skills = $4,
        priority = $5,
        due_date = $6
    WHERE org_id = $7 AND id = $8
    RETURNING `+strippedTaskColumns(), nullIfEmpty(task.EmployeeID), task.Title, nullIfEmpty(task.Description),
		skills, task.Priority, task.DueDate, orgID, taskID).Scan(
		&updated.ID, &updated.OrgID, &updated.EmployeeID, &updated.Title, &updated.Description,
		&updated.RequiredSkills, &updated.Priority, &updated.Status, &updated.DueDate, &updated.CompletedAt,
		&updated.CompletionProof, &updated.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	return updated, err
}

// UpdateTaskStatus changes the status within the caller's scope, keeping the
// completed_at invariant and capturing an opaque completion proof.
func (s *Store) UpdateTaskStatus(ctx context.Context, orgID, scopeEmployeeID, taskID, status, proof string, now time.Time) (Task, error) {
	query := `
    UPDATE tasks
    SET status = $1, completed_at = $2, completion_proof = $3
    WHERE org_id = $4 AND id = $5
  `
	args := []any{status, CompletionTime(status, now), nullIfEmpty(proof), orgID, taskID}
	if scopeEmployeeID != "" {
		args = append(args, scopeEmployeeID)
		query += " AND employee_id = $6"
	}
	query += " RETURNING " + strippedTaskColumns()

	var updated Task
	err := s.DB.QueryRow(ctx, query, args...).Scan(
		&updated.ID, &updated.OrgID, &updated.EmployeeID, &updated.Title, &updated.Description,
		&updated.RequiredSkills, &updated.Priority, &updated.Status, &updated.DueDate, &updated.CompletedAt,
		&updated.CompletionProof, &updated.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	return updated, err
}

func (s *Store) DeleteTask(ctx context.Context, orgID, taskID string) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM tasks WHERE org_id = $1 AND id = $2", orgID, taskID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func strippedTaskColumns() string {
	return `
    id, org_id, COALESCE(employee_id::text, ''), title, COALESCE(description, ''),
    required_skills, priority, status, due_date, completed_at,
    COALESCE(completion_proof, ''), created_at
  `
}
