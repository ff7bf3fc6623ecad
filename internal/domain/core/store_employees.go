package core

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const employeeColumns = `
  e.id, e.org_id, e.name, e.email, e.role, e.department, e.skills,
  COALESCE(e.wallet_address, ''), e.is_active, e.joined_at
`

const employeeTaskCounts = `
  (SELECT COUNT(*) FROM tasks t WHERE t.employee_id = e.id AND t.status != 'Completed') AS active_tasks,
  (SELECT COUNT(*) FROM tasks t WHERE t.employee_id = e.id AND t.status = 'Completed') AS completed_tasks
`

func (s *Store) ListEmployees(ctx context.Context, orgID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`, `+employeeTaskCounts+`
    FROM employees e
    WHERE e.org_id = $1
    ORDER BY e.joined_at DESC
  `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(
			&emp.ID, &emp.OrgID, &emp.Name, &emp.Email, &emp.Role, &emp.Department, &emp.Skills,
			&emp.WalletAddress, &emp.IsActive, &emp.JoinedAt, &emp.ActiveTasks, &emp.CompletedTasks,
		); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

// ListActiveEmployees returns candidates for assignment recommendation.
func (s *Store) ListActiveEmployees(ctx context.Context, orgID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees e
    WHERE e.org_id = $1 AND e.is_active = TRUE
    ORDER BY e.name
  `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(
			&emp.ID, &emp.OrgID, &emp.Name, &emp.Email, &emp.Role, &emp.Department, &emp.Skills,
			&emp.WalletAddress, &emp.IsActive, &emp.JoinedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, orgID, employeeID string) (Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`, `+employeeTaskCounts+`
    FROM employees e
    WHERE e.org_id = $1 AND e.id = $2
  `, orgID, employeeID).Scan(
		&emp.ID, &emp.OrgID, &emp.Name, &emp.Email, &emp.Role, &emp.Department, &emp.Skills,
		&emp.WalletAddress, &emp.IsActive, &emp.JoinedAt, &emp.ActiveTasks, &emp.CompletedTasks,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

// EmployeeForLogin looks up an active employee by email together with its
// credential hash. Employees without a credential cannot log in.
func (s *Store) EmployeeForLogin(ctx context.Context, email string) (Employee, string, string, error) {
	var emp Employee
	var hash, orgName string
	err := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`, COALESCE(e.password_hash, ''), o.name
    FROM employees e
    JOIN organizations o ON o.id = e.org_id
    WHERE e.email = $1 AND e.is_active = TRUE
  `, email).Scan(
		&emp.ID, &emp.OrgID, &emp.Name, &emp.Email, &emp.Role, &emp.Department, &emp.Skills,
		&emp.WalletAddress, &emp.IsActive, &emp.JoinedAt, &hash, &orgName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, "", "", ErrNotFound
	}
	if err != nil {
		return Employee{}, "", "", err
	}
	return emp, hash, orgName, nil
}

func (s *Store) EmployeeExists(ctx context.Context, orgID, employeeID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE org_id = $1 AND id = $2", orgID, employeeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateEmployee(ctx context.Context, orgID string, emp Employee, passwordHash string) (Employee, error) {
	skills := emp.Skills
	if skills == nil {
		skills = []string{}
	}
	var created Employee
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (org_id, name, email, password_hash, role, department, skills, wallet_address)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id, org_id, name, email, role, department, skills, COALESCE(wallet_address, ''), is_active, joined_at
  `, orgID, emp.Name, emp.Email, nullIfEmpty(passwordHash), emp.Role, emp.Department, skills, nullIfEmpty(emp.WalletAddress)).Scan(
		&created.ID, &created.OrgID, &created.Name, &created.Email, &created.Role, &created.Department,
		&created.Skills, &created.WalletAddress, &created.IsActive, &created.JoinedAt,
	)
	return created, err
}

func (s *Store) UpdateEmployee(ctx context.Context, orgID, employeeID string, emp Employee, passwordHash string) (Employee, error) {
	skills := emp.Skills
	if skills == nil {
		skills = []string{}
	}
	var updated Employee
	err := s.DB.QueryRow(ctx, `
    UPDATE employees
    SET name = $1,
        email = $2,
        role = $3,
        department = $4,
        skills = $5,
        wallet_address = $6,
        is_active = $7,
        password_hash = COALESCE($8, password_hash)
    WHERE org_id = $9 AND id = $10
    RETURNING id, org_id, name, email, role, department, skills, COALESCE(wallet_address, ''), is_active, joined_at
  `, emp.Name, emp.Email, emp.Role, emp.Department, skills, nullIfEmpty(emp.WalletAddress), emp.IsActive,
		nullIfEmpty(passwordHash), orgID, employeeID).Scan(
		&updated.ID, &updated.OrgID, &updated.Name, &updated.Email, &updated.Role, &updated.Department,
		&updated.Skills, &updated.WalletAddress, &updated.IsActive, &updated.JoinedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return updated, err
}

// DeleteEmployee removes the employee; assigned tasks are detached, not
// deleted (employee_id FK is ON DELETE SET NULL).
func (s *Store) DeleteEmployee(ctx context.Context, orgID, employeeID string) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE org_id = $1 AND id = $2", orgID, employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
