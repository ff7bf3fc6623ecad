package auth

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Principal is a verified session identity. Admins are scoped to one
// organization; employees additionally to their own employee id.
type Principal struct {
	PrincipalID    string
	OrganizationID string
	Role           string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsEmployee() bool {
	return p.Role == RoleEmployee
}

// TaskScope returns the employee id task queries must be narrowed to.
// Empty means every task in the organization is visible.
func (p Principal) TaskScope() string {
	if p.Role == RoleEmployee {
		return p.PrincipalID
	}
	return ""
}

// CanManageTasks reports whether the principal may create, edit, or delete
// tasks and employees. Employees may only move status on their own tasks.
func (p Principal) CanManageTasks() bool {
	return p.Role == RoleAdmin
}

// CanUpdateTaskStatus reports whether the principal may change the status of
// a task assigned to the given employee id.
func (p Principal) CanUpdateTaskStatus(assignedEmployeeID string) bool {
	if p.Role == RoleAdmin {
		return true
	}
	return p.Role == RoleEmployee && assignedEmployeeID == p.PrincipalID
}
