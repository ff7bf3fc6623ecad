package core

import "time"

type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Industry  string    `json:"industry,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Employee struct {
	ID            string    `json:"id"`
	OrgID         string    `json:"orgId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Department    string    `json:"department"`
	Skills        []string  `json:"skills"`
	WalletAddress string    `json:"walletAddress,omitempty"`
	IsActive      bool      `json:"isActive"`
	JoinedAt      time.Time `json:"joinedAt"`

	// Aggregates populated by list/get queries, not stored columns.
	ActiveTasks    int `json:"activeTasks"`
	CompletedTasks int `json:"completedTasks"`
}

type Task struct {
	ID             string     `json:"id"`
	OrgID          string     `json:"orgId"`
	EmployeeID     string     `json:"employeeId,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	RequiredSkills []string   `json:"requiredSkills"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	// Opaque completion proof captured with a status change (e.g. a
	// transaction hash). Never interpreted.
	CompletionProof string    `json:"completionProof,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`

	// Joined display fields.
	EmployeeName string `json:"employeeName,omitempty"`
	EmployeeRole string `json:"employeeRole,omitempty"`
}
