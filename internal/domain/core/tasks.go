package core

import "time"

const (
	TaskStatusAssigned   = "Assigned"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

var TaskStatuses = []string{TaskStatusAssigned, TaskStatusInProgress, TaskStatusCompleted}

func ValidTaskStatus(status string) bool {
	for _, candidate := range TaskStatuses {
		if status == candidate {
			return true
		}
	}
	return false
}

func ValidPriority(priority string) bool {
	return priority == PriorityLow || priority == PriorityMedium || priority == PriorityHigh
}

// CompletionTime keeps the completed_at invariant: non-nil exactly when the
// task moves to Completed, cleared on any back-transition.
func CompletionTime(status string, now time.Time) *time.Time {
	if status == TaskStatusCompleted {
		return &now
	}
	return nil
}
