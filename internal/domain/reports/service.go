package reports

import (
	"context"
	"time"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
)

const (
	topPerformerLimit = 5
	recentTaskLimit   = 5
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type Dashboard struct {
	Employees     EmployeeCounts    `json:"employees"`
	Tasks         TaskCounts        `json:"tasks"`
	TopPerformers []TopPerformer    `json:"topPerformers"`
	RecentTasks   []core.Task       `json:"recentTasks"`
	Departments   []DepartmentCount `json:"departments"`
}

// Dashboard assembles the admin overview in one call.
func (s *Service) Dashboard(ctx context.Context, orgID string, now time.Time) (Dashboard, error) {
	employees, err := s.Store.EmployeeCounts(ctx, orgID)
	if err != nil {
		return Dashboard{}, err
	}
	tasks, err := s.Store.TaskCounts(ctx, orgID, now)
	if err != nil {
		return Dashboard{}, err
	}
	top, err := s.Store.TopPerformers(ctx, orgID, topPerformerLimit)
	if err != nil {
		return Dashboard{}, err
	}
	recent, err := s.Store.RecentTasks(ctx, orgID, recentTaskLimit)
	if err != nil {
		return Dashboard{}, err
	}
	departments, err := s.Store.DepartmentBreakdown(ctx, orgID)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Employees:     employees,
		Tasks:         tasks,
		TopPerformers: top,
		RecentTasks:   recent,
		Departments:   departments,
	}, nil
}
