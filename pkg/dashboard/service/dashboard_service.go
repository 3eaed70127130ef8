package service

import (
	"context"

	"farmdash/entities"
	"farmdash/pkg/page"
)

type Stats struct {
	ActiveCrops  int     `json:"activeCrops"`
	PendingTasks int     `json:"pendingTasks"`
	WeekExpenses float64 `json:"weekExpenses"`
	MonthIncome  float64 `json:"monthIncome"`
}

type Upcoming struct {
	entities.Task
	Overdue bool `json:"overdue"`
}

type View struct {
	Stats    Stats             `json:"stats"`
	Upcoming []Upcoming        `json:"upcoming"`
	Weather  *entities.Weather `json:"weather"`
}

type DashboardService interface {
	// Load (re)reads the working set; every page read calls it.
	Load(ctx context.Context) error
	Status() page.Status
	View() View
	ToggleComplete(ctx context.Context, id int) (entities.Task, error)
}
