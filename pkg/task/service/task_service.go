package service

import (
	"context"

	"farmdash/entities"
	"farmdash/pkg/page"
)

// Task status filter values.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Filter struct {
	Search   string            `query:"search"`
	Priority entities.Priority `query:"priority"`
	Status   string            `query:"status"` // pending|completed
}

// Row is a task as listed.
type Row struct {
	entities.Task
	Overdue   bool   `json:"overdue"`
	FarmName  string `json:"farmName"`
	CropLabel string `json:"cropLabel,omitempty"`
}

type View struct {
	Tasks           []Row             `json:"tasks"`
	Shown           int               `json:"shown"`
	Total           int               `json:"total"`
	FarmOptions     []entities.Option `json:"farmOptions"`
	CropOptions     []entities.Option `json:"cropOptions"`
	PriorityOptions []entities.Option `json:"priorityOptions"`
	StatusOptions   []entities.Option `json:"statusOptions"`
}

type TaskService interface {
	// Load (re)reads the working set; every page read calls it.
	Load(ctx context.Context) error
	Status() page.Status
	// View filters and sorts: incomplete tasks first, then by due date.
	View(f Filter) View
	// SubmitCreate always creates an incomplete task.
	SubmitCreate(ctx context.Context, form entities.TaskForm) (entities.Task, error)
	// SubmitUpdate keeps the stored task's completion.
	SubmitUpdate(ctx context.Context, id int, form entities.TaskForm) (entities.Task, error)
	ToggleComplete(ctx context.Context, id int) (entities.Task, error)
	Remove(ctx context.Context, id int, confirmed bool) error
}
