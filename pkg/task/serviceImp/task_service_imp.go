package serviceImp

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"

	"farmdash/entities"
	"farmdash/pkg/logger"
	"farmdash/pkg/page"
	"farmdash/pkg/store"
	"farmdash/pkg/task/service"
)

const (
	loadFailed   = "Failed to load tasks"
	saveFailed   = "Failed to save task"
	toggleFailed = "Failed to update task"
	unknownFarm  = "Unknown Farm"
	unknownCrop  = "Unknown Crop"
)

type Option func(*taskSvc)

// WithClock overrides the time source used for overdue flags.
func WithClock(now func() time.Time) Option { return func(s *taskSvc) { s.now = now } }

type taskSvc struct {
	tasks    store.Adapter[entities.Task, entities.TaskForm]
	farms    store.Adapter[entities.Farm, entities.FarmForm]
	crops    store.Adapter[entities.Crop, entities.CropForm]
	items    *page.Collection[entities.Task]
	farmList *page.Collection[entities.Farm]
	cropList *page.Collection[entities.Crop]
	crud     *page.Crud[entities.Task, entities.TaskForm]
	life     page.Lifecycle
	now      func() time.Time
	log      *zap.Logger
}

func NewTaskService(
	tasks store.Adapter[entities.Task, entities.TaskForm],
	farms store.Adapter[entities.Farm, entities.FarmForm],
	crops store.Adapter[entities.Crop, entities.CropForm],
	lggr *zap.Logger,
	opts ...Option,
) service.TaskService {
	s := &taskSvc{
		tasks:    tasks,
		farms:    farms,
		crops:    crops,
		items:    page.NewCollection(func(t entities.Task) int { return t.ID }),
		farmList: page.NewCollection(func(f entities.Farm) int { return f.ID }),
		cropList: page.NewCollection(func(c entities.Crop) int { return c.ID }),
		now:      time.Now,
		log:      logger.Or(lggr).Named("page.tasks"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.crud = page.NewCrud(s.items, tasks, page.Messages{
		Created:      "Task created successfully!",
		Updated:      "Task updated successfully!",
		Deleted:      "Task deleted successfully!",
		SaveFailed:   saveFailed,
		DeleteFailed: "Failed to delete task",
	}, s.log)
	return s
}

func (s *taskSvc) load(ctx context.Context) error {
	var (
		tasks []entities.Task
		farms []entities.Farm
		crops []entities.Crop
	)
	err := page.LoadAll(ctx,
		page.Into(&tasks, s.tasks.List),
		page.Into(&farms, s.farms.List),
		page.Into(&crops, s.crops.List),
	)
	if err != nil {
		s.log.Error("load", zap.Error(err))
		return err
	}
	s.items.Set(tasks)
	s.farmList.Set(farms)
	s.cropList.Set(crops)
	return nil
}

func (s *taskSvc) Load(ctx context.Context) error { return s.life.Run(ctx, loadFailed, s.load) }
func (s *taskSvc) Status() page.Status            { return s.life.Status() }

func statusFilter(status string) func(entities.Task) bool {
	switch status {
	case service.StatusPending:
		return func(t entities.Task) bool { return !t.Completed }
	case service.StatusCompleted:
		return func(t entities.Task) bool { return t.Completed }
	}
	return func(entities.Task) bool { return true }
}

// Sort puts incomplete tasks first and orders each group by due date. Tasks
// with an unreadable due date sort last within their group.
func Sort(tasks []entities.Task) {
	due := func(t entities.Task) (time.Time, bool) {
		d, err := entities.ParseDate(t.DueDate)
		return d, err == nil
	}
	slices.SortStableFunc(tasks, func(a, b entities.Task) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		da, okA := due(a)
		db, okB := due(b)
		switch {
		case okA && okB:
			return da.Compare(db)
		case okA:
			return -1
		case okB:
			return 1
		}
		return cmp.Compare(a.DueDate, b.DueDate)
	})
}

func (s *taskSvc) View(f service.Filter) service.View {
	tasks := s.items.Snapshot()
	farms := s.farmList.Snapshot()
	crops := s.cropList.Snapshot()
	now := s.now()

	farmNames := make(map[int]string, len(farms))
	farmOpts := make([]entities.Option, 0, len(farms))
	for _, fm := range farms {
		farmNames[fm.ID] = fm.Name
		farmOpts = append(farmOpts, entities.Option{Value: strconv.Itoa(fm.ID), Label: fm.Name})
	}
	cropLabels := make(map[int]string, len(crops))
	cropOpts := make([]entities.Option, 0, len(crops))
	for _, c := range crops {
		cropLabels[c.ID] = c.Label()
		cropOpts = append(cropOpts, entities.Option{Value: strconv.Itoa(c.ID), Label: c.Label()})
	}

	shown := page.Filter(tasks,
		func(t entities.Task) bool { return page.MatchAny(f.Search, t.Title, t.Description) },
		page.Is(f.Priority, func(t entities.Task) entities.Priority { return t.Priority }),
		statusFilter(f.Status),
	)
	Sort(shown)

	rows := make([]service.Row, 0, len(shown))
	for _, t := range shown {
		row := service.Row{Task: t, Overdue: t.Overdue(now), FarmName: unknownFarm}
		if name, ok := farmNames[t.FarmID]; ok {
			row.FarmName = name
		}
		if t.CropID != nil {
			row.CropLabel = unknownCrop
			if label, ok := cropLabels[*t.CropID]; ok {
				row.CropLabel = label
			}
		}
		rows = append(rows, row)
	}
	return service.View{
		Tasks:           rows,
		Shown:           len(rows),
		Total:           len(tasks),
		FarmOptions:     farmOpts,
		CropOptions:     cropOpts,
		PriorityOptions: entities.PriorityOptions,
		StatusOptions:   entities.TaskStatusOptions,
	}
}

func (s *taskSvc) SubmitCreate(ctx context.Context, form entities.TaskForm) (entities.Task, error) {
	form.Completed = false
	return s.crud.Create(ctx, form)
}

func (s *taskSvc) SubmitUpdate(ctx context.Context, id int, form entities.TaskForm) (entities.Task, error) {
	cur, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		s.log.Warn("update lookup failed", zap.Int("id", id), zap.Error(err))
		page.Fail(ctx, saveFailed)
		return entities.Task{}, err
	}
	form.Completed = cur.Completed
	return s.crud.Update(ctx, id, form)
}

func (s *taskSvc) ToggleComplete(ctx context.Context, id int) (entities.Task, error) {
	return Toggle(ctx, s.tasks, s.crud, id)
}

func (s *taskSvc) Remove(ctx context.Context, id int, confirmed bool) error {
	return s.crud.Remove(ctx, id, confirmed)
}

// Toggle flips the completion of the stored task, whichever page last saw
// it. The write goes through crud so the working set is only changed once the
// store accepted it. The dashboard shares it.
func Toggle(ctx context.Context, tasks store.Adapter[entities.Task, entities.TaskForm], crud *page.Crud[entities.Task, entities.TaskForm], id int) (entities.Task, error) {
	cur, err := tasks.GetByID(ctx, id)
	if err != nil {
		page.Fail(ctx, toggleFailed)
		return entities.Task{}, fmt.Errorf("toggle task %d: %w", id, err)
	}
	form := cur.Form()
	form.Completed = !cur.Completed
	msg := "Task reopened"
	if form.Completed {
		msg = "Task completed!"
	}
	return crud.UpdateWith(ctx, id, form, msg, toggleFailed)
}
