package serviceImp

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"farmdash/entities"
	"farmdash/pkg/dashboard/service"
	"farmdash/pkg/logger"
	"farmdash/pkg/page"
	"farmdash/pkg/store"
	taskSvc "farmdash/pkg/task/serviceImp"
)

const (
	loadFailed = "Failed to load dashboard data"
	// UpcomingLimit caps the pending tasks listed on the dashboard.
	UpcomingLimit = 5
)

type Option func(*dashboardSvc)

// WithClock overrides the time source of the rolling stats and overdue flags.
func WithClock(now func() time.Time) Option { return func(s *dashboardSvc) { s.now = now } }

type dashboardSvc struct {
	set   store.Set
	crops *page.Collection[entities.Crop]
	tasks *page.Collection[entities.Task]
	txs   *page.Collection[entities.Transaction]
	crud  *page.Crud[entities.Task, entities.TaskForm]
	life  page.Lifecycle
	now   func() time.Time
	log   *zap.Logger

	mu      sync.RWMutex
	weather *entities.Weather
}

func NewDashboardService(set store.Set, lggr *zap.Logger, opts ...Option) service.DashboardService {
	s := &dashboardSvc{
		set:   set,
		crops: page.NewCollection(func(c entities.Crop) int { return c.ID }),
		tasks: page.NewCollection(func(t entities.Task) int { return t.ID }),
		txs:   page.NewCollection(func(t entities.Transaction) int { return t.ID }),
		now:   time.Now,
		log:   logger.Or(lggr).Named("page.dashboard"),
	}
	for _, opt := range opts {
		opt(s)
	}
	// only toggles go through here
	s.crud = page.NewCrud(s.tasks, set.Tasks, page.Messages{
		Updated:    "Task updated successfully!",
		SaveFailed: "Failed to update task",
	}, s.log)
	return s
}

func (s *dashboardSvc) load(ctx context.Context) error {
	var (
		crops   []entities.Crop
		tasks   []entities.Task
		txs     []entities.Transaction
		weather *entities.Weather
	)
	err := page.LoadAll(ctx,
		page.Into(&crops, s.set.Crops.List),
		page.Into(&tasks, s.set.Tasks.List),
		page.Into(&txs, s.set.Transactions.List),
		func(ctx context.Context) (err error) {
			weather, err = store.CurrentWeather(ctx, s.set.Weather)
			return err
		},
	)
	if err != nil {
		s.log.Error("load", zap.Error(err))
		return err
	}
	s.crops.Set(crops)
	s.tasks.Set(tasks)
	s.txs.Set(txs)
	s.mu.Lock()
	s.weather = weather
	s.mu.Unlock()
	return nil
}

func (s *dashboardSvc) Load(ctx context.Context) error { return s.life.Run(ctx, loadFailed, s.load) }
func (s *dashboardSvc) Status() page.Status            { return s.life.Status() }

// ComputeStats counts what is still in the ground and still to do, and sums
// the rolling 7 day expenses and 30 day income ending at now.
func ComputeStats(crops []entities.Crop, tasks []entities.Task, txs []entities.Transaction, now time.Time) service.Stats {
	var st service.Stats
	for _, c := range crops {
		if c.Status != entities.Harvested {
			st.ActiveCrops++
		}
	}
	for _, t := range tasks {
		if !t.Completed {
			st.PendingTasks++
		}
	}
	weekAgo := now.Add(-7 * 24 * time.Hour)
	monthAgo := now.Add(-30 * 24 * time.Hour)
	for _, t := range txs {
		d, err := entities.ParseDate(t.Date)
		if err != nil {
			continue
		}
		switch {
		case t.Type == entities.Expense && !d.Before(weekAgo):
			st.WeekExpenses += t.Amount
		case t.Type == entities.Income && !d.Before(monthAgo):
			st.MonthIncome += t.Amount
		}
	}
	return st
}

// UpcomingTasks lists up to limit pending tasks, earliest due first.
func UpcomingTasks(tasks []entities.Task, now time.Time, limit int) []service.Upcoming {
	pending := page.Filter(tasks, func(t entities.Task) bool { return !t.Completed })
	taskSvc.Sort(pending)
	if len(pending) > limit {
		pending = pending[:limit]
	}
	out := make([]service.Upcoming, 0, len(pending))
	for _, t := range pending {
		out = append(out, service.Upcoming{Task: t, Overdue: t.Overdue(now)})
	}
	return out
}

func (s *dashboardSvc) View() service.View {
	now := s.now()
	tasks := s.tasks.Snapshot()
	v := service.View{
		Stats:    ComputeStats(s.crops.Snapshot(), tasks, s.txs.Snapshot(), now),
		Upcoming: UpcomingTasks(tasks, now, UpcomingLimit),
	}
	s.mu.RLock()
	if s.weather != nil {
		w := *s.weather
		v.Weather = &w
	}
	s.mu.RUnlock()
	return v
}

func (s *dashboardSvc) ToggleComplete(ctx context.Context, id int) (entities.Task, error) {
	return taskSvc.Toggle(ctx, s.set.Tasks, s.crud, id)
}
