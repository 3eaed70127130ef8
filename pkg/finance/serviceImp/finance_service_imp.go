package serviceImp

import (
	"context"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"

	"farmdash/entities"
	"farmdash/pkg/finance/service"
	"farmdash/pkg/logger"
	"farmdash/pkg/page"
	"farmdash/pkg/store"
)

const (
	loadFailed  = "Failed to load financial data"
	unknownFarm = "Unknown Farm"
)

type Option func(*financeSvc)

// WithClock overrides the time source of the month and year stats.
func WithClock(now func() time.Time) Option { return func(s *financeSvc) { s.now = now } }

type financeSvc struct {
	txs      store.Adapter[entities.Transaction, entities.TransactionForm]
	farms    store.Adapter[entities.Farm, entities.FarmForm]
	items    *page.Collection[entities.Transaction]
	farmList *page.Collection[entities.Farm]
	crud     *page.Crud[entities.Transaction, entities.TransactionForm]
	life     page.Lifecycle
	now      func() time.Time
	log      *zap.Logger
}

func NewFinanceService(
	txs store.Adapter[entities.Transaction, entities.TransactionForm],
	farms store.Adapter[entities.Farm, entities.FarmForm],
	lggr *zap.Logger,
	opts ...Option,
) service.FinanceService {
	s := &financeSvc{
		txs:      txs,
		farms:    farms,
		items:    page.NewCollection(func(t entities.Transaction) int { return t.ID }),
		farmList: page.NewCollection(func(f entities.Farm) int { return f.ID }),
		now:      time.Now,
		log:      logger.Or(lggr).Named("page.finance"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.crud = page.NewCrud(s.items, txs, page.Messages{
		Created:      "Transaction recorded successfully!",
		Updated:      "Transaction updated successfully!",
		Deleted:      "Transaction deleted successfully!",
		SaveFailed:   "Failed to save transaction",
		DeleteFailed: "Failed to delete transaction",
	}, s.log)
	return s
}

func (s *financeSvc) load(ctx context.Context) error {
	var (
		txs   []entities.Transaction
		farms []entities.Farm
	)
	if err := page.LoadAll(ctx, page.Into(&txs, s.txs.List), page.Into(&farms, s.farms.List)); err != nil {
		s.log.Error("load", zap.Error(err))
		return err
	}
	s.items.Set(txs)
	s.farmList.Set(farms)
	return nil
}

func (s *financeSvc) Load(ctx context.Context) error { return s.life.Run(ctx, loadFailed, s.load) }
func (s *financeSvc) Status() page.Status            { return s.life.Status() }

// ComputeStats sums income and expenses of the calendar month and year of now.
func ComputeStats(txs []entities.Transaction, now time.Time) service.Stats {
	var st service.Stats
	var yearIncome, yearExpenses float64
	for _, t := range txs {
		d, err := entities.ParseDate(t.Date)
		if err != nil || d.Year() != now.Year() {
			continue
		}
		thisMonth := d.Month() == now.Month()
		switch t.Type {
		case entities.Income:
			yearIncome += t.Amount
			if thisMonth {
				st.MonthIncome += t.Amount
			}
		case entities.Expense:
			yearExpenses += t.Amount
			if thisMonth {
				st.MonthExpenses += t.Amount
			}
		}
	}
	st.MonthProfit = st.MonthIncome - st.MonthExpenses
	st.YearProfit = yearIncome - yearExpenses
	return st
}

// categoryOptions lists the categories of t, or of both types when t is unset.
func categoryOptions(t entities.TransactionType) []entities.Option {
	if t.Valid() {
		return entities.CategoryOptions(t)
	}
	out := entities.CategoryOptions(entities.Expense)
	for _, o := range entities.CategoryOptions(entities.Income) {
		if !slices.Contains(out, o) {
			out = append(out, o)
		}
	}
	return out
}

func (s *financeSvc) rows(f service.Filter) ([]service.Row, int) {
	txs := s.items.Snapshot()
	names := make(map[int]string)
	for _, fm := range s.farmList.Snapshot() {
		names[fm.ID] = fm.Name
	}

	shown := page.Filter(txs,
		func(t entities.Transaction) bool { return page.MatchAny(f.Search, t.Description, t.Category) },
		page.Is(f.Type, func(t entities.Transaction) entities.TransactionType { return t.Type }),
		page.Is(f.Category, func(t entities.Transaction) string { return t.Category }),
	)
	// newest first; equal dates keep their load order
	slices.SortStableFunc(shown, func(a, b entities.Transaction) int {
		return dateOf(b).Compare(dateOf(a))
	})

	rows := make([]service.Row, 0, len(shown))
	for _, t := range shown {
		name, ok := names[t.FarmID]
		if !ok {
			name = unknownFarm
		}
		rows = append(rows, service.Row{Transaction: t, FarmName: name})
	}
	return rows, len(txs)
}

func dateOf(t entities.Transaction) time.Time {
	d, _ := entities.ParseDate(t.Date)
	return d
}

func (s *financeSvc) View(f service.Filter) service.View {
	rows, total := s.rows(f)
	farms := s.farmList.Snapshot()
	farmOpts := make([]entities.Option, 0, len(farms))
	for _, fm := range farms {
		farmOpts = append(farmOpts, entities.Option{Value: strconv.Itoa(fm.ID), Label: fm.Name})
	}
	return service.View{
		Stats:           ComputeStats(s.items.Snapshot(), s.now()),
		Transactions:    rows,
		Shown:           len(rows),
		Total:           total,
		FarmOptions:     farmOpts,
		TypeOptions:     entities.TransactionTypeOptions,
		CategoryOptions: categoryOptions(f.Type),
	}
}

func (s *financeSvc) SubmitCreate(ctx context.Context, form entities.TransactionForm) (entities.Transaction, error) {
	return s.crud.Create(ctx, form)
}

func (s *financeSvc) SubmitUpdate(ctx context.Context, id int, form entities.TransactionForm) (entities.Transaction, error) {
	return s.crud.Update(ctx, id, form)
}

func (s *financeSvc) Remove(ctx context.Context, id int, confirmed bool) error {
	return s.crud.Remove(ctx, id, confirmed)
}
