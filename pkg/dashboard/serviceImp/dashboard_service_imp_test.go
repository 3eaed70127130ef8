package serviceImp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"farmdash/entities"
	"farmdash/pkg/dashboard/service"
	"farmdash/pkg/page"
	"farmdash/pkg/store"
	"farmdash/pkg/store/mock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var now = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) service.DashboardService {
	t.Helper()
	f, err := mock.LoadFixtures()
	require.NoError(t, err)
	svc := NewDashboardService(mock.NewSet(f, mock.WithLatency(0)), zaptest.NewLogger(t),
		WithClock(func() time.Time { return now }))
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func upcomingIDs(v service.View) []int {
	ids := make([]int, 0, len(v.Upcoming))
	for _, u := range v.Upcoming {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestView(t *testing.T) {
	v := newService(t).View()

	assert.Equal(t, service.Stats{ActiveCrops: 5, PendingTasks: 6, WeekExpenses: 950, MonthIncome: 6800}, v.Stats)
	assert.Equal(t, []int{3, 1, 2, 5, 6}, upcomingIDs(v))
	assert.True(t, v.Upcoming[0].Overdue)
	assert.True(t, v.Upcoming[1].Overdue)
	assert.False(t, v.Upcoming[2].Overdue)

	require.NotNil(t, v.Weather)
	assert.Equal(t, "2025-06-12", v.Weather.Date)
}

func TestToggleComplete(t *testing.T) {
	inbox := &page.Inbox{}
	ctx := page.WithNotifier(context.Background(), inbox)
	svc := newService(t)

	task, err := svc.ToggleComplete(ctx, 3)
	require.NoError(t, err)
	assert.True(t, task.Completed)

	v := svc.View()
	assert.Equal(t, 5, v.Stats.PendingTasks)
	assert.Equal(t, []int{1, 2, 5, 6, 7}, upcomingIDs(v))

	_, err = svc.ToggleComplete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, svc.View().Stats.PendingTasks)

	_, err = svc.ToggleComplete(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)

	var got []string
	for _, n := range inbox.Drain() {
		got = append(got, string(n.Level)+":"+n.Message)
	}
	assert.Equal(t, []string{"success:Task completed!", "success:Task reopened", "error:Failed to update task"}, got)
}

func TestLoadFailsAsAWhole(t *testing.T) {
	f, err := mock.LoadFixtures()
	require.NoError(t, err)
	set := mock.NewSet(f, mock.WithLatency(0))
	set.Transactions = mock.New[entities.Transaction, entities.TransactionForm](store.TransactionCodec{}, f.Transactions, mock.WithLatency(time.Minute))

	svc := NewDashboardService(set, zaptest.NewLogger(t))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, svc.Load(ctx))

	st := svc.Status()
	assert.Equal(t, page.Failed, st.State)
	assert.Equal(t, "Failed to load dashboard data", st.Error)
	assert.Zero(t, svc.View().Stats.ActiveCrops)
}
