package serviceImp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"farmdash/entities"
	"farmdash/pkg/page"
	"farmdash/pkg/store"
	"farmdash/pkg/store/mock"
	"farmdash/pkg/task/service"
)

var june12 = time.Date(2025, time.June, 12, 8, 0, 0, 0, time.UTC)

func newService(t *testing.T) service.TaskService {
	svc, _ := newServiceWithSet(t)
	return svc
}

func newServiceWithSet(t *testing.T) (service.TaskService, store.Set) {
	t.Helper()
	f, err := mock.LoadFixtures()
	require.NoError(t, err)
	set := mock.NewSet(f, mock.WithLatency(0))
	svc := NewTaskService(set.Tasks, set.Farms, set.Crops, zaptest.NewLogger(t),
		WithClock(func() time.Time { return june12 }))
	require.NoError(t, svc.Load(context.Background()))
	return svc, set
}

func ids(v service.View) []int {
	out := make([]int, 0, len(v.Tasks))
	for _, r := range v.Tasks {
		out = append(out, r.ID)
	}
	return out
}

func TestSort(t *testing.T) {
	tasks := []entities.Task{
		{ID: 1, DueDate: "2025-06-10", Completed: true},
		{ID: 2, DueDate: "not a date"},
		{ID: 3, DueDate: "2025-06-12"},
		{ID: 4, DueDate: "2025-06-01"},
		{ID: 5, DueDate: "2025-06-12"},
	}
	Sort(tasks)
	got := make([]int, 0, len(tasks))
	for _, tk := range tasks {
		got = append(got, tk.ID)
	}
	assert.Equal(t, []int{4, 3, 5, 2, 1}, got)
}

func TestViewOrdersAndLabels(t *testing.T) {
	v := newService(t).View(service.Filter{})

	assert.Equal(t, []int{3, 1, 2, 5, 6, 7, 4}, ids(v))
	overdue := map[int]bool{}
	for _, r := range v.Tasks {
		overdue[r.ID] = r.Overdue
	}
	assert.Equal(t, map[int]bool{3: true, 1: true, 2: false, 5: false, 6: false, 7: false, 4: false}, overdue)

	assert.Equal(t, "corn - North Field", v.Tasks[1].CropLabel)
	assert.Equal(t, "Green Valley Farm", v.Tasks[1].FarmName)
	assert.Empty(t, v.Tasks[6].CropLabel)
}

func TestViewFilters(t *testing.T) {
	svc := newService(t)

	assert.Equal(t, []int{4}, ids(svc.View(service.Filter{Status: service.StatusCompleted})))
	assert.Equal(t, []int{3, 1}, ids(svc.View(service.Filter{Priority: entities.High})))
	assert.Equal(t, []int{2}, ids(svc.View(service.Filter{Search: "LEAVES", Status: service.StatusPending})))
	assert.Equal(t, []int{}, ids(svc.View(service.Filter{Search: "pump", Status: service.StatusPending})))
}

func TestSubmitKeepsCompletion(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.SubmitCreate(ctx, entities.TaskForm{
		FarmID: "1", Title: "Walk fences", DueDate: "2025-06-30", Priority: entities.Low, Completed: true,
	})
	require.NoError(t, err)
	assert.False(t, created.Completed)
	assert.Nil(t, created.CropID)

	updated, err := svc.SubmitUpdate(ctx, 4, entities.TaskForm{
		FarmID: "2", Title: "Repair irrigation pump", DueDate: "2025-06-05", Priority: entities.High,
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, entities.High, updated.Priority)
}

func TestSubmitUpdateUsesStoredCompletion(t *testing.T) {
	svc, set := newServiceWithSet(t)
	ctx := context.Background()

	// another page completes task 1 after this one loaded
	done, err := set.Tasks.GetByID(ctx, 1)
	require.NoError(t, err)
	form := done.Form()
	form.Completed = true
	_, err = set.Tasks.Update(ctx, 1, form)
	require.NoError(t, err)

	form.Title = "Apply nitrogen fertilizer (second pass)"
	form.Completed = false
	updated, err := svc.SubmitUpdate(ctx, 1, form)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	inbox := &page.Inbox{}
	_, err = svc.SubmitUpdate(page.WithNotifier(ctx, inbox), 99, form)
	assert.ErrorIs(t, err, store.ErrNotFound)
	notices := inbox.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, "Failed to save task", notices[0].Message)
}

func TestToggleComplete(t *testing.T) {
	inbox := &page.Inbox{}
	ctx := page.WithNotifier(context.Background(), inbox)
	svc := newService(t)

	task, err := svc.ToggleComplete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, []int{3, 2, 5, 6, 7, 1, 4}, ids(svc.View(service.Filter{})))

	notices := inbox.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, "Task completed!", notices[0].Message)

	// a command without a notifier still runs
	task, err = svc.ToggleComplete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, task.Completed)

	_, err = svc.ToggleComplete(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, "Failed to update task", inbox.Drain()[0].Message)
}
