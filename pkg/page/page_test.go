package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"farmdash/entities"
	"farmdash/pkg/store"
	"farmdash/pkg/store/mock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLifecycle(t *testing.T) {
	var l Lifecycle
	assert.Equal(t, Loading, l.Status().State)
	assert.True(t, l.Status().LoadedAt.IsZero())

	err := l.Run(context.Background(), "Failed to load crops", func(context.Context) error {
		return errors.New("backend down")
	})
	require.Error(t, err)
	st := l.Status()
	assert.Equal(t, Failed, st.State)
	assert.Equal(t, "Failed to load crops", st.Error)

	// retry
	var during State
	err = l.Run(context.Background(), "Failed to load crops", func(context.Context) error {
		during = l.Status().State
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, Loading, during)
	st = l.Status()
	assert.Equal(t, Ready, st.State)
	assert.Empty(t, st.Error)
	assert.False(t, st.LoadedAt.IsZero())
}

func TestOverlappingRunsShareOneLoad(t *testing.T) {
	var l Lifecycle
	var loads atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})
	load := func(context.Context) error {
		if loads.Add(1) == 1 {
			close(started)
		}
		<-release
		return nil
	}

	ctx := context.Background()
	errs := make(chan error, 8)
	go func() { errs <- l.Run(ctx, "Failed to load tasks", load) }()
	<-started
	for i := 0; i < 7; i++ {
		go func() { errs <- l.Run(ctx, "Failed to load tasks", load) }()
	}
	// give the joiners time to reach the in-flight load
	time.Sleep(50 * time.Millisecond)
	close(release)
	for i := 0; i < 8; i++ {
		require.NoError(t, <-errs)
	}
	assert.EqualValues(t, 1, loads.Load())
	assert.Equal(t, Ready, l.Status().State)

	// a later mount loads again
	require.NoError(t, l.Run(ctx, "Failed to load tasks", load))
	assert.EqualValues(t, 2, loads.Load())
}

func TestLoadAllFailsAsAWhole(t *testing.T) {
	var a, b []int
	boom := errors.New("boom")
	err := LoadAll(context.Background(),
		Into(&a, func(context.Context) ([]int, error) { return []int{1}, nil }),
		Into(&b, func(ctx context.Context) ([]int, error) { return nil, boom }),
		func(ctx context.Context) error {
			<-ctx.Done() // cancelled by the failing sibling
			return ctx.Err()
		},
	)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, b)
}

func TestLoadAllFillsEveryTarget(t *testing.T) {
	var a []string
	var b []int
	err := LoadAll(context.Background(),
		Into(&a, func(context.Context) ([]string, error) { return []string{"x"}, nil }),
		Into(&b, func(context.Context) ([]int, error) { return []int{1, 2}, nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, a)
	assert.Equal(t, []int{1, 2}, b)
}

func TestFiltersCommute(t *testing.T) {
	tasks := []entities.Task{
		{ID: 1, Title: "Irrigate north", Priority: entities.High},
		{ID: 2, Title: "Irrigate south", Priority: entities.Low},
		{ID: 3, Title: "Scout", Description: "north field aphids", Priority: entities.High},
		{ID: 4, Title: "Order seed", Priority: entities.High},
	}
	search := func(x entities.Task) bool { return MatchAny("NORTH", x.Title, x.Description) }
	prio := Is(entities.High, func(x entities.Task) entities.Priority { return x.Priority })

	ab := Filter(tasks, search, prio)
	ba := Filter(tasks, prio, search)
	assert.Equal(t, ab, ba)
	assert.Equal(t, ab, Filter(Filter(tasks, prio), search))
	require.Len(t, ab, 2)
	assert.Equal(t, []int{1, 3}, []int{ab[0].ID, ab[1].ID})

	all := Filter(tasks, Is("", func(x entities.Task) string { return x.Title }))
	assert.Len(t, all, len(tasks))
	assert.NotNil(t, Filter[entities.Task](nil))
}

func TestMatchAny(t *testing.T) {
	assert.True(t, MatchAny("", "anything"))
	assert.True(t, MatchAny("  ", "anything"))
	assert.True(t, MatchAny("corn", "Sweet CORN"))
	assert.False(t, MatchAny("wheat", "corn", "north"))
}

func TestCollection(t *testing.T) {
	c := NewCollection(func(f entities.Farm) int { return f.ID })
	c.Set([]entities.Farm{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})

	snap := c.Snapshot()
	snap[0].Name = "changed"
	got, ok := c.Find(1)
	require.True(t, ok)
	assert.Equal(t, "A", got.Name)

	assert.True(t, c.Replace(entities.Farm{ID: 2, Name: "B2"}))
	assert.False(t, c.Replace(entities.Farm{ID: 9}))
	c.Append(entities.Farm{ID: 3})
	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	assert.Equal(t, []entities.Farm{{ID: 2, Name: "B2"}, {ID: 3}}, c.Snapshot())
}

func newCrud(t *testing.T) (*Crud[entities.Farm, entities.FarmForm], *Collection[entities.Farm]) {
	t.Helper()
	f, err := mock.LoadFixtures()
	require.NoError(t, err)
	adapter := mock.New[entities.Farm, entities.FarmForm](store.FarmCodec{}, f.Farms, mock.WithLatency(0))
	items := NewCollection(func(f entities.Farm) int { return f.ID })
	items.Set(f.Farms)
	msgs := Messages{Created: "created", Updated: "updated", Deleted: "deleted", SaveFailed: "save failed", DeleteFailed: "delete failed"}
	return NewCrud(items, store.Adapter[entities.Farm, entities.FarmForm](adapter), msgs, zaptest.NewLogger(t)), items
}

func TestCrudReconcilesAfterWrite(t *testing.T) {
	inbox := &Inbox{}
	ctx := WithNotifier(context.Background(), inbox)
	crud, items := newCrud(t)
	n := items.Len()

	farm, err := crud.Create(ctx, entities.FarmForm{Name: "Hilltop", Size: "5", SizeUnit: entities.Acres})
	require.NoError(t, err)
	assert.Equal(t, n+1, items.Len())

	_, err = crud.Update(ctx, farm.ID, entities.FarmForm{Name: "Hilltop East", Size: "6", SizeUnit: entities.Acres})
	require.NoError(t, err)
	got, _ := items.Find(farm.ID)
	assert.Equal(t, "Hilltop East", got.Name)

	require.NoError(t, crud.Remove(ctx, farm.ID, true))
	assert.Equal(t, n, items.Len())

	levels := []string{}
	for _, nt := range inbox.Drain() {
		levels = append(levels, fmt.Sprintf("%s:%s", nt.Level, nt.Message))
	}
	assert.Equal(t, []string{"success:created", "success:updated", "success:deleted"}, levels)
	assert.Empty(t, inbox.Drain())
}

func TestCrudLeavesStateOnFailure(t *testing.T) {
	inbox := &Inbox{}
	ctx := WithNotifier(context.Background(), inbox)
	crud, items := newCrud(t)
	before := items.Snapshot()

	_, err := crud.Create(ctx, entities.FarmForm{Size: "5", SizeUnit: entities.Acres})
	assert.ErrorIs(t, err, store.ErrValidation)

	err = crud.Remove(ctx, 1, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	err = crud.Remove(ctx, 99, true)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Equal(t, before, items.Snapshot())
	notices := inbox.Drain()
	require.Len(t, notices, 2)
	assert.Equal(t, Failure, notices[0].Level)
	assert.Equal(t, "delete failed", notices[1].Message)
}

func TestNoticesStayWithTheirCommand(t *testing.T) {
	crud, _ := newCrud(t)
	mine, theirs := &Inbox{}, &Inbox{}
	form := entities.FarmForm{Name: "Hilltop", Size: "5", SizeUnit: entities.Acres}

	_, err := crud.Create(WithNotifier(context.Background(), mine), form)
	require.NoError(t, err)
	_, err = crud.Create(WithNotifier(context.Background(), theirs), entities.FarmForm{})
	require.Error(t, err)
	// no notifier: the command still runs, its notices go nowhere
	_, err = crud.Create(context.Background(), form)
	require.NoError(t, err)

	got := mine.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "created", got[0].Message)
	got = theirs.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "save failed", got[0].Message)
}

func TestStatusCode(t *testing.T) {
	cases := map[error]int{
		fmt.Errorf("x: %w", store.ErrNotFound):   http.StatusNotFound,
		fmt.Errorf("x: %w", store.ErrValidation): http.StatusUnprocessableEntity,
		fmt.Errorf("x: %w", store.ErrTransport):  http.StatusBadGateway,
		ErrConfirmationRequired:                  http.StatusConflict,
		fmt.Errorf("%w: bad id", ErrBadInput):    http.StatusBadRequest,
		errors.New("other"):                      http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, StatusCode(err), err.Error())
	}
}
