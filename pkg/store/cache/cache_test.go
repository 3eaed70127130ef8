package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdash/entities"
	"farmdash/pkg/recordstore"
	"farmdash/pkg/store"
	"farmdash/pkg/store/mock"
)

// counting forwards to a store and counts reads.
type counting struct {
	store.Adapter[entities.Farm, entities.FarmForm]
	reads atomic.Int32
	fail  error
}

func (c *counting) List(ctx context.Context) ([]entities.Farm, error) {
	c.reads.Add(1)
	if c.fail != nil {
		return nil, c.fail
	}
	return c.Adapter.List(ctx)
}

func (c *counting) Query(ctx context.Context, p recordstore.FetchParams) ([]entities.Farm, error) {
	c.reads.Add(1)
	return c.Adapter.Query(ctx, p)
}

func (c *counting) GetByID(ctx context.Context, id int) (entities.Farm, error) {
	c.reads.Add(1)
	return c.Adapter.GetByID(ctx, id)
}

func newCounting(t *testing.T) *counting {
	t.Helper()
	f, err := mock.LoadFixtures()
	require.NoError(t, err)
	farms := mock.New[entities.Farm, entities.FarmForm](store.FarmCodec{}, f.Farms, mock.WithLatency(0))
	return &counting{Adapter: farms}
}

func TestReadsAreShared(t *testing.T) {
	ctx := context.Background()
	next := newCounting(t)
	c := New[entities.Farm, entities.FarmForm]("farm", next, 0, time.Minute)

	a, err := c.List(ctx)
	require.NoError(t, err)
	b, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.EqualValues(t, 1, next.reads.Load())

	_, err = c.GetByID(ctx, 1)
	require.NoError(t, err)
	_, err = c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, next.reads.Load())

	_, err = c.GetByID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQueriesKeyedByParams(t *testing.T) {
	ctx := context.Background()
	next := newCounting(t)
	c := New[entities.Farm, entities.FarmForm]("farm", next, 0, time.Minute)

	p1 := recordstore.FetchParams{PagingInfo: &recordstore.Paging{Limit: 1}}
	p2 := recordstore.FetchParams{PagingInfo: &recordstore.Paging{Limit: 2}}
	one, err := c.Query(ctx, p1)
	require.NoError(t, err)
	two, err := c.Query(ctx, p2)
	require.NoError(t, err)
	assert.Len(t, one, 1)
	assert.Len(t, two, 2)
	_, _ = c.Query(ctx, p1)
	assert.EqualValues(t, 2, next.reads.Load())
}

func TestWritesPurge(t *testing.T) {
	ctx := context.Background()
	next := newCounting(t)
	c := New[entities.Farm, entities.FarmForm]("farm", next, 0, time.Minute)

	before, err := c.List(ctx)
	require.NoError(t, err)
	_, err = c.Create(ctx, entities.FarmForm{Name: "Hilltop", Size: "3", SizeUnit: entities.Acres})
	require.NoError(t, err)
	assert.Zero(t, c.Len())

	after, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.EqualValues(t, 2, next.reads.Load())
}

func TestCallersCannotMutateCache(t *testing.T) {
	ctx := context.Background()
	c := New[entities.Farm, entities.FarmForm]("farm", newCounting(t), 0, time.Minute)

	a, err := c.List(ctx)
	require.NoError(t, err)
	a[0].Name = "changed"
	b, err := c.List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", b[0].Name)
}

func TestErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	next := newCounting(t)
	next.fail = errors.New("boom")
	c := New[entities.Farm, entities.FarmForm]("farm", next, 0, time.Minute)

	_, err := c.List(ctx)
	require.Error(t, err)
	next.fail = nil
	out, err := c.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestZeroTTLDisables(t *testing.T) {
	next := newCounting(t)
	got := Wrap[entities.Farm, entities.FarmForm]("farm", next, 0, 0)
	assert.Same(t, next, got)
}
