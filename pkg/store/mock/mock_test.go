package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdash/entities"
	"farmdash/pkg/recordstore"
	"farmdash/pkg/store"
)

func fixtureSet(t *testing.T) store.Set {
	t.Helper()
	f, err := LoadFixtures()
	require.NoError(t, err)
	return NewSet(f, WithLatency(0))
}

func TestFixturesDecode(t *testing.T) {
	f, err := LoadFixtures()
	require.NoError(t, err)
	assert.Len(t, f.Farms, 3)
	assert.NotEmpty(t, f.Crops)
	assert.NotEmpty(t, f.Tasks)
	assert.NotEmpty(t, f.Transactions)
	assert.NotEmpty(t, f.Weather)

	for _, tx := range f.Transactions {
		assert.True(t, tx.Type.AllowsCategory(tx.Category), "transaction %d", tx.ID)
	}
	assert.Nil(t, f.Tasks[3].CropID)
}

func TestEmptyStoreAssignsOne(t *testing.T) {
	crops := New[entities.Crop, entities.CropForm](store.CropCodec{}, nil, WithLatency(0))
	c, err := crops.Create(context.Background(), entities.CropForm{
		FarmID: "1", Type: entities.Corn, PlantingDate: "2025-04-01", ExpectedHarvest: "2025-09-01",
		Field: "North", Status: entities.Planted,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, 1, c.FarmID)
}

func TestCreateThenList(t *testing.T) {
	ctx := context.Background()
	set := fixtureSet(t)

	before, err := set.Farms.List(ctx)
	require.NoError(t, err)

	form := entities.FarmForm{Name: "Hilltop", Location: "Ohio", Size: "40", SizeUnit: entities.Hectares}
	created, err := set.Farms.Create(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)

	after, err := set.Farms.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, form, after[len(after)-1].Form())
	for _, f := range before {
		assert.NotEqual(t, created.ID, f.ID)
	}
}

func TestUpdateThenGet(t *testing.T) {
	ctx := context.Background()
	set := fixtureSet(t)

	form := entities.TaskForm{FarmID: "2", CropID: "", Title: "Prune", DueDate: "2025-07-04", Priority: entities.Low, Completed: true}
	_, err := set.Tasks.Update(ctx, 1, form)
	require.NoError(t, err)

	got, err := set.Tasks.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, form, got.Form())

	_, err = set.Tasks.Update(ctx, 999, form)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	set := fixtureSet(t)

	ok, err := set.Crops.Delete(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = set.Crops.GetByID(ctx, 2)
	assert.ErrorIs(t, err, store.ErrNotFound)

	ok, err = set.Crops.Delete(ctx, 2)
	assert.False(t, ok)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListIsIdempotent(t *testing.T) {
	ctx := context.Background()
	set := fixtureSet(t)
	a, err := set.Transactions.List(ctx)
	require.NoError(t, err)
	b, err := set.Transactions.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// callers own the returned slice
	a[0].Amount = -1
	c, _ := set.Transactions.List(ctx)
	assert.Equal(t, b, c)
}

func TestQueryHelpers(t *testing.T) {
	ctx := context.Background()
	set := fixtureSet(t)

	crops, err := store.CropsByFarm(ctx, set.Crops, 2)
	require.NoError(t, err)
	require.Len(t, crops, 2)
	for _, c := range crops {
		assert.Equal(t, 2, c.FarmID)
	}

	pending, err := store.PendingTasks(ctx, set.Tasks)
	require.NoError(t, err)
	for _, task := range pending {
		assert.False(t, task.Completed)
	}

	income, err := store.TransactionsByType(ctx, set.Transactions, entities.Income)
	require.NoError(t, err)
	assert.Len(t, income, 3)

	current, err := store.CurrentWeather(ctx, set.Weather)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "2025-06-12", current.Date)

	forecast, err := store.Forecast(ctx, set.Weather, 3)
	require.NoError(t, err)
	require.Len(t, forecast, 3)
	assert.Equal(t, "2025-06-05", forecast[0].Date)
	assert.Equal(t, "2025-06-07", forecast[2].Date)
}

func TestQueryNotEqual(t *testing.T) {
	set := fixtureSet(t)
	out, err := set.Crops.Query(context.Background(), recordstore.FetchParams{
		Where: []recordstore.Condition{{FieldName: "Status_c", Operator: recordstore.NotEqualTo, Values: []any{"harvested"}}},
	})
	require.NoError(t, err)
	for _, c := range out {
		assert.NotEqual(t, entities.Harvested, c.Status)
	}
}

func TestLatencyHonoursContext(t *testing.T) {
	f, err := LoadFixtures()
	require.NoError(t, err)
	farms := New[entities.Farm, entities.FarmForm](store.FarmCodec{}, f.Farms, WithLatency(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = farms.List(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = farms.Create(ctx, entities.FarmForm{Name: "x", Size: "1", SizeUnit: entities.Acres})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 3, farms.Len())
}

func TestCreateValidates(t *testing.T) {
	set := fixtureSet(t)
	_, err := set.Transactions.Create(context.Background(), entities.TransactionForm{
		FarmID: "1", Type: entities.Income, Category: "seeds", Amount: "10", Date: "2025-06-01",
	})
	assert.ErrorIs(t, err, store.ErrValidation)
}
