package store

import (
	"context"

	"farmdash/entities"
	"farmdash/pkg/recordstore"
)

// Set bundles one adapter per entity type.
type Set struct {
	Farms        Adapter[entities.Farm, entities.FarmForm]
	Crops        Adapter[entities.Crop, entities.CropForm]
	Tasks        Adapter[entities.Task, entities.TaskForm]
	Transactions Adapter[entities.Transaction, entities.TransactionForm]
	Weather      Adapter[entities.Weather, entities.WeatherForm]
}

// DefaultForecastDays is how many forecast days are fetched when unset.
const DefaultForecastDays = 7

func where(field string, value any) recordstore.FetchParams {
	return recordstore.FetchParams{Where: []recordstore.Condition{{
		FieldName: field, Operator: recordstore.EqualTo, Values: []any{value},
	}}}
}

func CropsByFarm(ctx context.Context, a Adapter[entities.Crop, entities.CropForm], farmID int) ([]entities.Crop, error) {
	return a.Query(ctx, where(FieldFarmID, farmID))
}

func TasksByFarm(ctx context.Context, a Adapter[entities.Task, entities.TaskForm], farmID int) ([]entities.Task, error) {
	return a.Query(ctx, where(FieldFarmID, farmID))
}

// PendingTasks lists tasks not yet completed.
func PendingTasks(ctx context.Context, a Adapter[entities.Task, entities.TaskForm]) ([]entities.Task, error) {
	return a.Query(ctx, where(FieldCompleted, false))
}

func TransactionsByFarm(ctx context.Context, a Adapter[entities.Transaction, entities.TransactionForm], farmID int) ([]entities.Transaction, error) {
	return a.Query(ctx, where(FieldFarmID, farmID))
}

func TransactionsByType(ctx context.Context, a Adapter[entities.Transaction, entities.TransactionForm], t entities.TransactionType) ([]entities.Transaction, error) {
	return a.Query(ctx, where(FieldType, string(t)))
}

// CurrentWeather returns the most recent observation by date, or nil when
// there is none.
func CurrentWeather(ctx context.Context, a Adapter[entities.Weather, entities.WeatherForm]) (*entities.Weather, error) {
	out, err := a.Query(ctx, recordstore.FetchParams{
		OrderBy:    []recordstore.OrderBy{{FieldName: FieldDate, SortType: recordstore.Desc}},
		PagingInfo: &recordstore.Paging{Limit: 1},
	})
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return &out[0], nil
}

// Forecast returns the first days records in ascending date order.
func Forecast(ctx context.Context, a Adapter[entities.Weather, entities.WeatherForm], days int) ([]entities.Weather, error) {
	if days <= 0 {
		days = DefaultForecastDays
	}
	return a.Query(ctx, recordstore.FetchParams{
		OrderBy:    []recordstore.OrderBy{{FieldName: FieldDate, SortType: recordstore.Asc}},
		PagingInfo: &recordstore.Paging{Limit: days},
	})
}
