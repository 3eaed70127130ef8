package mock

import (
	"embed"
	"encoding/json"
	"fmt"

	"farmdash/entities"
	"farmdash/pkg/store"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Fixtures holds the seed data for every entity.
type Fixtures struct {
	Farms        []entities.Farm
	Crops        []entities.Crop
	Tasks        []entities.Task
	Transactions []entities.Transaction
	Weather      []entities.Weather
}

func load[T any](name string) ([]T, error) {
	b, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", name, err)
	}
	return out, nil
}

// LoadFixtures decodes the embedded fixture files.
func LoadFixtures() (Fixtures, error) {
	var (
		f   Fixtures
		err error
	)
	if f.Farms, err = load[entities.Farm]("farms.json"); err != nil {
		return f, err
	}
	if f.Crops, err = load[entities.Crop]("crops.json"); err != nil {
		return f, err
	}
	if f.Tasks, err = load[entities.Task]("tasks.json"); err != nil {
		return f, err
	}
	if f.Transactions, err = load[entities.Transaction]("transactions.json"); err != nil {
		return f, err
	}
	if f.Weather, err = load[entities.Weather]("weather.json"); err != nil {
		return f, err
	}
	return f, nil
}

// NewSet builds one seeded mock store per entity.
func NewSet(f Fixtures, opts ...Option) store.Set {
	return store.Set{
		Farms:        New[entities.Farm, entities.FarmForm](store.FarmCodec{}, f.Farms, opts...),
		Crops:        New[entities.Crop, entities.CropForm](store.CropCodec{}, f.Crops, opts...),
		Tasks:        New[entities.Task, entities.TaskForm](store.TaskCodec{}, f.Tasks, opts...),
		Transactions: New[entities.Transaction, entities.TransactionForm](store.TransactionCodec{}, f.Transactions, opts...),
		Weather:      New[entities.Weather, entities.WeatherForm](store.WeatherCodec{}, f.Weather, opts...),
	}
}
