// Package seed loads the demo fixtures into a record server database.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"farmdash/entities"
	"farmdash/pkg/logger"
	"farmdash/pkg/recordserver/repository"
	"farmdash/pkg/recordstore"
	"farmdash/pkg/store"
	"farmdash/pkg/store/mock"
)

// Fixtures writes every fixture table that is still empty and returns how many
// records each table received. Fixture ids are kept so references between
// tables stay valid.
func Fixtures(ctx context.Context, repo repository.RecordRepository, f mock.Fixtures, lggr *zap.Logger) (map[string]int, error) {
	lggr = logger.Or(lggr).Named("seed")
	counts := make(map[string]int, 5)
	steps := []func() (string, int, error){
		func() (string, int, error) { return table(ctx, repo, store.FarmCodec{}, f.Farms) },
		func() (string, int, error) { return table(ctx, repo, store.CropCodec{}, f.Crops) },
		func() (string, int, error) { return table(ctx, repo, store.TaskCodec{}, f.Tasks) },
		func() (string, int, error) { return table(ctx, repo, store.TransactionCodec{}, f.Transactions) },
		func() (string, int, error) { return table(ctx, repo, store.WeatherCodec{}, f.Weather) },
	}
	for _, step := range steps {
		name, n, err := step()
		if err != nil {
			return counts, err
		}
		counts[name] = n
		lggr.Info("seeded", zap.String("table", name), zap.Int("records", n))
	}
	return counts, nil
}

func table[T, F any](ctx context.Context, repo repository.RecordRepository, codec store.Codec[T, F], items []T) (string, int, error) {
	rows := make([]entities.StoredRecord, 0, len(items))
	for _, v := range items {
		rec := codec.Record(v)
		id, ok := rec.ID()
		if !ok {
			return codec.Table(), 0, fmt.Errorf("seed %s: record without id", codec.Table())
		}
		fields := make(map[string]any, len(rec))
		for k, val := range rec {
			if k != recordstore.IDField {
				fields[k] = val
			}
		}
		rows = append(rows, entities.StoredRecord{RecordID: id, Fields: fields})
	}
	n, err := repo.Seed(ctx, codec.Table(), rows)
	if err != nil {
		return codec.Table(), 0, fmt.Errorf("seed %s: %w", codec.Table(), err)
	}
	return codec.Table(), n, nil
}
