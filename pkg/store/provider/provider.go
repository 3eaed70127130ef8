// Package provider assembles the record store adapters selected by
// configuration.
package provider

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"farmdash/config"
	"farmdash/entities"
	"farmdash/pkg/logger"
	"farmdash/pkg/recordstore"
	"farmdash/pkg/store"
	"farmdash/pkg/store/cache"
	"farmdash/pkg/store/mock"
)

// New returns one adapter per entity. Each adapter is instrumented and, when
// CacheTTL is positive, cached.
func New(cfg config.AppConfig, lggr *zap.Logger) (store.Set, error) {
	lggr = logger.Or(lggr)
	var set store.Set
	switch cfg.StoreMode {
	case config.StoreMock:
		f, err := mock.LoadFixtures()
		if err != nil {
			return store.Set{}, fmt.Errorf("mock fixtures: %w", err)
		}
		set = mock.NewSet(f, mock.WithLatency(cfg.MockLatency), mock.WithLogger(lggr))
	case config.StoreRemote:
		set = Remote(recordstore.NewClient(cfg.RecordsURL, cfg.RecordsProjectID, cfg.RecordsPublicKey, cfg.RequestTimeout),
			store.WithLogger(lggr), store.WithStrictReads(cfg.StrictReads))
	default:
		return store.Set{}, fmt.Errorf("unknown store mode %q", cfg.StoreMode)
	}
	lggr.Info("record store ready",
		zap.String("mode", cfg.StoreMode),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Bool("strict_reads", cfg.StrictReads),
	)
	return Decorate(set, cfg.CacheSize, cfg.CacheTTL), nil
}

// Remote builds a Set speaking the record protocol through backend.
func Remote(backend recordstore.Backend, opts ...store.RemoteOption) store.Set {
	return store.Set{
		Farms:        store.NewRemote[entities.Farm, entities.FarmForm](backend, store.FarmCodec{}, opts...),
		Crops:        store.NewRemote[entities.Crop, entities.CropForm](backend, store.CropCodec{}, opts...),
		Tasks:        store.NewRemote[entities.Task, entities.TaskForm](backend, store.TaskCodec{}, opts...),
		Transactions: store.NewRemote[entities.Transaction, entities.TransactionForm](backend, store.TransactionCodec{}, opts...),
		Weather:      store.NewRemote[entities.Weather, entities.WeatherForm](backend, store.WeatherCodec{}, opts...),
	}
}

// Decorate wraps every adapter of set in the shared cache and the metrics
// decorator.
func Decorate(set store.Set, size int, ttl time.Duration) store.Set {
	return store.Set{
		Farms:        decorate("farm", set.Farms, size, ttl),
		Crops:        decorate("crop", set.Crops, size, ttl),
		Tasks:        decorate("task", set.Tasks, size, ttl),
		Transactions: decorate("transaction", set.Transactions, size, ttl),
		Weather:      decorate("weather", set.Weather, size, ttl),
	}
}

func decorate[T, F any](entity string, a store.Adapter[T, F], size int, ttl time.Duration) store.Adapter[T, F] {
	return store.Instrument(entity, cache.Wrap(entity, a, size, ttl))
}
