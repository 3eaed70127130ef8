// Package cache is a read-through cache in front of a store adapter, so that
// several pages loading the same entity share one backend fetch.
package cache

import (
	"context"
	"encoding/json"
	"slices"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"farmdash/pkg/metrics"
	"farmdash/pkg/recordstore"
	"farmdash/pkg/store"
)

// DefaultSize bounds the number of cached results per entity.
const DefaultSize = 128

// Adapter caches List, Query and GetByID results. Every write, successful or
// not, purges the entity's cache.
type Adapter[T, F any] struct {
	entity string
	next   store.Adapter[T, F]
	lru    *expirable.LRU[string, []T]
}

// Wrap puts a cache in front of next. A non-positive ttl disables caching and
// returns next unchanged.
func Wrap[T, F any](entity string, next store.Adapter[T, F], size int, ttl time.Duration) store.Adapter[T, F] {
	if ttl <= 0 {
		return next
	}
	return New(entity, next, size, ttl)
}

func New[T, F any](entity string, next store.Adapter[T, F], size int, ttl time.Duration) *Adapter[T, F] {
	if size <= 0 {
		size = DefaultSize
	}
	return &Adapter[T, F]{
		entity: entity,
		next:   next,
		lru:    expirable.NewLRU[string, []T](size, nil, ttl),
	}
}

var _ store.Adapter[struct{}, struct{}] = (*Adapter[struct{}, struct{}])(nil)

func (a *Adapter[T, F]) lookup(key string) ([]T, bool) {
	v, ok := a.lru.Get(key)
	metrics.CacheLookup(a.entity, ok)
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

func (a *Adapter[T, F]) read(ctx context.Context, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if v, ok := a.lookup(key); ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	a.lru.Add(key, slices.Clone(v))
	return v, nil
}

func (a *Adapter[T, F]) List(ctx context.Context) ([]T, error) {
	return a.read(ctx, "list", a.next.List)
}

func (a *Adapter[T, F]) Query(ctx context.Context, p recordstore.FetchParams) ([]T, error) {
	key, err := json.Marshal(p)
	if err != nil {
		return a.next.Query(ctx, p)
	}
	return a.read(ctx, "query:"+string(key), func(ctx context.Context) ([]T, error) {
		return a.next.Query(ctx, p)
	})
}

func (a *Adapter[T, F]) GetByID(ctx context.Context, id int) (T, error) {
	out, err := a.read(ctx, "get:"+strconv.Itoa(id), func(ctx context.Context) ([]T, error) {
		v, err := a.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return []T{v}, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out[0], nil
}

func (a *Adapter[T, F]) Create(ctx context.Context, form F) (T, error) {
	defer a.lru.Purge()
	return a.next.Create(ctx, form)
}

func (a *Adapter[T, F]) Update(ctx context.Context, id int, form F) (T, error) {
	defer a.lru.Purge()
	return a.next.Update(ctx, id, form)
}

func (a *Adapter[T, F]) Delete(ctx context.Context, id int) (bool, error) {
	defer a.lru.Purge()
	return a.next.Delete(ctx, id)
}

// Len reports how many results are currently cached.
func (a *Adapter[T, F]) Len() int { return a.lru.Len() }
