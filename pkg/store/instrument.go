package store

import (
	"context"
	"time"

	"farmdash/pkg/metrics"
	"farmdash/pkg/recordstore"
)

type instrumented[T, F any] struct {
	entity string
	next   Adapter[T, F]
}

// Instrument wraps an adapter so every call is counted and timed.
func Instrument[T, F any](entity string, next Adapter[T, F]) Adapter[T, F] {
	return &instrumented[T, F]{entity: entity, next: next}
}

func (a *instrumented[T, F]) observe(op string, start time.Time, err error) {
	metrics.ObserveStoreOp(a.entity, op, err, time.Since(start))
}

func (a *instrumented[T, F]) List(ctx context.Context) (out []T, err error) {
	defer func(start time.Time) { a.observe("list", start, err) }(time.Now())
	return a.next.List(ctx)
}

func (a *instrumented[T, F]) Query(ctx context.Context, p recordstore.FetchParams) (out []T, err error) {
	defer func(start time.Time) { a.observe("query", start, err) }(time.Now())
	return a.next.Query(ctx, p)
}

func (a *instrumented[T, F]) GetByID(ctx context.Context, id int) (out T, err error) {
	defer func(start time.Time) { a.observe("get", start, err) }(time.Now())
	return a.next.GetByID(ctx, id)
}

func (a *instrumented[T, F]) Create(ctx context.Context, form F) (out T, err error) {
	defer func(start time.Time) { a.observe("create", start, err) }(time.Now())
	return a.next.Create(ctx, form)
}

func (a *instrumented[T, F]) Update(ctx context.Context, id int, form F) (out T, err error) {
	defer func(start time.Time) { a.observe("update", start, err) }(time.Now())
	return a.next.Update(ctx, id, form)
}

func (a *instrumented[T, F]) Delete(ctx context.Context, id int) (ok bool, err error) {
	defer func(start time.Time) { a.observe("delete", start, err) }(time.Now())
	return a.next.Delete(ctx, id)
}
