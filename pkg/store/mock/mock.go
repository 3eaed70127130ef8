// Package mock is the in-memory record store used for demos and offline work.
// It honours the same contract as the remote adapter.
package mock

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"farmdash/pkg/logger"
	"farmdash/pkg/recordstore"
	"farmdash/pkg/store"
)

// DefaultLatency is the artificial delay applied to every operation.
const DefaultLatency = 250 * time.Millisecond

type Option func(*options)

type options struct {
	latency time.Duration
	log     *zap.Logger
}

func WithLatency(d time.Duration) Option { return func(o *options) { o.latency = d } }

func WithLogger(l *zap.Logger) Option { return func(o *options) { o.log = l } }

// Store keeps an ordered slice of entities. Identity is max(existing)+1, or 1
// for an empty collection.
type Store[T, F any] struct {
	mu      sync.Mutex
	codec   store.Codec[T, F]
	items   []T
	latency time.Duration
	log     *zap.Logger
}

var _ store.Adapter[struct{}, struct{}] = (*Store[struct{}, struct{}])(nil)

func New[T, F any](codec store.Codec[T, F], seed []T, opts ...Option) *Store[T, F] {
	o := options{latency: DefaultLatency}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T, F]{
		codec:   codec,
		items:   slices.Clone(seed),
		latency: o.latency,
		log:     logger.Or(o.log).Named("mock." + codec.Entity()),
	}
}

func (s *Store[T, F]) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Store[T, F]) id(v T) int {
	id, _ := s.codec.Record(v).ID()
	return id
}

func (s *Store[T, F]) indexOf(id int) int {
	return slices.IndexFunc(s.items, func(v T) bool { return s.id(v) == id })
}

func (s *Store[T, F]) List(ctx context.Context) ([]T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items), nil
}

// Query evaluates filters, ordering and paging over the whole collection.
// Field projection is ignored so callers always get complete entities.
func (s *Store[T, F]) Query(ctx context.Context, p recordstore.FetchParams) ([]T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	p.Fields = nil

	s.mu.Lock()
	records := make([]recordstore.Record, len(s.items))
	for i, v := range s.items {
		records[i] = s.codec.Record(v)
	}
	s.mu.Unlock()

	matched := p.Apply(records)
	out := make([]T, 0, len(matched))
	for _, rec := range matched {
		v, err := s.codec.Decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Store[T, F]) GetByID(ctx context.Context, id int) (T, error) {
	var zero T
	if err := s.wait(ctx); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return zero, fmt.Errorf("%s %d: %w", s.codec.Entity(), id, store.ErrNotFound)
	}
	return s.items[i], nil
}

func (s *Store[T, F]) Create(ctx context.Context, form F) (T, error) {
	var zero T
	rec, err := s.codec.Encode(form)
	if err != nil {
		return zero, err
	}
	if err := s.wait(ctx); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, v := range s.items {
		next = max(next, s.id(v)+1)
	}
	rec[recordstore.IDField] = next
	v, err := s.codec.Decode(rec)
	if err != nil {
		return zero, err
	}
	s.items = append(s.items, v)
	s.log.Debug("created", zap.Int("id", next))
	return v, nil
}

func (s *Store[T, F]) Update(ctx context.Context, id int, form F) (T, error) {
	var zero T
	rec, err := s.codec.Encode(form)
	if err != nil {
		return zero, err
	}
	if err := s.wait(ctx); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return zero, fmt.Errorf("update %s %d: %w", s.codec.Entity(), id, store.ErrNotFound)
	}
	rec[recordstore.IDField] = id
	v, err := s.codec.Decode(rec)
	if err != nil {
		return zero, err
	}
	s.items[i] = v
	s.log.Debug("updated", zap.Int("id", id))
	return v, nil
}

func (s *Store[T, F]) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, fmt.Errorf("delete %s %d: %w", s.codec.Entity(), id, store.ErrNotFound)
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.log.Debug("deleted", zap.Int("id", id))
	return true, nil
}

// Len reports the current collection size.
func (s *Store[T, F]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
