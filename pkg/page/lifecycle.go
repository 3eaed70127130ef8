// Package page holds what every page controller shares: the load lifecycle,
// concurrent loading, the local working set, filtering helpers and notices.
package page

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type State string

const (
	Loading State = "loading"
	Ready   State = "ready"
	Failed  State = "failed"
)

// Status is the externally visible lifecycle of a page.
type Status struct {
	State    State     `json:"state"`
	Error    string    `json:"error,omitempty"`
	LoadedAt time.Time `json:"loadedAt,omitzero"`
}

// Lifecycle moves a page through Loading -> Ready | Failed. Every page read
// is a mount and calls Run, so a retry is just another Run. Runs that overlap
// share a single load.
type Lifecycle struct {
	mu       sync.Mutex
	state    State
	msg      string
	loadedAt time.Time
	started  bool
	flight   singleflight.Group
}

// Run executes load, or joins the load already in flight and shares its
// outcome. The load runs under the context of the caller that started it. On
// failure the page shows failMsg rather than the raw error, which is returned
// to the caller for logging.
func (l *Lifecycle) Run(ctx context.Context, failMsg string, load func(context.Context) error) error {
	_, err, _ := l.flight.Do("load", func() (any, error) {
		return nil, l.run(ctx, failMsg, load)
	})
	return err
}

func (l *Lifecycle) run(ctx context.Context, failMsg string, load func(context.Context) error) error {
	l.mu.Lock()
	l.state, l.msg, l.started = Loading, "", true
	l.mu.Unlock()

	err := load(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state, l.msg = Failed, failMsg
		return err
	}
	l.state, l.loadedAt = Ready, time.Now()
	return nil
}

func (l *Lifecycle) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.started {
		return Status{State: Loading}
	}
	return Status{State: l.state, Error: l.msg, LoadedAt: l.loadedAt}
}

// LoadAll runs every loader concurrently. The first failure cancels the
// others and fails the whole load.
func LoadAll(ctx context.Context, loaders ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, load := range loaders {
		load := load
		g.Go(func() error { return load(ctx) })
	}
	return g.Wait()
}

// Into adapts a list call into a loader that stores its result in dst.
// dst is only written on success.
func Into[T any](dst *[]T, list func(context.Context) ([]T, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		out, err := list(ctx)
		if err != nil {
			return err
		}
		*dst = out
		return nil
	}
}
