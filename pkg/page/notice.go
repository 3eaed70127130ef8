package page

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrConfirmationRequired is returned by removals the caller did not confirm.
var ErrConfirmationRequired = errors.New("confirmation required")

type Level string

const (
	Success Level = "success"
	Failure Level = "error"
)

// Notice is a transient user-facing message about a mutation.
type Notice struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type Notifier interface {
	Notify(Notice)
}

type notifierKey struct{}

// WithNotifier returns a context whose commands post their notices to n.
// Notices belong to the request that produced them, never to the page.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierKey{}, n)
}

func notify(ctx context.Context, level Level, msg string) {
	n, ok := ctx.Value(notifierKey{}).(Notifier)
	if !ok || n == nil {
		return
	}
	n.Notify(Notice{Level: level, Message: msg, At: time.Now()})
}

// Inbox collects notices until they are drained.
type Inbox struct {
	mu      sync.Mutex
	notices []Notice
}

func (b *Inbox) Notify(n Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, n)
}

// Drain returns and clears the pending notices.
func (b *Inbox) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	b.notices = nil
	return out
}
