package page

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"farmdash/pkg/logger"
	"farmdash/pkg/store"
)

// Messages are the notices a CRUD page posts.
type Messages struct {
	Created      string
	Updated      string
	Deleted      string
	SaveFailed   string
	DeleteFailed string
}

// Crud runs a page's create/update/remove commands: the adapter is called
// first and the working set is reconciled only once the write succeeded.
// Notices go to the Notifier carried by the command's context.
type Crud[T, F any] struct {
	items   *Collection[T]
	adapter store.Adapter[T, F]
	msgs    Messages
	log     *zap.Logger
}

func NewCrud[T, F any](items *Collection[T], adapter store.Adapter[T, F], msgs Messages, lggr *zap.Logger) *Crud[T, F] {
	return &Crud[T, F]{items: items, adapter: adapter, msgs: msgs, log: logger.Or(lggr)}
}

func (c *Crud[T, F]) Create(ctx context.Context, form F) (T, error) {
	v, err := c.adapter.Create(ctx, form)
	if err != nil {
		c.log.Warn("create failed", zap.Error(err))
		notify(ctx, Failure, c.msgs.SaveFailed)
		return v, err
	}
	c.items.Append(v)
	notify(ctx, Success, c.msgs.Created)
	return v, nil
}

func (c *Crud[T, F]) Update(ctx context.Context, id int, form F) (T, error) {
	return c.UpdateWith(ctx, id, form, c.msgs.Updated, c.msgs.SaveFailed)
}

// UpdateWith is Update with custom notice texts.
func (c *Crud[T, F]) UpdateWith(ctx context.Context, id int, form F, okMsg, failMsg string) (T, error) {
	v, err := c.adapter.Update(ctx, id, form)
	if err != nil {
		c.log.Warn("update failed", zap.Int("id", id), zap.Error(err))
		notify(ctx, Failure, failMsg)
		return v, err
	}
	if !c.items.Replace(v) {
		c.items.Append(v)
	}
	notify(ctx, Success, okMsg)
	return v, nil
}

// Remove deletes id once the caller confirmed. An unconfirmed call returns
// ErrConfirmationRequired and touches nothing.
func (c *Crud[T, F]) Remove(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	ok, err := c.adapter.Delete(ctx, id)
	if err == nil && !ok {
		err = errors.New("record was not deleted")
	}
	if err != nil {
		c.log.Warn("delete failed", zap.Int("id", id), zap.Error(err))
		notify(ctx, Failure, c.msgs.DeleteFailed)
		return err
	}
	c.items.Remove(id)
	notify(ctx, Success, c.msgs.Deleted)
	return nil
}

// Fail posts a failure notice on behalf of a page command that never reached
// the adapter.
func Fail(ctx context.Context, msg string) { notify(ctx, Failure, msg) }
