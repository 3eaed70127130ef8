package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"farmdash/pkg/logger"
	"farmdash/pkg/metrics"
	"farmdash/pkg/recordstore"
)

// Remote is the Adapter backed by a record protocol backend.
type Remote[T, F any] struct {
	backend recordstore.Backend
	codec   Codec[T, F]
	log     *zap.Logger
	strict  bool
}

// RemoteOption configures a Remote adapter.
type RemoteOption func(*remoteOptions)

type remoteOptions struct {
	log    *zap.Logger
	strict bool
}

// WithLogger sets the logger; the adapter names a child after its entity.
func WithLogger(l *zap.Logger) RemoteOption { return func(o *remoteOptions) { o.log = l } }

// WithStrictReads makes list reads return ErrTransport instead of an empty
// result when the backend fails.
func WithStrictReads(strict bool) RemoteOption { return func(o *remoteOptions) { o.strict = strict } }

func NewRemote[T, F any](backend recordstore.Backend, codec Codec[T, F], opts ...RemoteOption) *Remote[T, F] {
	var o remoteOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Remote[T, F]{
		backend: backend,
		codec:   codec,
		log:     logger.Or(o.log).Named("store." + codec.Entity()),
		strict:  o.strict,
	}
}

var _ Adapter[struct{}, struct{}] = (*Remote[struct{}, struct{}])(nil)

func (r *Remote[T, F]) List(ctx context.Context) ([]T, error) {
	return r.Query(ctx, recordstore.FetchParams{})
}

// Query fetches records. Unless strict reads are on, any failure is logged and
// answered with an empty slice.
func (r *Remote[T, F]) Query(ctx context.Context, p recordstore.FetchParams) ([]T, error) {
	if len(p.Fields) == 0 {
		p.Fields = recordstore.Fields(r.codec.Fields()...)
	}
	resp, err := r.backend.FetchRecords(ctx, r.codec.Table(), p)
	if err != nil {
		return r.readFailure(fmt.Errorf("%w: fetch %s: %v", ErrTransport, r.codec.Table(), err))
	}
	if !resp.Success {
		return r.readFailure(fmt.Errorf("%w: fetch %s: %s", ErrTransport, r.codec.Table(), resp.Message))
	}
	records, err := recordstore.Records(resp.Data)
	if err != nil {
		return r.readFailure(fmt.Errorf("%w: fetch %s: %v", ErrTransport, r.codec.Table(), err))
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		v, err := r.codec.Decode(rec)
		if err != nil {
			r.log.Warn("skipping undecodable record", zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *Remote[T, F]) readFailure(err error) ([]T, error) {
	if r.strict {
		r.log.Error("fetch failed", zap.Error(err))
		return nil, err
	}
	r.log.Error("fetch failed, returning empty result", zap.Error(err))
	metrics.SwallowedRead(r.codec.Entity())
	return []T{}, nil
}

func (r *Remote[T, F]) GetByID(ctx context.Context, id int) (T, error) {
	var zero T
	p := recordstore.FetchParams{Fields: recordstore.Fields(r.codec.Fields()...)}
	resp, err := r.backend.GetRecordByID(ctx, r.codec.Table(), id, p)
	if err != nil {
		r.log.Error("get failed", zap.Int("id", id), zap.Error(err))
		return zero, fmt.Errorf("%w: get %s %d: %v", ErrTransport, r.codec.Entity(), id, err)
	}
	rec, err := recordstore.AsRecord(resp.Data)
	if err != nil || rec == nil {
		return zero, fmt.Errorf("%s %d: %w", r.codec.Entity(), id, ErrNotFound)
	}
	if _, ok := rec.ID(); !ok {
		rec[recordstore.IDField] = id
	}
	return r.codec.Decode(rec)
}

func (r *Remote[T, F]) Create(ctx context.Context, form F) (T, error) {
	var zero T
	rec, err := r.codec.Encode(form)
	if err != nil {
		return zero, err
	}
	resp, err := r.backend.CreateRecord(ctx, r.codec.Table(), recordstore.RecordsParams{Records: []recordstore.Record{rec}})
	return r.written(resp, err, "create")
}

func (r *Remote[T, F]) Update(ctx context.Context, id int, form F) (T, error) {
	var zero T
	rec, err := r.codec.Encode(form)
	if err != nil {
		return zero, err
	}
	rec[recordstore.IDField] = id
	resp, err := r.backend.UpdateRecord(ctx, r.codec.Table(), recordstore.RecordsParams{Records: []recordstore.Record{rec}})
	return r.written(resp, err, "update")
}

// written interprets the envelope of a single-record write.
func (r *Remote[T, F]) written(resp *recordstore.Response, err error, op string) (T, error) {
	var zero T
	if err := r.checkWrite(resp, err, op); err != nil {
		return zero, err
	}
	for _, res := range resp.Results {
		if res.Success && res.Data != nil {
			return r.codec.Decode(res.Data)
		}
	}
	return zero, fmt.Errorf("%w: %s %s returned no record", ErrValidation, op, r.codec.Entity())
}

func (r *Remote[T, F]) Delete(ctx context.Context, id int) (bool, error) {
	resp, err := r.backend.DeleteRecord(ctx, r.codec.Table(), recordstore.DeleteParams{RecordIds: []int{id}})
	if err := r.checkWrite(resp, err, "delete"); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Remote[T, F]) checkWrite(resp *recordstore.Response, err error, op string) error {
	if err != nil {
		r.log.Error(op+" failed", zap.Error(err))
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, op, r.codec.Entity(), err)
	}
	if !resp.Success {
		r.log.Error(op+" rejected", zap.String("message", resp.Message))
		return validationf("%s %s: %s", op, r.codec.Entity(), resp.Message)
	}
	if failed, ok := resp.FirstFailure(); ok {
		n := 0
		for _, res := range resp.Results {
			if !res.Success {
				n++
			}
		}
		r.log.Error(op+" partially failed", zap.Int("failed", n), zap.String("message", failed.Message))
		msg := failed.Message
		if msg == "" {
			msg = fmt.Sprintf("failed to %s %s", op, r.codec.Entity())
		}
		return validationf("%s", msg)
	}
	return nil
}
