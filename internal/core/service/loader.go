package service

import (
	"context"
	"sync"

	"github.com/auracraft/storefront/internal/core/domain"
)

// A Loader drives one view's fetch pipeline through
// Idle -> Loading -> Ready | Failed.
//
// Every Begin issues a new sequence number. A response is applied only if
// its sequence number is still the latest one issued, so a slow earlier
// request can never overwrite a later one.
type Loader[T any] struct {
	mu    sync.Mutex
	seq   uint64
	state domain.FetchState[T]
}

func (l *Loader[T]) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	l.state = domain.FetchState[T]{Status: domain.FetchLoading, Seq: l.seq}
	return l.seq
}

// Resolve applies the outcome of request seq and reports whether it was
// applied.
func (l *Loader[T]) Resolve(seq uint64, data T, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.seq {
		return false
	}

	if err != nil {
		l.state = domain.FetchState[T]{Status: domain.FetchFailed, Err: err, Seq: seq}
		return true
	}
	l.state = domain.FetchState[T]{Status: domain.FetchReady, Data: data, Seq: seq}
	return true
}

func (l *Loader[T]) State() domain.FetchState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Run issues fn as a new request and returns the state after it resolved.
// The returned state belongs to a newer request when this one went stale.
func (l *Loader[T]) Run(
	ctx context.Context, fn func(context.Context) (T, error),
) (domain.FetchState[T], bool) {
	seq := l.Begin()
	data, err := fn(ctx)
	applied := l.Resolve(seq, data, err)
	return l.State(), applied
}
