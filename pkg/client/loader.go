package client

import (
	"context"
	"errors"
	"sync"
)

// FetchFunc retrieves the value at url
type FetchFunc[T any] func(ctx context.Context, url string) (T, error)

// State is a snapshot of a Loader
type State[T any] struct {
	Data    T
	Loading bool
	Err     error
}

// Loader keeps the result of the latest fetch of a URL.
//
// Each Load cancels the request it supersedes, and a superseded or
// cancelled request never touches the state. After Close the state is frozen.
type Loader[T any] struct {
	fetch FetchFunc[T]

	mu     sync.Mutex
	state  State[T]
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

// NewLoader creates a Loader around fetch
func NewLoader[T any](fetch FetchFunc[T]) *Loader[T] {
	return &Loader[T]{fetch: fetch}
}

// NewJSONLoader creates a Loader decoding JSON responses from c
func NewJSONLoader[T any](c *Client) *Loader[T] {
	return NewLoader[T](func(ctx context.Context, url string) (T, error) {
		var v T
		err := c.Get(ctx, url, &v)
		return v, err
	})
}

// Load starts fetching url in the background. Data from an earlier load
// stays visible until this one succeeds.
func (l *Loader[T]) Load(url string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done
	l.state.Loading = true
	l.state.Err = nil
	l.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		v, err := l.fetch(ctx, url)

		l.mu.Lock()
		defer l.mu.Unlock()
		if l.closed || gen != l.gen {
			return
		}
		if err != nil && errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			l.state.Err = err
		} else {
			l.state.Data = v
		}
		l.state.Loading = false
	}()
}

// State returns the current snapshot
func (l *Loader[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Wait blocks until the most recent load has settled
func (l *Loader[T]) Wait() {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Close aborts the in-flight request and freezes the state
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
}
