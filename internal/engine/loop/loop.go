// Package loop provides a headless presentation loop.
//
// Functions posted to a Loop run one at a time on the goroutine that called
// Run (or Drain), in the order they were posted. Deferred functions run only once the
// posted queue is empty.
package loop

import (
	"context"
	"sync"

	"go.trai.ch/slicer/internal/core/ports"
)

var _ ports.Loop = (*Loop)(nil)

// Loop is a single-threaded task queue.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	idle  []func()
	wake  chan struct{}
}

// New creates an empty loop. Nothing runs until Run is called.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post schedules fn to run on the loop.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	l.signal()
}

// Defer schedules fn for the next idle turn.
func (l *Loop) Defer(fn func()) {
	l.mu.Lock()
	l.idle = append(l.idle, fn)
	l.mu.Unlock()
	l.signal()
}

// Run processes scheduled functions until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		if fn := l.next(); fn != nil {
			fn()
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		}
	}
}

// Wake receives a value whenever work is scheduled. Hosts that drive the
// loop from their own event loop wait on it and then call Drain.
func (l *Loop) Wake() <-chan struct{} {
	return l.wake
}

// Drain runs scheduled functions on the calling goroutine until none are
// left, including any scheduled while draining. It returns how many ran.
func (l *Loop) Drain() int {
	n := 0
	for fn := l.next(); fn != nil; fn = l.next() {
		fn()
		n++
	}
	return n
}

// next pops the next posted function, or an idle one if nothing is posted.
func (l *Loop) next() func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) > 0 {
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		return fn
	}
	if len(l.idle) > 0 {
		fn := l.idle[0]
		l.idle[0] = nil
		l.idle = l.idle[1:]
		return fn
	}
	return nil
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
