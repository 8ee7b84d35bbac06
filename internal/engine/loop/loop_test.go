package loop_test

import (
	"context"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slicer/internal/engine/loop"
)

func run(t *testing.T, l *loop.Loop) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	return func() {
		cancel()
		require.NoError(t, <-done)
	}
}

func TestLoop_PostRunsInOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()
		stop := run(t, l)
		defer stop()

		var got []int
		for i := range 5 {
			l.Post(func() { got = append(got, i) })
		}
		synctest.Wait()

		assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	})
}

func TestLoop_DeferRunsAfterPostedWork(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()

		var got []string
		l.Post(func() {
			got = append(got, "a")
			l.Defer(func() { got = append(got, "idle") })
			l.Post(func() { got = append(got, "c") })
		})
		l.Post(func() { got = append(got, "b") })

		stop := run(t, l)
		defer stop()
		synctest.Wait()

		assert.Equal(t, []string{"a", "b", "c", "idle"}, got)
	})
}

func TestLoop_PostFromIdleRunsBeforeNextIdle(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()

		var got []string
		l.Defer(func() {
			got = append(got, "idle1")
			l.Post(func() { got = append(got, "posted") })
		})
		l.Defer(func() { got = append(got, "idle2") })

		stop := run(t, l)
		defer stop()
		synctest.Wait()

		assert.Equal(t, []string{"idle1", "posted", "idle2"}, got)
	})
}

func TestLoop_PostFromOtherGoroutines(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()
		stop := run(t, l)
		defer stop()

		count := 0
		for range 10 {
			go l.Post(func() { count++ })
		}
		synctest.Wait()

		assert.Equal(t, 10, count)
	})
}

func TestLoop_RunStopsOnCancel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := loop.New()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		l.Post(func() { ran = true })

		require.NoError(t, l.Run(ctx))
		assert.False(t, ran)
	})
}

func TestLoop_DrainRunsEverythingOnCaller(t *testing.T) {
	l := loop.New()

	var got []string
	l.Defer(func() { got = append(got, "idle") })
	l.Post(func() {
		got = append(got, "a")
		l.Post(func() { got = append(got, "b") })
	})

	select {
	case <-l.Wake():
	default:
		t.Fatal("expected a wake signal")
	}

	assert.Equal(t, 3, l.Drain())
	assert.Equal(t, []string{"a", "b", "idle"}, got)
	assert.Zero(t, l.Drain())
}
