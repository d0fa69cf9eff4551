package testutil

import (
	"context"
	"sync"
	"time"
)

// WaitRecorder stands in for a real sleep and remembers every wait asked of
// it. Pass rec.Wait where a wait function is expected.
type WaitRecorder struct {
	mu    sync.Mutex
	waits []time.Duration
	err   error
}

func NewWaitRecorder() *WaitRecorder {
	return &WaitRecorder{
		mu:    sync.Mutex{},
		waits: make([]time.Duration, 0),
		err:   nil,
	}
}

// FailWith makes every later wait return err, as if the context had been
// cancelled mid-wait.
func (w *WaitRecorder) FailWith(err error) *WaitRecorder {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.err = err

	return w
}

func (w *WaitRecorder) Wait(ctx context.Context, d time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.waits = append(w.waits, d)

	if w.err != nil {
		return w.err
	}

	return ctx.Err()
}

func (w *WaitRecorder) Waits() []time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]time.Duration, len(w.waits))
	copy(out, w.waits)

	return out
}

func (w *WaitRecorder) Total() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	var total time.Duration
	for _, d := range w.waits {
		total += d
	}

	return total
}
