package particles

import (
	"context"
	"sync"
	"time"

	"folio/internal/logging"
)

// Loop calls a frame function at a fixed interval on a single goroutine, so
// two frames never overlap. It runs until its context is cancelled or Stop is
// called; Stop also waits for the goroutine to exit, which is what makes it
// safe to release the surface afterwards.
type Loop struct {
	mu       sync.Mutex
	interval time.Duration
	frame    func()
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewLoop creates a stopped loop.
func NewLoop(interval time.Duration, frame func()) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{interval: interval, frame: frame}
}

// Start begins ticking. It is non-blocking and a no-op when already running.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return
	}
	l.running = true
	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})

	go l.run(ctx, l.stopCh, l.doneCh)
}

// Stop signals the loop and blocks until the goroutine has exited.
// It must not be called from inside the frame function.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	stopCh, doneCh := l.stopCh, l.doneCh
	l.mu.Unlock()

	close(stopCh)
	<-doneCh
}

// Done is closed when the current run has exited. Nil before the first Start.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.doneCh
}

func (l *Loop) run(ctx context.Context, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	logging.BackdropDebug("animation loop started (%v per frame)", l.interval)
	for {
		select {
		case <-ctx.Done():
			logging.BackdropDebug("animation loop: context cancelled")
			return
		case <-stopCh:
			logging.BackdropDebug("animation loop: stop signal received")
			return
		case <-ticker.C:
			l.frame()
		}
	}
}
