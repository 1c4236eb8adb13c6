package services

import (
	"sync"
	"time"

	"github.com/secretmission/mission-backend/game"
	"github.com/secretmission/mission-backend/utils/logger"
)

// SessionTimer owns one room's countdown. It ticks the remaining seconds
// down, reports progress every 30 game seconds and fires onExpire when the
// clock runs out. Stop is idempotent so the win-condition path and the
// expiry path can both call it.
type SessionTimer struct {
	roomID   string
	interval time.Duration
	onUpdate func(remaining int)
	onExpire func() error

	mu        sync.Mutex
	remaining int

	stopOnce sync.Once
	stop     chan struct{}
}

// NewSessionTimer creates a timer for the given room. interval is the wall
// time of one game second (time.Second in production, shorter in tests).
func NewSessionTimer(roomID string, seconds int, interval time.Duration, onUpdate func(remaining int), onExpire func() error) *SessionTimer {
	return &SessionTimer{
		roomID:    roomID,
		interval:  interval,
		onUpdate:  onUpdate,
		onExpire:  onExpire,
		remaining: seconds,
		stop:      make(chan struct{}),
	}
}

// Run drives the countdown until expiry or Stop. Expiry failures (store
// unavailable) are logged and retried on the next tick.
func (t *SessionTimer) Run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.remaining > 0 {
				t.remaining--
			}
			remaining := t.remaining
			t.mu.Unlock()

			if remaining <= 0 {
				if err := t.onExpire(); err != nil {
					logger.Errorf("[Timer %s] expiry failed, retrying next tick: %v", t.roomID, err)
					continue
				}
				t.Stop()
				return
			}

			if remaining%game.TimeUpdateInterval == 0 {
				t.onUpdate(remaining)
			}
		}
	}
}

// Stop halts the countdown. Calling it again is a no-op.
func (t *SessionTimer) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
}

// Remaining reports the seconds left on the clock.
func (t *SessionTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}
