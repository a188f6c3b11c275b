package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/logger"
)

const (
	// DefaultSessionIdleTTL is how long an untouched edit session is kept
	DefaultSessionIdleTTL = 30 * time.Minute
)

// Reaper is the part of editor.Manager the reaper drives.
type Reaper interface {
	Reap(ctx context.Context, idle time.Duration) (int, error)
}

// SessionReaper saves and drops idle edit sessions
type SessionReaper struct {
	sessions Reaper
	logger   logger.Logger
	interval time.Duration
	idleTTL  time.Duration
	stopCh   chan struct{}
}

// NewSessionReaper creates a new session reaper
func NewSessionReaper(sessions Reaper, log logger.Logger, interval, idleTTL time.Duration) *SessionReaper {
	if idleTTL == 0 {
		idleTTL = DefaultSessionIdleTTL
	}

	return &SessionReaper{
		sessions: sessions,
		logger:   log,
		interval: interval,
		idleTTL:  idleTTL,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic reaping process
func (sr *SessionReaper) Start(ctx context.Context) error {
	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sr.Collect(ctx)
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reaper
func (sr *SessionReaper) Stop() {
	close(sr.stopCh)
}

// Collect runs one pass and returns the number of sessions removed
func (sr *SessionReaper) Collect(ctx context.Context) int {
	n, err := sr.sessions.Reap(ctx, sr.idleTTL)
	if err != nil {
		sr.logger.Warn("some idle sessions could not be saved", logger.Error(err))
	}
	if n > 0 {
		sr.logger.Info("reaped idle edit sessions",
			logger.Int("count", n),
			logger.Duration("idle_ttl", sr.idleTTL))
	} else {
		sr.logger.Debug("no idle edit sessions")
	}
	return n
}
