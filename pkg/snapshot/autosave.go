package snapshot

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/canvas"
)

// DefaultAutosaveInterval is how often the autosave loop captures the
// board when no interval is configured.
const DefaultAutosaveInterval = 30 * time.Second

// Autosaver periodically captures a canvas and writes the snapshot to a
// store under AutosaveName. One Autosaver drives one canvas.
type Autosaver struct {
	store    Store
	ser      *Serializer
	interval time.Duration
	logger   *log.Logger
}

// NewAutosaver returns an autosaver writing to store every interval.
// A non-positive interval falls back to DefaultAutosaveInterval.
func NewAutosaver(store Store, interval time.Duration, logger *log.Logger) *Autosaver {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	return &Autosaver{
		store:    store,
		ser:      New(logger),
		interval: interval,
		logger:   logger,
	}
}

// Run captures c on every tick until ctx is cancelled. A final capture
// is written on shutdown so the last edits survive. Store failures are
// logged and retried on the next tick rather than stopping the loop.
func (a *Autosaver) Run(ctx context.Context, c *canvas.Canvas) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := a.SaveNow(saveCtx, c); err != nil && a.logger != nil {
				a.logger.Warn("final autosave failed", "err", err)
			}
			return ctx.Err()
		case <-ticker.C:
			if err := a.SaveNow(ctx, c); err != nil {
				if a.logger != nil {
					a.logger.Warn("autosave failed", "err", err)
				}
				continue
			}
			if a.logger != nil {
				a.logger.Debug("autosaved", "objects", c.Len())
			}
		}
	}
}

// SaveNow captures c and writes it to the store immediately.
func (a *Autosaver) SaveNow(ctx context.Context, c *canvas.Canvas) error {
	return a.store.Put(ctx, AutosaveName, a.ser.Capture(c))
}
