package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/canvas"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

func TestAutosaverSaveNow(t *testing.T) {
	store := NewMemoryStore()
	a := NewAutosaver(store, time.Minute, nil)
	c := canvas.New(800, 600)
	c.Add(geometry.NewPoint(1, 2, "A"))

	if err := a.SaveNow(context.Background(), c); err != nil {
		t.Fatalf("SaveNow: %v", err)
	}

	snap, err := store.Get(context.Background(), AutosaveName)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(snap.Objects) != 1 {
		t.Errorf("Objects = %d, want 1", len(snap.Objects))
	}
}

func TestAutosaverRunSavesOnShutdown(t *testing.T) {
	store := NewMemoryStore()
	a := NewAutosaver(store, time.Hour, nil) // ticker never fires
	c := canvas.New(800, 600)
	c.Add(geometry.NewPoint(1, 2, "A"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := a.Run(ctx, c); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v, want context.Canceled", err)
	}
	if _, err := store.Get(context.Background(), AutosaveName); err != nil {
		t.Errorf("no final snapshot written: %v", err)
	}
}

func TestNewAutosaverDefaultInterval(t *testing.T) {
	a := NewAutosaver(NewMemoryStore(), 0, nil)

	if a.interval != DefaultAutosaveInterval {
		t.Errorf("interval = %v, want %v", a.interval, DefaultAutosaveInterval)
	}
}
