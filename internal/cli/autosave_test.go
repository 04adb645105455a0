package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/canvas"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/snapshot"
)

// writeAutosaveConfig writes a config file pointing the autosave store
// at a directory under dir and returns the config path and store dir.
func writeAutosaveConfig(t *testing.T, enabled bool) (configPath, storeDir string) {
	t.Helper()
	dir := t.TempDir()
	storeDir = filepath.Join(dir, "snapshots")
	configPath = filepath.Join(dir, "mathboard.toml")
	body := fmt.Sprintf("[autosave]\nenabled = %t\ndir = %q\n", enabled, storeDir)
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath, storeDir
}

func TestAutosaveShowCmd(t *testing.T) {
	configPath, storeDir := writeAutosaveConfig(t, true)

	store, err := snapshot.NewFileStore(storeDir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	c := canvas.New(800, 600)
	c.Add(geometry.NewPoint(1, 2, "A"))
	if err := store.Put(context.Background(), snapshot.AutosaveName, snapshot.New(nil).Capture(c)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	cmd := newAutosaveShowCmd(&configPath)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("autosave show: %v", err)
	}
}

func TestAutosaveShowCmdEmpty(t *testing.T) {
	configPath, _ := writeAutosaveConfig(t, true)

	cmd := newAutosaveShowCmd(&configPath)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("autosave show: %v", err)
	}
}

func TestAutosaveShowCmdDisabled(t *testing.T) {
	configPath, _ := writeAutosaveConfig(t, false)

	// A disabled autosave is reported, not an error.
	cmd := newAutosaveShowCmd(&configPath)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("autosave show: %v", err)
	}
}

func TestAutosaveClearCmd(t *testing.T) {
	configPath, storeDir := writeAutosaveConfig(t, true)

	store, err := snapshot.NewFileStore(storeDir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()
	if err := store.Put(ctx, snapshot.AutosaveName, snapshot.New(nil).Capture(canvas.New(0, 0))); err != nil {
		t.Fatalf("Put: %v", err)
	}

	cmd := newAutosaveClearCmd(&configPath)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("autosave clear: %v", err)
	}

	names, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("store still holds %d snapshots after clear", len(names))
	}
}
