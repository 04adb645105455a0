package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/config"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/snapshot"
)

// newAutosaveCmd creates the autosave management command.
func newAutosaveCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autosave",
		Short: "Manage the autosave snapshot store",
	}

	cmd.AddCommand(newAutosaveShowCmd(configPath))
	cmd.AddCommand(newAutosaveClearCmd(configPath))
	cmd.AddCommand(newAutosavePathCmd(configPath))

	return cmd
}

// openStore builds the snapshot store the config points at: Redis when
// an address is configured, the autosave directory otherwise.
func openStore(ctx context.Context, cfg config.Config) (snapshot.Store, func(), error) {
	if cfg.Redis.Addr != "" {
		store, err := snapshot.NewRedisStore(ctx, snapshot.RedisConfig{
			Addr: cfg.Redis.Addr,
			TTL:  cfg.Redis.TTL.Duration,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}
	dir, err := cfg.AutosaveDir()
	if err != nil {
		return nil, nil, err
	}
	store, err := snapshot.NewFileStore(dir)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}

// newAutosaveShowCmd creates the "autosave show" subcommand.
func newAutosaveShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Summarize the current autosave snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if !cfg.Autosave.Enabled {
				printWarning("Autosave is disabled in the configuration")
			}
			store, cleanup, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := store.Get(cmd.Context(), snapshot.AutosaveName)
			if errors.Is(err, snapshot.ErrSnapshotNotFound) {
				printInfo("No autosave snapshot")
				return nil
			}
			if err != nil {
				return fmt.Errorf("fetch autosave: %w", err)
			}

			printKeyValue("saved", snap.Timestamp.Format(time.RFC3339))
			printKeyValue("version", snap.Version)
			counts := map[string]int{}
			for _, rec := range snap.Objects {
				counts[rec.Type]++
			}
			printStats(
				counts[snapshot.TypePoint]+counts[snapshot.TypeConstrainedPoint],
				counts[snapshot.TypeLine],
				len(snap.Constraints))
			return nil
		},
	}
}

// newAutosaveClearCmd creates the "autosave clear" subcommand.
func newAutosaveClearCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored autosave snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			store, cleanup, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			names, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			count := 0
			for _, name := range names {
				if err := store.Delete(cmd.Context(), name); err == nil {
					count++
				}
			}
			printSuccess("Cleared %d stored snapshots", count)
			return nil
		},
	}
}

// newAutosavePathCmd creates the "autosave path" subcommand.
func newAutosavePathCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the autosave store location",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Redis.Addr != "" {
				fmt.Println("redis://" + cfg.Redis.Addr)
				return nil
			}
			dir, err := cfg.AutosaveDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	}
}
