package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/canvas"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/config"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/snapshot"
)

// newValidateCmd creates the "validate" command.
func newValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <snapshot>",
		Short: "Restore a snapshot and check constraint consistency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			c := canvas.New(cfg.Canvas.Width, cfg.Canvas.Height)
			if cfg.Engine.MaxPasses > 0 {
				c.Manager.MaxPasses = cfg.Engine.MaxPasses
			}
			if cfg.Engine.ChangeThreshold > 0 {
				c.Manager.ChangeThreshold = cfg.Engine.ChangeThreshold
			}
			c.Manager.SetLogger(logger)

			ser := snapshot.New(logger)
			if err := ser.Load(c, args[0]); err != nil {
				return fmt.Errorf("restore snapshot: %w", err)
			}

			// A consistent snapshot settles without moving anything:
			// derived positions were saved post-propagation.
			before := capturePositions(c)
			c.Manager.UpdateAll()
			drifted := 0
			for p, pos := range before {
				if math.Hypot(p.X-pos[0], p.Y-pos[1]) > c.Manager.ChangeThreshold {
					drifted++
					printWarning("point %s moved on settle: (%.2f, %.2f) -> (%.2f, %.2f)",
						p.Name, pos[0], pos[1], p.X, p.Y)
				}
			}

			inactive := 0
			for _, k := range c.Manager.Constraints() {
				if !c.Manager.Active(k) {
					inactive++
				}
			}
			prog.done(fmt.Sprintf("Restored %d objects, %d constraints", c.Len(), c.Manager.Len()))
			printStats(len(c.Points()), len(c.Lines()), c.Manager.Len())

			switch {
			case inactive > 0:
				printWarning("%d constraints inactive", inactive)
			case drifted > 0:
				printWarning("%d derived points drifted on settle", drifted)
			default:
				printSuccess("Snapshot is consistent")
			}
			return nil
		},
	}
}

// capturePositions snapshots every point's coordinates keyed by the
// point itself.
func capturePositions(c *canvas.Canvas) map[*geometry.Point][2]float64 {
	positions := make(map[*geometry.Point][2]float64)
	for _, p := range c.Points() {
		positions[p] = [2]float64{p.X, p.Y}
	}
	return positions
}
