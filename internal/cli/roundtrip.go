package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/canvas"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/snapshot"
)

// newRoundtripCmd creates the "roundtrip" command.
func newRoundtripCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "roundtrip <snapshot>",
		Short: "Restore a snapshot and re-capture it, reporting drift",
		Long:  `Roundtrip restores a snapshot into a fresh board, captures the board again, and compares the two snapshots record by record. Records lost in the restore (dangling references, unknown types) show up as a count difference.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			orig, err := snapshot.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}

			c := canvas.New(orig.Canvas.Width, orig.Canvas.Height)
			ser := snapshot.New(logger)
			if err := ser.Restore(orig, c); err != nil {
				return fmt.Errorf("restore snapshot: %w", err)
			}
			recap := ser.Capture(c)

			prog.done(fmt.Sprintf("Round-tripped %d objects", len(recap.Objects)))

			lostObjects := len(orig.Objects) - len(recap.Objects)
			lostConstraints := len(orig.Constraints) - len(recap.Constraints)
			printDetail("objects: %d saved, %d restored", len(orig.Objects), len(recap.Objects))
			printDetail("constraints: %d saved, %d restored", len(orig.Constraints), len(recap.Constraints))
			printDetail("active polygons: %d saved, %d restored", len(orig.ActivePolygons), len(recap.ActivePolygons))

			if output != "" {
				if err := snapshot.WriteFile(recap, output); err != nil {
					return fmt.Errorf("write snapshot: %w", err)
				}
				printFile(output)
			}

			if lostObjects > 0 || lostConstraints > 0 {
				printWarning("%d objects and %d constraints did not survive the round trip",
					lostObjects, lostConstraints)
				return nil
			}
			printSuccess("Snapshot survives a round trip intact")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the re-captured snapshot to this path")
	return cmd
}
