package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/snapshot"
)

// newInspectCmd creates the "inspect" command.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Summarize a snapshot file's objects and constraints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			path := args[0]

			snap, err := snapshot.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			logger.Debug("snapshot parsed", "path", path, "objects", len(snap.Objects))

			fmt.Println(StyleTitle.Render("Snapshot " + path))
			printKeyValue("version", snap.Version)
			printKeyValue("saved", snap.Timestamp.Format(time.RFC3339))
			printKeyValue("canvas", fmt.Sprintf("%.0f x %.0f (offset %.0f, %.0f)",
				snap.Canvas.Width, snap.Canvas.Height,
				snap.Canvas.Offset.X, snap.Canvas.Offset.Y))

			counts := map[string]int{}
			for _, rec := range snap.Objects {
				counts[rec.Type]++
			}
			printStats(
				counts[snapshot.TypePoint]+counts[snapshot.TypeConstrainedPoint],
				counts[snapshot.TypeLine],
				len(snap.Constraints))
			if n := counts[snapshot.TypeAngle]; n > 0 {
				printDetail("%d angles", n)
			}
			if n := counts[snapshot.TypePolygon]; n > 0 {
				printDetail("%d polygons (%d active)", n, len(snap.ActivePolygons))
			}

			if len(snap.Constraints) > 0 {
				fmt.Println()
				fmt.Println(StyleTitle.Render("Constraints"))
				for _, rec := range snap.Constraints {
					desc := rec.Description
					if desc == "" {
						desc = rec.Type
					}
					if rec.Active {
						printInfo("%s", desc)
					} else {
						printWarning("%s (inactive)", desc)
					}
				}
			}
			return nil
		},
	}
}
