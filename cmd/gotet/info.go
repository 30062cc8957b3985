package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/philipparndt/gotet/pkg/analysis"
	"github.com/philipparndt/gotet/pkg/tetfile"
	"github.com/philipparndt/gotet/pkg/watcher"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *options) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Display a full report for a tetrahedron",
		Long:  "Show volume, surface area, bounding box, edge statistics and the outward normal of every face.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := runInfo(out, args, opts); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("--watch needs a file")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchInfo(ctx, out, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run the report whenever the file changes")

	return cmd
}

func runInfo(out io.Writer, args []string, opts *options) error {
	doc, err := loadDocument(args)
	if err != nil {
		return err
	}

	report, err := analysis.AnalyzeTetrahedron(doc.Tetrahedron, opts.cfg.Tolerance)
	if err != nil {
		return err
	}

	printReport(out, doc, report, opts.cfg.Precision)
	return nil
}

// watchInfo reprints the report on every change until ctx is done.
// Parse and geometry errors are reported without stopping the watch.
func watchInfo(ctx context.Context, out io.Writer, args []string, opts *options) error {
	fw, err := watcher.NewFileWatcher(opts.cfg.WatchDebounce.Duration())
	if err != nil {
		return err
	}
	defer fw.Close()

	changed := make(chan struct{}, 1)
	err = fw.Watch(args[:1], func(string) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	fw.Start()

	fmt.Fprintf(out, "\nWatching %s for changes (Ctrl+C to stop)\n", args[0])
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			fmt.Fprintln(out)
			if err := runInfo(out, args, opts); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		}
	}
}

func printReport(out io.Writer, doc *tetfile.Document, report *analysis.Report, p int) {
	fmt.Fprintln(out, "Tetrahedron Information")
	fmt.Fprintln(out, "=======================")
	if doc.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", doc.Name)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Vertices:")
	for i, v := range report.Tetrahedron {
		fmt.Fprintf(out, "  %d: %s\n", i, analysis.FormatVector(v, p))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Measurements:")
	fmt.Fprintf(out, "  Volume: %s\n", analysis.FormatMeasurement(report.Volume, p, "cubic units"))
	fmt.Fprintf(out, "  Signed Volume: %.*f\n", p, report.SignedVolume)
	fmt.Fprintf(out, "  Surface Area: %s\n", analysis.FormatMeasurement(report.SurfaceArea, p, "square units"))
	fmt.Fprintf(out, "  Centroid: %s\n\n", analysis.FormatVector(report.Centroid, p))

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(report.BoundingBox.Min, p))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(report.BoundingBox.Max, p))
	fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(report.BoundingBox.Center(), p))
	fmt.Fprintf(out, "  Size: %s\n", analysis.FormatVector(report.Dimensions, p))
	fmt.Fprintf(out, "  Box Volume: %s\n", analysis.FormatMeasurement(report.BoundingBox.Volume(), p, "cubic units"))
	fmt.Fprintf(out, "  Diagonal: %s\n\n", analysis.FormatMeasurement(report.BoundingBox.Diagonal(), p, ""))

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(report.MinEdgeLength, p, ""))
	fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(report.MaxEdgeLength, p, ""))
	fmt.Fprintf(out, "  Average: %s\n", analysis.FormatMeasurement(report.AvgEdgeLength, p, ""))
	longest := analysis.LongestEdges(report, 1)[0]
	shortest := analysis.ShortestEdges(report, 1)[0]
	fmt.Fprintf(out, "  Longest: %d-%d %s\n", longest.From, longest.To, analysis.FormatMeasurement(longest.Length, p, ""))
	fmt.Fprintf(out, "  Shortest: %d-%d %s\n\n", shortest.From, shortest.To, analysis.FormatMeasurement(shortest.Length, p, ""))

	fmt.Fprintln(out, "Outward Face Normals:")
	for _, face := range report.Faces {
		fmt.Fprintf(out, "  opposite %d: %s\n", face.Opposite, analysis.FormatVector(face.Normal, p))
	}
}
