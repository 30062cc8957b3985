package main

import (
	"fmt"

	"github.com/philipparndt/gotet/pkg/analysis"
	"github.com/spf13/cobra"
)

func newFacesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "faces [file]",
		Short: "List all four faces with their outward normals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args)
			if err != nil {
				return err
			}

			report, err := analysis.AnalyzeTetrahedron(doc.Tetrahedron, opts.cfg.Tolerance)
			if err != nil {
				return err
			}

			p := opts.cfg.Precision
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-9s %-10s %-14s %-14s %s\n", "Opposite", "Vertices", "Area", "Perimeter", "Normal")
			fmt.Fprintln(out, "--------------------------------------------------------------------------------")
			for _, face := range report.Faces {
				fmt.Fprintf(out, "%-9d %-10s %-14.*f %-14.*f %s\n",
					face.Opposite,
					fmt.Sprintf("%d,%d,%d", face.Vertices[0], face.Vertices[1], face.Vertices[2]),
					p, face.Area,
					p, face.Perimeter,
					analysis.FormatVector(face.Normal, p))
			}
			return nil
		},
	}
}
