package main

import (
	"fmt"

	"github.com/philipparndt/gotet/pkg/geometry"
	"github.com/philipparndt/gotet/pkg/tetfile"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		format   string
		opposite int
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write a tetrahedron in text or YAML form",
		Long: `Write the tetrahedron to stdout in the chosen format. Without a file the
unit corner sample is exported, which makes a starting point for new input files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("opposite") {
				if _, err := geometry.FaceIndices(opposite); err != nil {
					return err
				}
				doc.SetOpposite(opposite)
			}

			var f tetfile.Format
			switch format {
			case tetfile.FormatText.String():
				f = tetfile.FormatText
			case tetfile.FormatYAML.String():
				f = tetfile.FormatYAML
			default:
				return fmt.Errorf("unknown format %q (use text or yaml)", format)
			}

			return tetfile.Write(cmd.OutOrStdout(), doc, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", tetfile.FormatText.String(), "Output format: text or yaml")
	cmd.Flags().IntVarP(&opposite, "opposite", "o", 0, "Store a face selector in the output")

	return cmd
}
