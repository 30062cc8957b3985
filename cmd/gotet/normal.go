package main

import (
	"fmt"

	"github.com/philipparndt/gotet/pkg/analysis"
	"github.com/spf13/cobra"
)

func newNormalCmd(opts *options) *cobra.Command {
	var opposite int

	cmd := &cobra.Command{
		Use:   "normal [file]",
		Short: "Print the outward unit normal of one face",
		Long: `Print the outward unit normal of the face opposite the selected vertex.
The selector comes from --opposite, then the file, then the config (default 3).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args)
			if err != nil {
				return err
			}

			selected := doc.OppositeOr(opts.cfg.Opposite)
			if cmd.Flags().Changed("opposite") {
				selected = opposite
			}

			normal, err := doc.Tetrahedron.FaceNormalTol(selected, opts.cfg.Tolerance)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), analysis.FormatNormal(normal, opts.cfg.Precision))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opposite, "opposite", "o", 0, "Index (0-3) of the vertex opposite the face")

	return cmd
}
