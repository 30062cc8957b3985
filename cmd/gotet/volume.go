package main

import (
	"fmt"

	"github.com/philipparndt/gotet/pkg/geometry"
	"github.com/spf13/cobra"
)

func newVolumeCmd(opts *options) *cobra.Command {
	var signed bool

	cmd := &cobra.Command{
		Use:   "volume [file]",
		Short: "Print the volume of a tetrahedron",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args)
			if err != nil {
				return err
			}

			volume := geometry.Volume(doc.Tetrahedron)
			if signed {
				volume = doc.Tetrahedron.SignedVolume()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "volume : %.*f\n", opts.cfg.Precision, volume)
			return nil
		},
	}

	cmd.Flags().BoolVar(&signed, "signed", false, "Print the oriented volume instead of its magnitude")

	return cmd
}
