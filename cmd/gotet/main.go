package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gotet/internal/config"
	"github.com/philipparndt/gotet/version"
	"github.com/spf13/cobra"
)

// options is shared by every subcommand through the root command
type options struct {
	configPath string
	precision  int
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "gotet",
		Short: "Measure a tetrahedron: volume and outward face normals",
		Long: `gotet computes the volume of a tetrahedron given by four 3D points and
the outward unit normal of any of its faces. Input is read from a .tet or
.yaml file; without a file the unit corner tetrahedron is used.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("precision") {
				cfg.Precision = opts.precision
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a gotet.yaml config file")
	rootCmd.PersistentFlags().IntVarP(&opts.precision, "precision", "p", config.DefaultPrecision, "Decimal places in output")

	rootCmd.AddCommand(
		newVolumeCmd(opts),
		newNormalCmd(opts),
		newFacesCmd(opts),
		newInfoCmd(opts),
		newExportCmd(),
		newConfigCmd(opts),
		newCompletionCmd(rootCmd),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
