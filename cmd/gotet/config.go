package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after applying the config file and flags.
With --save the result is written to a file instead, e.g. to create gotet.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if savePath == "" {
				return opts.cfg.Write(cmd.OutOrStdout())
			}
			if err := opts.cfg.Save(savePath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved configuration to %s\n", savePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "Write the configuration to this path")

	return cmd
}
