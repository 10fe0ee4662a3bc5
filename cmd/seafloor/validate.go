package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the floor map without simulating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.load()
			if err != nil {
				return err
			}
			c := f.Census()
			fmt.Fprintf(cmd.OutOrStdout(), "%dx%d, %d east, %d south\n", f.Width(), f.Height(), c.East, c.South)
			return nil
		},
	}
}
