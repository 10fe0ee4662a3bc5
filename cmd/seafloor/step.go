package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newStepCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "step N",
		Short: "Print the floor after N steps",
		Long:  `Runs at most N steps and prints the floor. Stops early when a step moves nothing.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return errors.Errorf("step count must be a non-negative number, got %q", args[0])
			}
			f, err := opts.load()
			if err != nil {
				return err
			}
			done := 0
			for done < n {
				r := f.Step()
				done++
				logStep(done, r)
				if !r.Moved() {
					break
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "After %d steps:\n%s\n", done, f.Render())
			return nil
		},
	}
}
