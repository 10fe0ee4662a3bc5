package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/seafloor/model"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Simulate until no cucumber moves",
		Long:  `Runs whole steps until one of them moves nothing, then prints the floor and the number of steps.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.load()
			if err != nil {
				return err
			}
			out, err := model.Simulate(f, opts.maxSteps, logStep)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.Render())
			fmt.Fprintf(cmd.OutOrStdout(), "\nIt took %d steps for none of the cucumbers to move\n", out.Steps)
			return nil
		},
	}
}

func logStep(step int, r model.StepResult) {
	log.WithFields(log.Fields{
		"step":  step,
		"east":  len(r.East),
		"south": len(r.South),
	}).Debug("step")
}
