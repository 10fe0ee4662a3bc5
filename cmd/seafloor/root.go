package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/seafloor/model"
)

type options struct {
	input    string
	maxSteps int
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "seafloor",
		Short: "Seafloor simulates sea cucumber herds until they stop moving",
		Long: `Seafloor loads a map of east (>) and south (v) facing sea cucumbers and
moves them step by step on a wrapping floor until no cucumber can move.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.input, "input", "i", model.DefaultInput, "File with the floor map")
	rootCmd.PersistentFlags().IntVar(&opts.maxSteps, "max-steps", 0, "Give up after this many steps (0 = no limit)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every step")

	rootCmd.AddCommand(newRunCmd(opts), newValidateCmd(opts), newStepCmd(opts))
	return rootCmd
}

func (o *options) load() (*model.Floor, error) {
	f, err := model.LoadFile(o.input)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"input":  o.input,
		"width":  f.Width(),
		"height": f.Height(),
	}).Debug("floor loaded")
	return f, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
