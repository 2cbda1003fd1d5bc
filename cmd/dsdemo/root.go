package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:     "dsdemo",
		Short:   "Demonstrate the collections library structures",
		Long:    "dsdemo constructs each structure in the collections library,\nruns its operations with literal data, and prints the results.",
		Version: fmt.Sprintf("%s (commit %s)", version, commit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newArrayCmd(),
		newListCmd(),
		newStackCmd(),
		newQueueCmd(),
		newTreeCmd(),
	)

	return root
}
