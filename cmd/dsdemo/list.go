package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/collections/linkedlist"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Demonstrate the singly linked list",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := linkedlist.New("b", "c", "d")
			fmt.Fprintf(cmd.OutOrStdout(), "constructed:          %v\n", l.ToSlice())

			l.InsertAtHead("a")
			fmt.Fprintf(cmd.OutOrStdout(), "after InsertAtHead:   %v\n", l.ToSlice())

			if err := l.InsertAfter(1, "b2"); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "after InsertAfter(1): %v\n", l.ToSlice())

			if err := l.DeleteAfter(0); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "after DeleteAfter(0): %v\n", l.ToSlice())

			if err := l.DeleteAtHead(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "after DeleteAtHead:   %v\n", l.ToSlice())

			// An unreachable position is an error, not a silent no-op.
			if err := l.InsertAfter(99, "x"); err != nil {
				logrus.WithError(err).Info("unreachable insert rejected as expected")
			}

			if n := l.Find(0); n != nil {
				logrus.WithField("head", n.Value()).WithField("len", l.Len()).Debug("list state")
			}
			return nil
		},
	}
}
