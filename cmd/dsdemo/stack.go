package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/collections/stack"
)

func newStackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stack",
		Short: "Demonstrate the LIFO stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := stack.New[int]()
			for _, v := range []int{77, 88, 99} {
				s.Push(v)
				logrus.WithField("value", v).Debug("pushed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stack (top first): %v\n", s.ToSlice())

			if v, ok := s.Pop(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "popped:            %d\n", v)
			}
			if v, ok := s.Peek(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "new top:           %d\n", v)
			}

			// Underflow is a sentinel result, not an error.
			empty := stack.New[int]()
			if _, ok := empty.Pop(); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "empty pop:         no value")
			}
			return nil
		},
	}
}
