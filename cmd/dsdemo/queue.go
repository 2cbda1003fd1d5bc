package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/collections/queue"
)

func newQueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "Demonstrate the FIFO queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := queue.New[int]()
			for _, v := range []int{10, 20, 30} {
				q.Enqueue(v)
				logrus.WithField("value", v).Debug("enqueued")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "queue (front first): %v\n", q.ToSlice())

			if v, ok := q.Dequeue(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "dequeued:            %d\n", v)
			}
			if v, ok := q.Peek(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "new front:           %d\n", v)
			}

			// Underflow is a sentinel result, not an error.
			empty := queue.New[int]()
			if _, ok := empty.Dequeue(); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "empty dequeue:       no value")
			}
			return nil
		},
	}
}
