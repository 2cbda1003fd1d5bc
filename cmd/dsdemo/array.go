package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/collections/dynarray"
)

func newArrayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "array",
		Short: "Demonstrate the dynamic array",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := dynarray.New[int]()
			for _, v := range []int{10, 30, 40} {
				a.Append(v)
			}
			logrus.WithField("size", a.Size()).Debug("appended initial elements")
			fmt.Fprintf(cmd.OutOrStdout(), "after appends:   %v\n", a.ToSlice())

			if err := a.Add(1, 20); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "after Add(1,20): %v\n", a.ToSlice())

			if err := a.Remove(3); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "after Remove(3): %v\n", a.ToSlice())

			if err := a.Set(0, 11); err != nil {
				return err
			}
			v, err := a.Get(0)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "after Set(0,11): Get(0) = %d\n", v)

			// Out-of-range access is rejected, never clamped.
			if _, err := a.Get(a.Size()); err != nil {
				logrus.WithError(err).Info("out-of-range Get rejected as expected")
			}

			fmt.Fprint(cmd.OutOrStdout(), "index order:    ")
			for it := a.Values(); it.Next(); {
				fmt.Fprintf(cmd.OutOrStdout(), " %d:%d", it.Index(), it.Value())
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
