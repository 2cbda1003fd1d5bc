package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/collections/btree"
	"github.com/dshills/collections/internal/treejson"
)

// demoTree is the default input: root 10, left subtree 20/40, right
// subtree 30 with children 50 and 60.
const demoTree = `{
	"value": 10,
	"left":  {"value": 20, "left": {"value": 40}},
	"right": {"value": 30, "left": {"value": 50}, "right": {"value": 60}}
}`

func newTreeCmd() *cobra.Command {
	var doc string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Demonstrate binary tree traversal",
		Long:  "Builds a binary tree from a JSON document and prints its preorder\nand inorder traversals as JSON arrays.",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := treejson.Parse(doc)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"nodes":  btree.Count(root),
				"height": btree.Height(root),
			}).Debug("tree parsed")

			pre, err := btree.PreorderValues(root)
			if err != nil {
				return err
			}
			in, err := btree.InorderValues(root)
			if err != nil {
				return err
			}

			out, err := treejson.RenderValues(map[string][]float64{
				"preorder": pre,
				"inorder":  in,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&doc, "json", demoTree, "Tree as a JSON document")
	return cmd
}
