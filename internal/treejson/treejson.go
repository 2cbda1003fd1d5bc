// Package treejson bridges JSON documents and binary trees for the demo
// harness. A tree is written as nested objects:
//
//	{"value": 10, "left": {"value": 20}, "right": null}
//
// Absent and null children both mean an absent subtree.
package treejson

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/collections/btree"
)

// ErrBadTree is returned when a document does not describe a tree.
var ErrBadTree = errors.New("malformed tree document")

// Parse builds a tree from a JSON document. Empty input and JSON null both
// produce a nil root.
func Parse(doc string) (*btree.Node[float64], error) {
	if doc == "" {
		return nil, nil
	}
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrBadTree)
	}
	return parseNode(gjson.Parse(doc))
}

func parseNode(v gjson.Result) (*btree.Node[float64], error) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: node must be an object, got %s", ErrBadTree, v.Type)
	}
	val := v.Get("value")
	if val.Type != gjson.Number {
		return nil, fmt.Errorf("%w: node missing numeric value field", ErrBadTree)
	}

	n := btree.NewNode(val.Float())
	var err error
	if n.Left, err = parseNode(v.Get("left")); err != nil {
		return nil, err
	}
	if n.Right, err = parseNode(v.Get("right")); err != nil {
		return nil, err
	}
	return n, nil
}

// RenderValues renders named value sequences as a single JSON object, one
// array per name, with names emitted in sorted order.
func RenderValues(sequences map[string][]float64) (string, error) {
	names := make([]string, 0, len(sequences))
	for name := range sequences {
		names = append(names, name)
	}
	sort.Strings(names)

	out := "{}"
	for _, name := range names {
		var err error
		out, err = sjson.Set(out, name, sequences[name])
		if err != nil {
			return "", fmt.Errorf("render %q: %w", name, err)
		}
	}
	return out, nil
}
