package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathkit/arena"
	"github.com/joshuapare/pathkit/arena/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree [file...]",
	Short: "Render the interned path tree",
	Long: `Ingests the input and prints the resulting node tree, one
component per line, children indented under their parents. Shared
prefixes appear exactly once, which is the point.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newAllocator()
		if _, err := ingest(a, args); err != nil {
			return err
		}
		return renderTree(a, os.Stdout)
	},
}

func renderTree(a *arena.Allocator, w io.Writer) error {
	nodes := a.Stats().Nodes

	names := make([]string, nodes)
	children := make(map[tree.NodeID][]tree.NodeID)
	var roots []tree.NodeID

	for i := 0; i < nodes; i++ {
		id := tree.NodeID(i)
		name, err := a.Name(id)
		if err != nil {
			return err
		}
		names[i] = name

		if a.IsRoot(id) {
			roots = append(roots, id)
			continue
		}
		parent, err := a.Parent(id)
		if err != nil {
			return err
		}
		children[parent] = append(children[parent], id)
	}

	for _, kids := range children {
		sort.Slice(kids, func(i, j int) bool { return names[kids[i]] < names[kids[j]] })
	}

	for _, root := range roots {
		if len(children[root]) == 0 {
			continue
		}
		label := names[root]
		if label == "" {
			label = "."
		}
		fmt.Fprintln(w, label)
		printSubtree(w, names, children, root, 1)
	}
	return nil
}

func printSubtree(w io.Writer, names []string, children map[tree.NodeID][]tree.NodeID, id tree.NodeID, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, child := range children[id] {
		fmt.Fprintf(w, "%s%s\n", indent, names[child])
		printSubtree(w, names, children, child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
