package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup [file...]",
	Short: "Report structural-sharing savings for a path list",
	Long: `Compares the raw size of the input path text against the
deduplicated storage the allocator actually retains. High savings mean
the input shares many prefixes (deep directory trees, many siblings).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newAllocator()
		res, err := ingest(a, args)
		if err != nil {
			return err
		}
		stats := a.Stats()

		stored := stats.StringBytes + stats.Nodes*nodeOverheadBytes
		savings := 0.0
		if res.InputBytes > 0 {
			savings = 1 - float64(stored)/float64(res.InputBytes)
		}

		if jsonOut {
			return json.NewEncoder(os.Stdout).Encode(struct {
				Paths       int     `json:"paths"`
				InputBytes  int     `json:"input_bytes"`
				StoredBytes int     `json:"stored_bytes"`
				Savings     float64 `json:"savings"`
			}{res.Paths, res.InputBytes, stored, savings})
		}

		fmt.Printf("%s paths, %s of path text\n",
			humanize.Comma(int64(res.Paths)), humanize.Bytes(uint64(res.InputBytes)))
		fmt.Printf("stored as %s strings + %s nodes = ~%s (%.1f%% saved)\n",
			humanize.Comma(int64(stats.Strings)),
			humanize.Comma(int64(stats.Nodes)),
			humanize.Bytes(uint64(stored)),
			savings*100)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dedupCmd)
}
