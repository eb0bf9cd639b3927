package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	separator string
	cacheSize int
	encoding  string
)

var rootCmd = &cobra.Command{
	Use:   "pathctl",
	Short: "Inspect path lists through a shared path allocator",
	Long: `pathctl ingests newline-delimited path lists (find output, file
manifests, dir exports) into a shared path allocator and reports how much
of the input collapses into shared tree storage. It can print allocator
statistics, deduplication savings, and the interned tree itself.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case quiet:
			logrus.SetLevel(logrus.ErrorLevel)
		case verbose:
			logrus.SetLevel(logrus.DebugLevel)
		default:
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&separator, "separator", "/", "Path separator for parsing input")
	rootCmd.PersistentFlags().
		IntVar(&cacheSize, "cache-size", 4096, "Construction memo cache size (0 disables)")
	rootCmd.PersistentFlags().
		StringVar(&encoding, "encoding", "utf-8", "Input encoding: utf-8, utf-16, latin-1")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
