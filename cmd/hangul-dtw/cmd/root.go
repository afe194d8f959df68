// Package cmd provides the CLI commands for hangul-dtw.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dirhq88/hangul-dtw/internal/logging"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hangul-dtw",
	Short: "Align Hangul strings at the jamo level",
	Long: `hangul-dtw aligns a raw (possibly misspelled) Hangul text against a
ground-truth text at the level of phonetic units, using Dynamic Time
Warping over the decomposed jamo sequences.

Examples:
  hangul-dtw align 안녕하세요 안녕하세여
  hangul-dtw align --matrix --alignment 안녕하세요 안녕하세여
  hangul-dtw align --costs scheme.yml --format json 안녕하세요 안녕하세여`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(alignCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	if err := logging.Initialize(verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hangul-dtw version 0.1.0")
	},
}
