package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wangbaolong/gotron/config"
	"github.com/wangbaolong/gotron/logging"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	GitCommit = "unknown"

	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gotron",
	Short: "Offline TRON chain toolkit",
	Long: `Gotron is an offline toolkit for TRON-compatible chains.

It builds genesis blocks from a JSON configuration, derives canonical
transaction and block identifiers, and persists the resulting chain head
into a local block store.`,
	Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.toml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(genesisCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Gotron %s\n", Version)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	},
}

// newLogger creates a logger from the tool config, honoring --verbose.
func newLogger(cfg *config.LoggingConfig) *logging.Logger {
	level := logging.ParseLevel(cfg.Level)
	if verbose {
		level = logging.ParseLevel("debug")
	}
	if cfg.Format == "json" {
		return logging.NewJSONLogger(os.Stderr, level)
	}
	return logging.NewTextLogger(os.Stderr, level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
