// Package main provides the entry point for the JobTracker Pro CLI and dashboard server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobtracker/internal/catalog"
	"github.com/jonathan/jobtracker/internal/config"
	"github.com/jonathan/jobtracker/internal/types"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "jobtracker",
	Short: "JobTracker Pro job dashboard",
	Long:  "JobTracker Pro browses a catalog of job postings, checks login forms, and fills resume forms from a mock parser, from the command line or a local web dashboard.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by flags)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config file, environment and defaults, then applies
// the persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	return cfg, nil
}

// loadJobs returns the catalog at path, or the built-in sample when path is empty.
func loadJobs(path string) ([]types.Job, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	jobs, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return jobs, nil
}
