package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtracker/internal/joblist"
	"github.com/jonathan/jobtracker/internal/observability"
	"github.com/jonathan/jobtracker/internal/types"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List job postings",
	Long:  "List the job catalog, optionally filtered by a search term (title or company) and a location, and sorted by title, location or company.",
	Args:  cobra.NoArgs,
	RunE:  runJobs,
}

var (
	jobsSearch   string
	jobsLocation string
	jobsSort     string
	jobsDataset  string
	jobsJSON     bool
)

func init() {
	jobsCmd.Flags().StringVarP(&jobsSearch, "search", "s", "", "Search job titles or companies")
	jobsCmd.Flags().StringVarP(&jobsLocation, "location", "l", "", "Filter by location")
	jobsCmd.Flags().StringVar(&jobsSort, "sort", "", "Sort by title, location or company")
	jobsCmd.Flags().StringVar(&jobsDataset, "dataset", "", "Path to a job catalog JSON file (defaults to the built-in sample)")
	jobsCmd.Flags().BoolVar(&jobsJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset = jobsDataset
	}

	jobs, err := loadJobs(cfg.Dataset)
	if err != nil {
		return err
	}

	q := types.Query{
		Search:   jobsSearch,
		Location: jobsLocation,
		Sort:     types.ParseSortKey(jobsSort),
	}
	if jobsSort != "" && q.Sort == types.SortNone {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: unknown sort key %q, keeping catalog order\n", jobsSort)
	}

	view := joblist.View(jobs, q)

	if jobsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintJobs(view)
	return nil
}
