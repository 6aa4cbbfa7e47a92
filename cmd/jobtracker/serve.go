package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtracker/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	Long:  `Start an HTTP server that serves the job dashboard, the login check and the resume panel as HTML, JSON and server-sent events.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides the config file)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jobs, err := loadJobs(cfg.Dataset)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
		log.Printf("Loaded %d jobs, parse delay %v, upload limit %d bytes", len(jobs), cfg.Delay(), cfg.MaxUploadBytes)
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		Jobs:           jobs,
		ParseDelay:     cfg.Delay(),
		MaxUploadBytes: cfg.MaxUploadBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(cmd.Context())
}
