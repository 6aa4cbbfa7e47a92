package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtracker/internal/config"
	"github.com/jonathan/jobtracker/internal/observability"
	"github.com/jonathan/jobtracker/internal/resumeparse"
	"github.com/jonathan/jobtracker/internal/types"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume <file>",
	Short: "Fill a resume form from a file",
	Long:  "Fill a resume form from a PDF, DOC or DOCX file. The parser is a mock: after a fixed delay it returns the same sample form for every file. Press Ctrl-C to cancel.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParseResume,
}

var (
	parseDelay time.Duration
	parseJSON  bool
)

func init() {
	parseResumeCmd.Flags().DurationVar(&parseDelay, "delay", 0, "Simulated parse time (defaults to the configured parse_delay)")
	parseResumeCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the form as JSON")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delay") {
		if parseDelay <= 0 {
			return fmt.Errorf("--delay must be positive")
		}
		cfg.ParseDelay = config.Duration(parseDelay)
	}

	file, err := describeFile(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	printer := observability.NewPrinter(cmd.OutOrStdout())
	ws := resumeparse.NewWorkspace(resumeparse.NewParser(cfg.Delay()), cfg.MaxUploadBytes)

	task, err := ws.Upload(ctx, file)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintNotice(fmt.Sprintf("Task %s parsing %s (%d bytes)", task.ID, file.Name, file.Size))
	} else {
		printer.PrintNotice("Parsing " + file.Name + "...")
	}

	// The task stops on its own when ctx is cancelled.
	if _, err := task.Wait(context.Background()); err != nil {
		if errors.Is(err, resumeparse.ErrCancelled) {
			cmd.SilenceUsage = true
		}
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if parseJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(ws.Snapshot())
	}

	printer.PrintResumeForm(file, ws.Form())
	return nil
}

// describeFile builds the upload description of a local file. The content is never read.
func describeFile(path string) (types.UploadedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.UploadedFile{}, fmt.Errorf("failed to read resume file: %w", err)
	}
	if info.IsDir() {
		return types.UploadedFile{}, fmt.Errorf("%s is a directory", path)
	}
	return types.UploadedFile{
		Name:        filepath.Base(path),
		Size:        info.Size(),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
	}, nil
}
