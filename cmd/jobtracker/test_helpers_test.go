package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jonathan/jobtracker/internal/config"
)

// executeCommand runs the CLI in-process and returns everything it printed.
// Flag variables are package globals, so they are reset to their defaults first.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	for _, env := range []string{config.EnvPort, config.EnvParseDelay, config.EnvDataset, config.EnvMaxUploadBytes, config.EnvVerbose} {
		t.Setenv(env, "")
	}
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	_, err := rootCmd.ExecuteC()
	return out.String(), err
}

// resetFlags also resets each command's context, which cobra only fills in when unset.
func resetFlags(cmd *cobra.Command) {
	cmd.SetContext(context.Background())
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
