package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobtracker/internal/observability"
	"github.com/jonathan/jobtracker/internal/validation"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check a login form",
	Long:  "Check the email and password of a login form. Only the shape of the values is checked; there is no account behind it.",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

var (
	loginEmail    string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	result := validation.ValidateLogin(loginEmail, loginPassword)
	observability.NewPrinter(cmd.OutOrStdout()).PrintLoginResult(result)

	if !result.Valid {
		cmd.SilenceUsage = true
		return fmt.Errorf("login form is invalid")
	}
	return nil
}
