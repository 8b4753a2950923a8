package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ai-forecaster/internal/config"
	"ai-forecaster/internal/secrets"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the encrypted credentials file",
	Long: `Prompt for the provider API key and an encryption password, then write
the encrypted credentials file used by 'run' and 'schedule'.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := config.New()

	apiKey, err := secrets.ReadLine("Enter your API key: ")
	if err != nil {
		return err
	}
	if apiKey == "" {
		return fmt.Errorf("api key must not be empty")
	}
	password, err := secrets.ReadPassword("Enter password to encrypt config: ")
	if err != nil {
		return err
	}
	confirm, err := secrets.ReadPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords don't match")
	}

	if err := secrets.Create(cfg.CredentialsFilePath, apiKey, password); err != nil {
		return fmt.Errorf("create credentials: %w", err)
	}
	fmt.Printf("Configuration created and encrypted at %s\n", cfg.CredentialsFilePath)
	return nil
}
