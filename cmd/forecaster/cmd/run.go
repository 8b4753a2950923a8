package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ai-forecaster/internal/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one analysis pass over the full matrix",
	Long: `Run the instrument x horizon matrix once and exit. Useful for testing
the configuration before scheduling.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	r, err := buildRunner(cfg)
	if err != nil {
		return err
	}

	fmt.Println("Running manual analysis...")
	if err := r.RunOnce(context.Background()); err != nil {
		return err
	}
	fmt.Println("Manual analysis completed!")
	return nil
}
