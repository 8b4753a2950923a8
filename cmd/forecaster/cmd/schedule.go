package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ai-forecaster/internal/config"
	"ai-forecaster/internal/scheduler"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the analysis on the configured cron schedule",
	Long: `Start the scheduler and run the analysis matrix on the configured cron
spec (default: Mondays at 09:00 local time). Stops on SIGINT/SIGTERM.`,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	r, err := buildRunner(cfg)
	if err != nil {
		return err
	}

	sched := scheduler.New(cfg.CronSpec)
	sched.SetRunFunction(r.RunOnce)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	fmt.Println("Starting scheduled analysis. Press Ctrl+C to stop.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	sched.Stop()
	fmt.Println("Scheduled analysis stopped.")
	return nil
}
