package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ai-forecaster/internal/config"
	"ai-forecaster/internal/forecast"
	"ai-forecaster/internal/llm"
	"ai-forecaster/internal/notify"
	"ai-forecaster/internal/query"
	"ai-forecaster/internal/runner"
	"ai-forecaster/internal/secrets"
	"ai-forecaster/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "forecaster",
	Short: "Scheduled LLM forecasts for financial instruments",
	Long: `Forecaster periodically asks a language model for a directional forecast
on a configured set of instruments and horizons, extracts the
{low, high, rating} triple from each reply, appends it to a per-pair
ledger and archives the full exchange as a run record.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// buildRunner wires the full pipeline: decrypted credentials → provider
// client → retrying query client → writer → runner (+ optional notifier).
func buildRunner(cfg *config.Config) (*runner.Runner, error) {
	password, err := secrets.ReadPassword("Enter password to decrypt config: ")
	if err != nil {
		return nil, err
	}
	creds, err := secrets.Load(cfg.CredentialsFilePath, password)
	if err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return nil, fmt.Errorf("no configuration file found, run 'forecaster init' first")
		}
		return nil, err
	}

	factory := &llm.Factory{
		OpenAIBaseURL:      cfg.OpenAIBaseURL,
		OpenAIModel:        cfg.OpenAIModel,
		OpenRouterReferrer: cfg.OpenRouterReferrer,
		OpenRouterTitle:    cfg.OpenRouterTitle,
		YandexFolderID:     cfg.YandexFolderID,
	}
	client, err := factory.CreateClient(cfg.LLMProvider, creds.APIKey)
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}

	horizons, err := forecast.Horizons(cfg.HorizonLabels)
	if err != nil {
		return nil, fmt.Errorf("invalid horizons: %w", err)
	}
	instruments := make([]forecast.Instrument, 0, len(cfg.Instruments))
	for _, s := range cfg.Instruments {
		instruments = append(instruments, forecast.Instrument(s))
	}

	writer, err := storage.NewWriter(cfg.OutputDir, cfg.MirrorDirs)
	if err != nil {
		return nil, fmt.Errorf("init result writer: %w", err)
	}

	qc := query.New(client, cfg.QueryMaxRetries, cfg.QueryRetryBackoff)
	r := runner.New(instruments, horizons, qc, writer, cfg.CallPacing)

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			return nil, fmt.Errorf("init telegram notifier: %w", err)
		}
		r.SetNotify(tg.RunCompleted)
	}
	return r, nil
}
