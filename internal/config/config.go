package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// LLM settings
	LLMProvider   string `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Yandex (optional)
	YandexFolderID string `env:"YANDEX_FOLDER_ID"`

	// Analysis matrix
	Instruments   []string `env:"INSTRUMENTS" envSeparator:":" envDefault:"EURUSD:XAUUSD:GBPUSD"`
	HorizonLabels []string `env:"HORIZONS" envSeparator:":" envDefault:"1 week:1 month:3 months"`

	// Remote call policy
	QueryMaxRetries   int           `env:"QUERY_MAX_RETRIES" envDefault:"3"`
	QueryRetryBackoff time.Duration `env:"QUERY_RETRY_BACKOFF" envDefault:"10s"`
	CallPacing        time.Duration `env:"CALL_PACING" envDefault:"1s"`

	// Output
	OutputDir  string   `env:"OUTPUT_DIR" envDefault:"."`
	MirrorDirs []string `env:"MIRROR_DIRS" envSeparator:":"`

	// Trigger: standard 5-field cron spec, local time.
	// Default is the original Monday 09:00 schedule.
	CronSpec string `env:"CRON_SPEC" envDefault:"0 9 * * 1"`

	// Credentials
	CredentialsFilePath string `env:"CREDENTIALS_FILE_PATH" envDefault:"config.enc"`

	// Telegram run notifications (optional, disabled when token is empty)
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
