package config

import (
	"os"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"LLM_PROVIDER", "INSTRUMENTS", "HORIZONS", "QUERY_MAX_RETRIES",
		"QUERY_RETRY_BACKOFF", "CALL_PACING", "OUTPUT_DIR", "MIRROR_DIRS",
		"CRON_SPEC", "CREDENTIALS_FILE_PATH", "TELEGRAM_BOT_TOKEN",
	} {
		// t.Setenv registers the restore; unsetting after guarantees the
		// default path is exercised even in a polluted environment.
		t.Setenv(k, "x")
		os.Unsetenv(k)
	}
	cfg := New()

	if cfg.LLMProvider != "openai" {
		t.Fatalf("default provider: got %q", cfg.LLMProvider)
	}
	if len(cfg.Instruments) != 3 || cfg.Instruments[0] != "EURUSD" {
		t.Fatalf("default instruments: %v", cfg.Instruments)
	}
	if len(cfg.HorizonLabels) != 3 || cfg.HorizonLabels[2] != "3 months" {
		t.Fatalf("default horizons: %v", cfg.HorizonLabels)
	}
	if cfg.CronSpec != "0 9 * * 1" {
		t.Fatalf("default cron spec: %q", cfg.CronSpec)
	}
	if cfg.QueryMaxRetries != 3 {
		t.Fatalf("default retry budget: got %d", cfg.QueryMaxRetries)
	}
	if cfg.QueryRetryBackoff != 10*time.Second {
		t.Fatalf("default backoff: got %v", cfg.QueryRetryBackoff)
	}
	if cfg.CallPacing != time.Second {
		t.Fatalf("default pacing: got %v", cfg.CallPacing)
	}
}

func TestConfigParsesLists(t *testing.T) {
	t.Setenv("INSTRUMENTS", "EURUSD:USDJPY")
	t.Setenv("HORIZONS", "1 week:6 months")
	t.Setenv("MIRROR_DIRS", "/data/a:/data/b")
	t.Setenv("QUERY_RETRY_BACKOFF", "2s")
	t.Setenv("TELEGRAM_CHAT_ID", "1234")

	cfg := New()
	if len(cfg.Instruments) != 2 || cfg.Instruments[1] != "USDJPY" {
		t.Fatalf("instruments: %v", cfg.Instruments)
	}
	if len(cfg.HorizonLabels) != 2 || cfg.HorizonLabels[1] != "6 months" {
		t.Fatalf("horizons: %v", cfg.HorizonLabels)
	}
	if len(cfg.MirrorDirs) != 2 || cfg.MirrorDirs[0] != "/data/a" {
		t.Fatalf("mirrors: %v", cfg.MirrorDirs)
	}
	if cfg.QueryRetryBackoff != 2*time.Second {
		t.Fatalf("backoff: %v", cfg.QueryRetryBackoff)
	}
	if cfg.TelegramChatID != 1234 {
		t.Fatalf("chat id: %d", cfg.TelegramChatID)
	}
}
