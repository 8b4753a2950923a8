package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.enc")
	if err := Create(path, "sk-test-123", "hunter2"); err != nil {
		t.Fatalf("create: %v", err)
	}

	creds, err := Load(path, "hunter2")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if creds.APIKey != "sk-test-123" {
		t.Fatalf("unexpected api key: %q", creds.APIKey)
	}
	if creds.CreatedAt == "" {
		t.Fatalf("created_at not set")
	}
}

func TestLoadWrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.enc")
	if err := Create(path, "sk-test-123", "correct"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := Load(path, "wrong"); err == nil {
		t.Fatalf("expected decryption failure with wrong password")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.enc")
	_, err := Load(path, "pw")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestFileIsNotPlaintext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.enc")
	if err := Create(path, "sk-very-secret", "pw"); err != nil {
		t.Fatalf("create: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(data), "sk-very-secret") || strings.Contains(string(data), "api_key") {
		t.Fatalf("credentials stored in plaintext")
	}
}
