package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Credentials is what the encrypted file protects. APIKey is the provider
// credential: an API key for OpenAI-compatible endpoints, the OAuth token
// for Yandex.
type Credentials struct {
	APIKey    string `json:"api_key"`
	CreatedAt string `json:"created_at"`
}

var ErrNotFound = errors.New("credentials file not found")

// keyFromPassword derives the AES-256 key as SHA-256 of the password.
func keyFromPassword(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}

// Create encrypts the API key under the password and writes the file.
// On-disk format: base64url(nonce || AES-256-GCM ciphertext).
func Create(path, apiKey, password string) error {
	creds := Credentials{
		APIKey:    apiKey,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	plain, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	gcm, err := newGCM(password)
	if err != nil {
		return err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}
	sealed := gcm.Seal(nonce, nonce, plain, nil)

	encoded := base64.URLEncoding.EncodeToString(sealed)
	if err := os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}

// Load reads and decrypts the credentials file. A missing file returns
// ErrNotFound so callers can tell "not configured" from "wrong password".
func Load(path, password string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, ErrNotFound
		}
		return Credentials{}, fmt.Errorf("read credentials file: %w", err)
	}

	sealed, err := base64.URLEncoding.DecodeString(string(data))
	if err != nil {
		return Credentials{}, fmt.Errorf("decode credentials file: %w", err)
	}

	gcm, err := newGCM(password)
	if err != nil {
		return Credentials{}, err
	}
	if len(sealed) < gcm.NonceSize() {
		return Credentials{}, fmt.Errorf("credentials file truncated")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return Credentials{}, fmt.Errorf("decrypt credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(plain, &creds); err != nil {
		return Credentials{}, fmt.Errorf("unmarshal credentials: %w", err)
	}
	return creds, nil
}

func newGCM(password string) (cipher.AEAD, error) {
	block, err := aes.NewCipher(keyFromPassword(password))
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	return gcm, nil
}
