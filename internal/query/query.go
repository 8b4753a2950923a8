package query

import (
	"context"
	"fmt"
	"log"
	"time"

	"ai-forecaster/internal/llm"
)

// RemoteError is returned once the retry budget is exhausted; it wraps the
// last underlying failure.
type RemoteError struct {
	Attempts int
	Err      error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote query failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Client wraps an llm.Client with a bounded fixed-delay retry policy.
// One Query makes at most maxRetries+1 attempts with the same backoff
// between them; linear on purpose, so an operator watching the logs can
// predict when the next attempt lands.
type Client struct {
	llm        llm.Client
	maxRetries int
	backoff    time.Duration
}

func New(c llm.Client, maxRetries int, backoff time.Duration) *Client {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{llm: c, maxRetries: maxRetries, backoff: backoff}
}

// Query sends the prompt and returns the raw response text. Content is not
// interpreted here. Every attempt is logged with the remaining budget.
func (c *Client) Query(ctx context.Context, prompt string) (string, error) {
	attempts := 0
	var lastErr error
	for left := c.maxRetries; ; left-- {
		attempts++
		resp, err := c.llm.Generate(ctx, []llm.Message{{Role: "user", Content: prompt}})
		if err == nil {
			log.Printf("remote query succeeded on attempt %d", attempts)
			return resp.Content, nil
		}
		lastErr = err
		log.Printf("remote query attempt %d failed (retries left: %d): %v", attempts, left, err)
		if left <= 0 {
			break
		}
		if err := sleep(ctx, c.backoff); err != nil {
			lastErr = err
			break
		}
	}
	return "", &RemoteError{Attempts: attempts, Err: lastErr}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
