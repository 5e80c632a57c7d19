package scholarseeker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go"
)

// RetryPolicy bounds how a completion request is retried. Backoff and
// Sleep are injectable so tests can run without real delays.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	Sleep       func(time.Duration)
}

// DefaultRetryPolicy retries up to 3 attempts, waiting 1s, 2s, 4s, ...
// between them.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff:     ExponentialBackoff,
		Sleep:       time.Sleep,
	}
}

// ExponentialBackoff returns 2^attempt seconds for a 0-based attempt index.
func ExponentialBackoff(attempt int) time.Duration {
	return time.Second << attempt
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 3
	}
	if p.Backoff == nil {
		p.Backoff = ExponentialBackoff
	}
	if p.Sleep == nil {
		p.Sleep = time.Sleep
	}
	return p
}

// CompleteWithRetry issues a non-streaming completion request, retrying on
// rate limiting and transport failures with the policy's backoff schedule.
// Any other HTTP error fails immediately without consuming the remaining
// attempts.
func CompleteWithRetry(ctx context.Context, client CompletionClient, params openai.ChatCompletionNewParams, policy RetryPolicy) (*openai.ChatCompletion, error) {
	policy = policy.normalized()
	logger := slog.Default()

	var lastErr error
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		completion, err := client.New(ctx, params)
		if err == nil {
			return completion, nil
		}

		var apierr *openai.Error
		if errors.As(err, &apierr) && apierr.StatusCode != http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %w", ErrNonRetryable, err)
		}

		lastErr = err
		if attempt < policy.MaxAttempts-1 {
			wait := policy.Backoff(attempt)
			logger.Warn("completion request failed, retrying",
				"attempt", attempt+1, "wait", wait, "error", err)
			policy.Sleep(wait)
		}
	}

	logger.Error("completion request failed", "attempts", policy.MaxAttempts, "error", lastErr)
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, policy.MaxAttempts, lastErr)
}
