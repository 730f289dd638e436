package feed

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/nextbus"
)

const defaultMaxRetries = 3

func NewRetryBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = time.Minute

	return backoff.WithMaxRetries(b, defaultMaxRetries)
}

// Retry runs operation again while it fails with a feed Error flagged as retryable.
// Transport failures and non retryable feed errors are returned straight away.
func Retry[T any](ctx context.Context, b backoff.BackOff, operation func() (T, error)) (T, error) {
	return backoff.RetryNotifyWithData(
		func() (T, error) {
			result, err := operation()
			if err == nil {
				return result, nil
			}

			var feedError *nextbus.Error
			if errors.As(err, &feedError) && feedError.Retryable() {
				return result, err
			}

			return result, backoff.Permanent(err)
		},
		backoff.WithContext(b, ctx),
		func(err error, d time.Duration) {
			log.Warn().Err(err).Str("wait", d.String()).Msg("Feed asked for a retry")
		},
	)
}
