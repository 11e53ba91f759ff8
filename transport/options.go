package transport

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Options struct {
	// URL is the base URL of the rollup node's HTTP server
	URL string

	// MaxTries bounds the attempts made for a single finish call. Values
	// below 1 mean a single attempt.
	MaxTries uint

	// RetryInterval is the first backoff between finish attempts. Zero uses
	// the backoff package default.
	RetryInterval time.Duration

	// Client defaults to a client without a timeout, a stalled node blocks
	// the turn until the context is cancelled.
	Client *http.Client

	Log *zap.Logger
}
