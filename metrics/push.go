package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"
)

// Job is the pushgateway job name of the verifier runs.
const Job = "checkpointvm"

type pushOptions struct {
	retries int
	delay   time.Duration
	logger  *zap.Logger
}

// PushOpt configures PushMetrics.
type PushOpt func(*pushOptions)

// WithRetries sets how many times failed push is retried and the base delay between attempts.
func WithRetries(retries int, delay time.Duration) PushOpt {
	return func(opts *pushOptions) {
		opts.retries = retries
		opts.delay = delay
	}
}

// WithLogger sets logger for push attempts.
func WithLogger(logger *zap.Logger) PushOpt {
	return func(opts *pushOptions) {
		opts.logger = logger
	}
}

// A wrapper around zap.Logger to make it compatible with
// retryablehttp.LeveledLogger interface.
type retryableHTTPLogger struct {
	inner *zap.Logger
}

func (r retryableHTTPLogger) Error(format string, args ...any) {
	r.inner.Sugar().Errorw(format, args...)
}

func (r retryableHTTPLogger) Info(format string, args ...any) {
	r.inner.Sugar().Infow(format, args...)
}

func (r retryableHTTPLogger) Warn(format string, args ...any) {
	r.inner.Sugar().Warnw(format, args...)
}

func (r retryableHTTPLogger) Debug(format string, args ...any) {
	r.inner.Sugar().Debugw(format, args...)
}

// PushMetrics pushes everything gathered by the gatherer to the pushgateway at url.
// Verifier runs are short-lived, so metrics are pushed once at the end of the run.
func PushMetrics(
	ctx context.Context,
	url string,
	gatherer prometheus.Gatherer,
	grouping map[string]string,
	opts ...PushOpt,
) error {
	options := pushOptions{retries: 3, delay: 500 * time.Millisecond, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&options)
	}
	client := &retryablehttp.Client{
		RetryMax:     options.retries,
		RetryWaitMin: options.delay,
		RetryWaitMax: 2 * options.delay,
		Backoff:      retryablehttp.LinearJitterBackoff,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
		Logger:       retryableHTTPLogger{inner: options.logger},
		ResponseLogHook: func(_ retryablehttp.Logger, resp *http.Response) {
			options.logger.Debug("pushgateway response",
				zap.Stringer("url", resp.Request.URL),
				zap.Int("status", resp.StatusCode),
			)
		},
	}

	pusher := push.New(url, Job).Gatherer(gatherer).Client(client.StandardClient())
	for name, value := range grouping {
		pusher = pusher.Grouping(name, value)
	}
	if err := pusher.AddContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
