package httpclient

import (
	"net/http"
	"time"

	"codex-service/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs upstream calls. Only method, host and path are
// logged; headers and query strings may carry credentials.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Named("httpclient")

	log.Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("host", req.URL.Host),
			zap.String("path", req.URL.Path),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// Instrument wraps the client's transport with a LoggingRoundTripper.
// Calling it on an already instrumented client is a no-op.
func Instrument(client *http.Client) *http.Client {
	if _, ok := client.Transport.(*LoggingRoundTripper); ok {
		return client
	}

	proxied := client.Transport
	if proxied == nil {
		proxied = http.DefaultTransport
	}
	client.Transport = &LoggingRoundTripper{Proxied: proxied}
	return client
}
