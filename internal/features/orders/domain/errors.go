package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUpstream is matched by every error that aborts an order fetch.
var ErrUpstream = errors.New("upstream order fetch failed")

// TransportError reports a failed HTTP exchange with the commerce platform:
// a network failure (StatusCode 0) or a non-2xx status.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("shopify transport error: %v", e.Err)
	}
	return fmt.Sprintf("shopify API returned status: %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrUpstream }

// ProtocolError reports a response that was delivered but cannot be used:
// a GraphQL error list or a malformed payload.
type ProtocolError struct {
	Messages []string
	Err      error
}

func (e *ProtocolError) Error() string {
	if len(e.Messages) > 0 {
		return "shopify GraphQL request failed: " + strings.Join(e.Messages, "; ")
	}
	return fmt.Sprintf("shopify GraphQL response invalid: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func (e *ProtocolError) Is(target error) bool { return target == ErrUpstream }
