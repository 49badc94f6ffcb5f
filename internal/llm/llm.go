package llm

import (
	"context"
	"errors"
)

var (
	// ErrMissingCredential means no API key was configured; surfaced before
	// any network call is attempted.
	ErrMissingCredential = errors.New("llm api key is not set")
	// ErrUpstream covers network failures and non-2xx provider responses.
	ErrUpstream = errors.New("llm provider unavailable")
	// ErrUnexpectedResponse means the provider returned 2xx but the payload
	// lacked the expected message content.
	ErrUnexpectedResponse = errors.New("llm did not return a valid response")
	// ErrMalformedOutput means JSON-mode output failed to parse as JSON.
	ErrMalformedOutput = errors.New("llm response was not valid JSON")
)

// Schema names a JSON schema used to request structured output.
type Schema struct {
	Name       string
	Definition map[string]any
}

// Client is a minimal completion interface to allow pluggable providers.
// Every call is a fresh synchronous round trip: no retries, no streaming,
// no caching.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteJSON(ctx context.Context, prompt string, schema Schema) ([]byte, error)
}
