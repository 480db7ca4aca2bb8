package api

import (
	"context"
	"net/http"
)

// TokenSource supplies the bearer token for outbound requests. The session
// store implements it; tests use a stub.
type TokenSource interface {
	Token() (string, bool)
}

// TokenInvalidator is implemented by token sources that can destroy the
// stored credential. When a request that carried the token comes back 401
// the transport invalidates before returning, so a rejected credential is
// never offered again.
type TokenInvalidator interface {
	Invalidate()
}

// Client is the transport seen by resource accessors. Every method returns
// an Envelope and never panics.
type Client interface {
	Request(ctx context.Context, method, endpoint string, body any, headers http.Header) Envelope
	Get(ctx context.Context, endpoint string) Envelope
	Post(ctx context.Context, endpoint string, body any) Envelope
	Put(ctx context.Context, endpoint string, body any) Envelope
	Delete(ctx context.Context, endpoint string) Envelope
}
