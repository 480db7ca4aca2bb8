package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
)

// recordedCall captures one request seen by the fake transport.
type recordedCall struct {
	Method   string
	Endpoint string
	Body     any
}

// fakeClient implements api.Client for service tests. Responses are scripted
// per "METHOD endpoint" key; unscripted calls get the fallback envelope.
type fakeClient struct {
	mu        sync.Mutex
	Calls     []recordedCall
	Responses map[string]api.Envelope
	// Queue, when non-empty, is consumed first in FIFO order. Used by bulk
	// operations that hit the same endpoint repeatedly.
	Queue    []api.Envelope
	Fallback api.Envelope
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		Responses: map[string]api.Envelope{},
		Fallback:  api.Success(200, nil),
	}
}

func (f *fakeClient) respond(method, endpoint string, env api.Envelope) {
	f.Responses[method+" "+endpoint] = env
}

func (f *fakeClient) Request(ctx context.Context, method, endpoint string, body any, headers http.Header) api.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, recordedCall{Method: method, Endpoint: endpoint, Body: body})

	if len(f.Queue) > 0 {
		env := f.Queue[0]
		f.Queue = f.Queue[1:]
		return env
	}
	if env, ok := f.Responses[method+" "+endpoint]; ok {
		return env
	}
	return f.Fallback
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *fakeClient) Get(ctx context.Context, endpoint string) api.Envelope {
	return f.Request(ctx, http.MethodGet, endpoint, nil, nil)
}

func (f *fakeClient) Post(ctx context.Context, endpoint string, body any) api.Envelope {
	return f.Request(ctx, http.MethodPost, endpoint, body, nil)
}

func (f *fakeClient) Put(ctx context.Context, endpoint string, body any) api.Envelope {
	return f.Request(ctx, http.MethodPut, endpoint, body, nil)
}

func (f *fakeClient) Delete(ctx context.Context, endpoint string) api.Envelope {
	return f.Request(ctx, http.MethodDelete, endpoint, nil, nil)
}

// jsonBody marshals v into the raw payload a success envelope carries.
func jsonBody(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
