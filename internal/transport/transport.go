// Package transport carries façade calls either to the in-process mock
// endpoint or to a remote HTTP server speaking the same grammar.
package transport

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fairyhunter13/inventory-task-simulator/internal/config"
	"github.com/fairyhunter13/inventory-task-simulator/internal/endpoint"
)

// Kind names a transport implementation.
type Kind string

const (
	KindMock   Kind = "mock"
	KindRemote Kind = "remote"
)

// Transport issues one REST call and decodes the response payload into out.
// out may be nil when the caller does not need the payload.
type Transport interface {
	Kind() Kind
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// FromConfig picks the transport once. ep is only used when cfg.MockAPI is set.
func FromConfig(cfg config.Config, ep *endpoint.Endpoint) Transport {
	if cfg.MockAPI {
		return NewMock(ep)
	}
	return NewRemote(cfg.APIBaseURL, http.DefaultClient)
}
