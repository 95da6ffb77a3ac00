package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fairyhunter13/inventory-task-simulator/internal/endpoint"
)

// Mock routes calls to an in-process endpoint. Payloads go through a JSON
// round trip so callers see the same shapes the remote path decodes.
type Mock struct {
	ep *endpoint.Endpoint
}

func NewMock(ep *endpoint.Endpoint) *Mock { return &Mock{ep: ep} }

func (m *Mock) Kind() Kind { return KindMock }

func (m *Mock) Get(ctx context.Context, path string, query url.Values, out any) error {
	res, err := m.ep.Get(ctx, path, query)
	return decodeInto(res, err, out)
}

func (m *Mock) Post(ctx context.Context, path string, body, out any) error {
	res, err := m.ep.Post(ctx, path, body)
	return decodeInto(res, err, out)
}

func (m *Mock) Put(ctx context.Context, path string, body, out any) error {
	res, err := m.ep.Put(ctx, path, body)
	return decodeInto(res, err, out)
}

func (m *Mock) Delete(ctx context.Context, path string, out any) error {
	res, err := m.ep.Delete(ctx, path)
	return decodeInto(res, err, out)
}

func decodeInto(res any, err error, out any) error {
	if err != nil || out == nil {
		return err
	}
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
