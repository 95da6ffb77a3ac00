package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
	"github.com/fairyhunter13/inventory-task-simulator/internal/obs"
)

// Error codes shared with the HTTP server.
const (
	CodeNotFound        = "not_found"
	CodeUnknownEndpoint = "unknown_endpoint"
	CodeValidation      = "validation_error"
)

// errorBody is the JSON error payload written by the server.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Remote talks to a server over HTTP. There is no retry and no client-side
// timeout; callers bound calls with ctx.
type Remote struct {
	base   string
	client *http.Client
}

// NewRemote returns a transport rooted at baseURL. A nil client means
// http.DefaultClient.
func NewRemote(baseURL string, client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{base: strings.TrimRight(baseURL, "/"), client: client}
}

func (r *Remote) Kind() Kind { return KindRemote }

func (r *Remote) Get(ctx context.Context, path string, query url.Values, out any) error {
	return r.do(ctx, http.MethodGet, path, query, nil, out)
}

func (r *Remote) Post(ctx context.Context, path string, body, out any) error {
	return r.do(ctx, http.MethodPost, path, nil, body, out)
}

func (r *Remote) Put(ctx context.Context, path string, body, out any) error {
	return r.do(ctx, http.MethodPut, path, nil, body, out)
}

func (r *Remote) Delete(ctx context.Context, path string, out any) error {
	return r.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (r *Remote) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := r.base + path
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		target += sep + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := marshalBody(body)
		if err != nil {
			return &model.ValidationError{Field: "body", Reason: err.Error()}
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return &model.TransportError{Op: method, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return &model.TransportError{Op: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &model.TransportError{Op: method, URL: target, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	}

	var eb errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&eb)
	obs.Logger.Debug("remote_call_failed",
		"method", method,
		"url", target,
		"status", resp.StatusCode,
		"error", eb.Error,
	)
	return mapError(method, path, target, resp.StatusCode, eb)
}

// mapError turns a server error payload back into the model error kinds.
func mapError(method, path, target string, status int, eb errorBody) error {
	switch {
	case status == http.StatusNotFound && eb.Error == CodeNotFound:
		res, id := splitItemPath(path)
		return &model.NotFoundError{Resource: res, ID: id}
	case status == http.StatusNotFound && eb.Error == CodeUnknownEndpoint:
		return &model.UnknownEndpointError{Method: method, URL: path}
	case status == http.StatusBadRequest && eb.Error == CodeValidation:
		return &model.ValidationError{Reason: eb.Details}
	}
	msg := eb.Error
	if msg == "" {
		msg = http.StatusText(status)
	}
	if eb.Details != "" {
		msg += ": " + eb.Details
	}
	return &model.TransportError{Op: method, URL: target, Status: status, Err: errors.New(msg)}
}

var resourceNames = map[string]string{
	"products":   "product",
	"categories": "category",
	"tasks":      "task",
}

func splitItemPath(path string) (resource, id string) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segs := strings.Split(strings.Trim(path, "/"), "/")
	resource = segs[0]
	if n, ok := resourceNames[resource]; ok {
		resource = n
	}
	if len(segs) > 1 {
		id = segs[len(segs)-1]
	}
	return resource, id
}

func marshalBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	}
	return json.Marshal(body)
}
