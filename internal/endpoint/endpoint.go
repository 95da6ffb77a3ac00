// Package endpoint emulates the REST backend over in-memory stores.
//
// Calls are routed through a table of (method, pattern) rows, where a pattern
// is either a collection path such as /tasks or an item path such as
// /tasks/{id}. Payloads come back bare, exactly as a real server would put
// them in a response body.
package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/fairyhunter13/inventory-task-simulator/internal/fixture"
	"github.com/fairyhunter13/inventory-task-simulator/internal/idgen"
	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
	"github.com/fairyhunter13/inventory-task-simulator/internal/obs"
	"github.com/fairyhunter13/inventory-task-simulator/internal/paging"
	"github.com/fairyhunter13/inventory-task-simulator/internal/query"
	"github.com/fairyhunter13/inventory-task-simulator/internal/store"
)

// Collection paths.
const (
	PathProducts   = "/products"
	PathCategories = "/categories"
	PathTasks      = "/tasks"
)

// DefaultListLimit applies when GET /products has a page but no limit.
const DefaultListLimit = 10

// Request is one verb-shaped call. URL may carry its own query string;
// Query is merged on top of it.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Body   []byte
}

// Endpoint owns one store per resource and the routing table over them.
type Endpoint struct {
	Products   *store.Store[model.Product]
	Categories *store.Store[model.Category]
	Tasks      *store.Store[model.Task]

	metrics *obs.Metrics
	routes  []route
}

type options struct {
	metrics   *obs.Metrics
	storeOpts []store.Option
}

// Option configures an Endpoint.
type Option func(*options)

// WithMetrics counts every routed call.
func WithMetrics(m *obs.Metrics) Option { return func(o *options) { o.metrics = m } }

// WithStoreOptions passes options to every store.
func WithStoreOptions(so ...store.Option) Option {
	return func(o *options) { o.storeOpts = append(o.storeOpts, so...) }
}

// New seeds fresh stores from a copy of seed. All stores share one
// identifier generator unless WithStoreOptions supplies another.
func New(seed fixture.Seed, opts ...Option) *Endpoint {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	so := append([]store.Option{store.WithIDs(idgen.New())}, o.storeOpts...)

	e := &Endpoint{
		Products:   store.New("product", seed.Products, so...),
		Categories: store.New("category", seed.Categories, so...),
		Tasks:      store.New("task", seed.Tasks, so...),
		metrics:    o.metrics,
	}
	e.routes = append(e.routes, crud[model.Product, model.ProductDraft, model.ProductPatch](PathProducts, "Product", e.Products, e.listProducts)...)
	e.routes = append(e.routes, crud[model.Category, model.CategoryDraft, model.CategoryPatch](PathCategories, "Category", e.Categories, e.listCategories)...)
	e.routes = append(e.routes, crud[model.Task, model.TaskDraft, model.TaskPatch](PathTasks, "Task", e.Tasks, e.listTasks)...)
	return e
}

// Get serves GET url. params are merged with any query string in url.
func (e *Endpoint) Get(ctx context.Context, rawURL string, params url.Values) (any, error) {
	return e.Serve(ctx, Request{Method: http.MethodGet, URL: rawURL, Query: params})
}

// Post serves POST url with body encoded as JSON.
func (e *Endpoint) Post(ctx context.Context, rawURL string, body any) (any, error) {
	b, err := encodeBody(body)
	if err != nil {
		return nil, err
	}
	return e.Serve(ctx, Request{Method: http.MethodPost, URL: rawURL, Body: b})
}

// Put serves PUT url with body encoded as JSON.
func (e *Endpoint) Put(ctx context.Context, rawURL string, body any) (any, error) {
	b, err := encodeBody(body)
	if err != nil {
		return nil, err
	}
	return e.Serve(ctx, Request{Method: http.MethodPut, URL: rawURL, Body: b})
}

// Delete serves DELETE url.
func (e *Endpoint) Delete(ctx context.Context, rawURL string) (any, error) {
	return e.Serve(ctx, Request{Method: http.MethodDelete, URL: rawURL})
}

// Serve routes req. A request matching no row fails with *model.UnknownEndpointError.
func (e *Endpoint) Serve(ctx context.Context, req Request) (any, error) {
	method := strings.ToUpper(req.Method)
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, e.unknown(method, req.URL)
	}
	segs := splitPath(u.Path)
	for _, rt := range e.routes {
		id, ok := rt.match(method, segs)
		if !ok {
			continue
		}
		q := u.Query()
		for k, vs := range req.Query {
			q[k] = vs
		}
		res, err := rt.handle(ctx, call{id: id, query: q, body: req.Body})
		e.observe(rt, id, err)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
	return nil, e.unknown(method, req.URL)
}

func (e *Endpoint) unknown(method, rawURL string) error {
	e.metrics.ObserveResource("unknown", strings.ToLower(method), obs.OutcomeError)
	obs.Logger.Warn("unknown_endpoint", "method", method, "url", rawURL)
	return &model.UnknownEndpointError{Method: method, URL: rawURL}
}

func (e *Endpoint) observe(rt route, id string, err error) {
	outcome := obs.OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, model.ErrNotFound):
		outcome = obs.OutcomeNotFound
	case errors.Is(err, model.ErrValidation):
		outcome = obs.OutcomeInvalid
	default:
		outcome = obs.OutcomeError
	}
	e.metrics.ObserveResource(rt.resource, rt.op, outcome)
	obs.Logger.Debug("resource_call",
		"resource", rt.resource,
		"op", rt.op,
		"id", id,
		"outcome", outcome,
	)
}

func (e *Endpoint) listProducts(_ context.Context, c call) (any, error) {
	p, err := query.ParseParams(c.query)
	if err != nil {
		return nil, err
	}
	items := query.FilterAndSort(e.Products.List(), p)
	if p.Page == 0 && p.Limit == 0 {
		return items, nil
	}
	page, limit := max(p.Page, 1), p.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	return paging.Window(items, page, limit), nil
}

func (e *Endpoint) listCategories(_ context.Context, _ call) (any, error) {
	return e.Categories.List(), nil
}

func (e *Endpoint) listTasks(_ context.Context, c call) (any, error) {
	return query.FilterTasks(e.Tasks.List(), c.query.Get(query.KeySearch)), nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, &model.ValidationError{Field: "body", Reason: err.Error()}
	}
	return b, nil
}
