package endpoint

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
	"github.com/fairyhunter13/inventory-task-simulator/internal/store"
)

// call carries what a matched route needs.
type call struct {
	id    string
	query url.Values
	body  []byte
}

type handler func(ctx context.Context, c call) (any, error)

// route is one row of the routing table.
type route struct {
	method   string
	pattern  string
	segs     []string
	resource string
	op       string
	handle   handler
}

func newRoute(method, pattern, resource, op string, h handler) route {
	return route{
		method:   method,
		pattern:  pattern,
		segs:     splitPath(pattern),
		resource: resource,
		op:       op,
		handle:   h,
	}
}

// match reports whether path fits the pattern and returns the {id} capture.
func (r route) match(method string, segs []string) (string, bool) {
	if method != r.method || len(segs) != len(r.segs) {
		return "", false
	}
	id := ""
	for i, s := range r.segs {
		if s == "{id}" {
			if segs[i] == "" {
				return "", false
			}
			id = segs[i]
			continue
		}
		if s != segs[i] {
			return "", false
		}
	}
	return id, true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

type validator interface {
	Validate() error
}

// draftOf and patchOf pin a resource's body types.
type draftOf[T store.Record[T]] interface {
	store.Draft[T]
	validator
}

type patchOf[T store.Record[T]] interface {
	store.Patch[T]
	validator
}

// crud builds the five routes of one resource. list serves GET on the
// collection path.
func crud[T store.Record[T], D draftOf[T], P patchOf[T]](path, title string, st *store.Store[T], list handler) []route {
	item := path + "/{id}"
	res := st.Name()
	return []route{
		newRoute("GET", path, res, "list", list),
		newRoute("GET", item, res, "get", func(_ context.Context, c call) (any, error) {
			return st.Get(c.id)
		}),
		newRoute("POST", path, res, "create", func(_ context.Context, c call) (any, error) {
			d, err := decode[D](c.body, title)
			if err != nil {
				return nil, err
			}
			return st.Insert(d), nil
		}),
		newRoute("PUT", item, res, "update", func(_ context.Context, c call) (any, error) {
			p, err := decode[P](c.body, title)
			if err != nil {
				return nil, err
			}
			return st.Update(c.id, p)
		}),
		newRoute("DELETE", item, res, "delete", func(_ context.Context, c call) (any, error) {
			if err := st.Remove(c.id); err != nil {
				return nil, err
			}
			return model.Ack{Message: title + " deleted successfully"}, nil
		}),
	}
}

// decode unmarshals and validates a request body before any store access.
func decode[B validator](body []byte, title string) (B, error) {
	var b B
	if len(body) == 0 {
		return b, &model.ValidationError{Reason: title + " data is required"}
	}
	if err := json.Unmarshal(body, &b); err != nil {
		return b, &model.ValidationError{Field: "body", Reason: "invalid json: " + err.Error()}
	}
	if err := b.Validate(); err != nil {
		return b, err
	}
	return b, nil
}
