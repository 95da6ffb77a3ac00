// Package service holds the product and task façades. A façade depends only
// on a transport, validates input before anything is sent, and adds the
// client-side fields a remote backend expects.
package service

import (
	"net/url"
	"time"

	"github.com/fairyhunter13/inventory-task-simulator/internal/idgen"
	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
	"github.com/fairyhunter13/inventory-task-simulator/internal/transport"
)

// DefaultPage and DefaultLimit apply to Paginated when zero values are given.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type options struct {
	now func() time.Time
	ids *idgen.Generator
}

// Option configures a façade.
type Option func(*options)

// WithClock overrides the time used for client-side stamps.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

// WithIDs overrides the generator used for client-side identifiers.
func WithIDs(g *idgen.Generator) Option { return func(o *options) { o.ids = g } }

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ids == nil {
		o.ids = idgen.NewWithClock(o.now)
	}
	return o
}

// stamp is the client-side part of a create on the remote path.
type stamp struct {
	id  string
	now time.Time
}

func (o options) stamp(tr transport.Transport) (stamp, bool) {
	if tr.Kind() != transport.KindRemote {
		return stamp{}, false
	}
	return stamp{id: o.ids.Next(), now: o.now().UTC()}, true
}

func rejectAll(id string) error {
	if id == model.AllCategoryID {
		return &model.ValidationError{Field: "categoryId", Reason: "\"all\" is not a category"}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func itemPath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}
