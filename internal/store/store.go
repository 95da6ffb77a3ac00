// Package store keeps one resource collection in memory.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/fairyhunter13/inventory-task-simulator/internal/idgen"
	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
)

// Record is anything addressable by an identifier that can deep-copy itself.
type Record[T any] interface {
	RecordID() string
	Clone() T
}

// Draft builds a full record from a partial one, filling defaults.
type Draft[T Record[T]] interface {
	Build(id string, now time.Time) T
}

// Patch merges partial fields over an existing record.
type Patch[T Record[T]] interface {
	Apply(cur T) T
}

type options struct {
	ids *idgen.Generator
	now func() time.Time
}

// Option configures a Store.
type Option func(*options)

// WithIDs shares an identifier generator between stores.
func WithIDs(g *idgen.Generator) Option { return func(o *options) { o.ids = g } }

// WithClock overrides the time used for insert defaults.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

// Store owns the canonical, insertion-ordered records of one resource.
// Records enter and leave the store as deep copies, so callers cannot change
// stored state.
type Store[T Record[T]] struct {
	name string
	ids  *idgen.Generator
	now  func() time.Time

	mu    sync.RWMutex
	items []T
}

// New returns a store holding a copy of seed.
func New[T Record[T]](name string, seed []T, opts ...Option) *Store[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ids == nil {
		o.ids = idgen.NewWithClock(o.now)
	}
	return &Store[T]{
		name:  name,
		ids:   o.ids,
		now:   o.now,
		items: cloneAll(seed),
	}
}

// Name is the resource name used in errors.
func (s *Store[T]) Name() string { return s.name }

// List returns every record in insertion order. The result is never nil.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.items)
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the record with exactly this id.
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		var zero T
		return zero, s.notFound(id)
	}
	return s.items[i].Clone(), nil
}

// Insert assigns a fresh identifier, builds the record and appends it.
func (s *Store[T]) Insert(d Draft[T]) T {
	rec := d.Build(s.ids.Next(), s.now().UTC())
	s.mu.Lock()
	s.items = append(s.items, rec.Clone())
	s.mu.Unlock()
	return rec
}

// Update merges p over the record with this id and replaces it in place.
// Update time is not stamped here.
func (s *Store[T]) Update(id string, p Patch[T]) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		var zero T
		return zero, s.notFound(id)
	}
	s.items[i] = p.Apply(s.items[i].Clone()).Clone()
	return s.items[i].Clone(), nil
}

// Remove deletes exactly one record.
func (s *Store[T]) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return s.notFound(id)
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

func cloneAll[T Record[T]](items []T) []T {
	out := make([]T, len(items))
	for i, r := range items {
		out[i] = r.Clone()
	}
	return out
}

// index must be called with mu held.
func (s *Store[T]) index(id string) int {
	return slices.IndexFunc(s.items, func(r T) bool { return r.RecordID() == id })
}

func (s *Store[T]) notFound(id string) error {
	return &model.NotFoundError{Resource: s.name, ID: id}
}
