// Package idgen hands out record identifiers derived from the wall clock.
package idgen

import (
	"strconv"
	"sync/atomic"
	"time"
)

// Generator returns millisecond timestamps as strings, bumped by one whenever
// the clock has not advanced past the previous value, so identifiers are
// strictly increasing within a process.
type Generator struct {
	last atomic.Int64
	now  func() time.Time
}

// New returns a Generator reading the system clock.
func New() *Generator { return &Generator{now: time.Now} }

// NewWithClock is New with an injected clock.
func NewWithClock(now func() time.Time) *Generator { return &Generator{now: now} }

// Next returns the next identifier.
func (g *Generator) Next() string {
	for {
		prev := g.last.Load()
		n := g.now().UnixMilli()
		if n <= prev {
			n = prev + 1
		}
		if g.last.CompareAndSwap(prev, n) {
			return strconv.FormatInt(n, 10)
		}
	}
}
