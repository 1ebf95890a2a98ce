// Package paths defines types and options for exhaustive shortest-path
// enumeration, including cancellation and a cap on the number of paths.
package paths

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrVertexNotFound indicates that start or end does not exist in the graph.
	ErrVertexNotFound = errors.New("paths: vertex not found")

	// ErrPathLimit indicates enumeration produced more paths than MaxPaths allows.
	ErrPathLimit = errors.New("paths: path limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")

	// ErrEmptyPath is returned by Validate for a path with no vertices.
	ErrEmptyPath = errors.New("paths: empty path")

	// ErrNotAdjacent is returned by Validate when consecutive vertices share no edge.
	ErrNotAdjacent = errors.New("paths: consecutive vertices not adjacent")

	// ErrRepeatedVertex is returned by Validate when a vertex occurs twice.
	ErrRepeatedVertex = errors.New("paths: repeated vertex")
)

// Path is an ordered sequence of vertices from a start to an end vertex.
type Path []int

// Len returns the number of edges (hops) on the path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Contains reports whether v occurs anywhere on the path, endpoints included.
func (p Path) Contains(v int) bool {
	for _, x := range p {
		if x == v {
			return true
		}
	}

	return false
}

// Interior reports whether v occurs on the path strictly between its endpoints.
func (p Path) Interior(v int) bool {
	if len(p) < 3 {
		return false
	}

	return p[1 : len(p)-1].Contains(v)
}

// String renders the path as "1 -> 2 -> 3".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " -> ")
}

// Option configures optional behavior of AllShortestPaths.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxPaths, if positive, caps the number of paths for a single pair.
	// Exceeding it aborts with ErrPathLimit. Default is 0 (no limit).
	MaxPaths int

	err error
}

// DefaultOptions returns Options with a background context and no path cap.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxPaths: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths caps the number of enumerated paths per pair.
//
//	n > 0: at most n paths
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}
