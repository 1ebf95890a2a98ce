// Package centrality defines options, results and errors for exhaustive
// betweenness centrality.
package centrality

import (
	"context"
	"errors"
	"fmt"
)

// DefaultEpsilon is the tolerance used when comparing scores for ties.
const DefaultEpsilon = 1e-9

// minVertices is the smallest graph with a positive normalizer (N-1)(N-2)/2.
const minVertices = 3

// Sentinel errors returned by the centrality computation.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrVertexNotFound indicates the queried vertex is not in the graph.
	ErrVertexNotFound = errors.New("centrality: vertex not found")

	// ErrDegenerateGraph indicates fewer than 3 vertices, where the
	// normalizer (N-1)(N-2)/2 is zero.
	ErrDegenerateGraph = errors.New("centrality: graph needs at least 3 vertices")

	// ErrDisconnected indicates some vertex pair has no shortest path,
	// which would make the per-pair ratio a division by zero.
	ErrDisconnected = errors.New("centrality: graph is disconnected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// DisconnectedError names a vertex pair with no path between them.
type DisconnectedError struct {
	U, V int
}

func (e *DisconnectedError) Error() string {
	return fmt.Sprintf("%v: no path between %d and %d", ErrDisconnected, e.U, e.V)
}

// Unwrap exposes ErrDisconnected to errors.Is.
func (e *DisconnectedError) Unwrap() error { return ErrDisconnected }

// Membership selects which shortest paths count as passing through a vertex.
type Membership int

const (
	// Inclusive counts a path when the vertex appears anywhere on it.
	Inclusive Membership = iota
	// Interior counts a path only when the vertex is strictly between the endpoints.
	Interior
)

// String returns the option's configuration name.
func (m Membership) String() string {
	switch m {
	case Inclusive:
		return "inclusive"
	case Interior:
		return "interior"
	}

	return fmt.Sprintf("Membership(%d)", int(m))
}

// ParseMembership maps "inclusive" or "interior" to a Membership.
func ParseMembership(s string) (Membership, error) {
	switch s {
	case "inclusive", "":
		return Inclusive, nil
	case "interior":
		return Interior, nil
	}

	return Inclusive, fmt.Errorf("%w: unknown membership %q", ErrOptionViolation, s)
}

// Option configures a centrality computation.
type Option func(*Options)

// Options holds parameters for centrality computation.
type Options struct {
	// Ctx allows cancellation; checked between vertex pairs and during enumeration.
	Ctx context.Context

	// Epsilon is the tie tolerance for TopBetweenness. Must be >= 0.
	Epsilon float64

	// MaxPaths caps the shortest paths enumerated per pair (0 = no limit).
	MaxPaths int

	// Membership selects Inclusive (default) or Interior path counting.
	Membership Membership

	// OnPair, if non-nil, observes each pair's contribution.
	OnPair func(node, u, v, through, total int)

	err error
}

// DefaultOptions returns Options with a background context, DefaultEpsilon,
// no path cap and Inclusive membership.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Epsilon:    DefaultEpsilon,
		MaxPaths:   0,
		Membership: Inclusive,
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

// WithEpsilon sets the tie tolerance; negative values are rejected.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: Epsilon cannot be negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxPaths caps per-pair enumeration; negative values are rejected.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithMembership selects how path membership is counted.
func WithMembership(m Membership) Option {
	return func(o *Options) {
		if m != Inclusive && m != Interior {
			o.err = fmt.Errorf("%w: unknown membership %d", ErrOptionViolation, int(m))
			return
		}
		o.Membership = m
	}
}

// WithOnPair registers a hook observing every (node, pair) contribution.
func WithOnPair(fn func(node, u, v, through, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPair = fn
		}
	}
}

// Score pairs a vertex with its betweenness centrality.
type Score struct {
	Vertex int
	Value  float64
}

// Result holds the centrality of every vertex, in vertex input order.
type Result struct {
	Scores []Score
	Max    float64
}

// Top returns every vertex whose score is within eps of Max, in input order.
func (r *Result) Top(eps float64) []int {
	var top []int
	for _, s := range r.Scores {
		if r.Max-s.Value <= eps {
			top = append(top, s.Vertex)
		}
	}

	return top
}

// Of returns the score for v and whether v is present.
func (r *Result) Of(v int) (float64, bool) {
	for _, s := range r.Scores {
		if s.Vertex == v {
			return s.Value, true
		}
	}

	return 0, false
}
