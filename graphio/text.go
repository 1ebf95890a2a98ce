package graphio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/betweenness/core"
)

// ErrSyntax indicates malformed vertex or edge text.
var ErrSyntax = errors.New("graphio: syntax error")

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ParseVertices parses a comma-separated list of integers, e.g. "1, 2, 3".
func ParseVertices(s string) ([]int, error) {
	s = stripSpace(s)
	if s == "" {
		return []int{}, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %q is not an integer", ErrSyntax, i+1, f)
		}
		out = append(out, v)
	}

	return out, nil
}

// ParseEdges parses a comma-separated list of integer pairs in parentheses,
// e.g. "(1,2), (2,3)".
func ParseEdges(s string) ([]core.Edge, error) {
	s = stripSpace(s)
	if s == "" {
		return []core.Edge{}, nil
	}
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("%w: edges must look like (u,v),(u,v)", ErrSyntax)
	}
	tuples := strings.Split(s[1:len(s)-1], "),(")
	out := make([]core.Edge, 0, len(tuples))
	for i, tup := range tuples {
		parts := strings.Split(tup, ",")
		if len(parts) != 2 || strings.ContainsAny(tup, "()") {
			return nil, fmt.Errorf("%w: edge %d: %q is not a pair", ErrSyntax, i+1, tup)
		}
		u, errU := strconv.Atoi(parts[0])
		v, errV := strconv.Atoi(parts[1])
		if errU != nil || errV != nil {
			return nil, fmt.Errorf("%w: edge %d: %q has a non-integer endpoint", ErrSyntax, i+1, tup)
		}
		out = append(out, core.Edge{U: u, V: v})
	}

	return out, nil
}

// Load parses vertex and edge text and validates the result.
func Load(vertices, edges string) (*core.Graph, error) {
	vs, err := ParseVertices(vertices)
	if err != nil {
		return nil, err
	}
	es, err := ParseEdges(edges)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(vs, es)
}

// FormatVertices renders vertices in the text format ParseVertices reads.
func FormatVertices(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// FormatEdges renders edges in the text format ParseEdges reads.
func FormatEdges(es []core.Edge) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}

	return strings.Join(parts, ",")
}
