// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go: BuildGraph orchestrator and the draft that constructors fill.

package builder

import (
	"fmt"

	"github.com/katalvlaran/betweenness/core"
)

// draft accumulates vertices and edges in emission order.
type draft struct {
	vertices []int
	seenV    map[int]bool
	edges    []core.Edge
	seenE    map[core.Edge]bool
}

func newDraft() *draft {
	return &draft{seenV: make(map[int]bool), seenE: make(map[core.Edge]bool)}
}

// addVertex appends v unless already present.
func (d *draft) addVertex(v int) {
	if d.seenV[v] {
		return
	}
	d.seenV[v] = true
	d.vertices = append(d.vertices, v)
}

// addEdge appends (u,v) unless the canonical edge is already present.
func (d *draft) addEdge(u, v int) {
	e := core.Edge{U: u, V: v}
	c := e.Canonical()
	if d.seenE[c] {
		return
	}
	d.seenE[c] = true
	d.edges = append(d.edges, e)
}

// Constructor appends a topology to the draft using the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves bopts, applies every constructor in order, and
// validates the result through core.NewGraph.
// Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(d.vertices, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// Lists returns the vertex and edge lists the constructors would produce,
// without validation. Useful for printing a generated graph as input text.
func Lists(bopts []BuilderOption, cons ...Constructor) ([]int, []core.Edge, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()
	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("Lists: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, nil, fmt.Errorf("Lists: %w", err)
		}
	}

	return d.vertices, d.edges, nil
}
