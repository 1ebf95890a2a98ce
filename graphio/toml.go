package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/betweenness/core"
)

// document is the TOML shape of a graph file.
type document struct {
	Vertices []int   `toml:"vertices"`
	Edges    [][]int `toml:"edges"`
}

// ReadTOML decodes a TOML graph document from r and validates it.
// ReadTOML does not close r.
func ReadTOML(r io.Reader) (*core.Graph, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrSyntax, err)
	}

	edges := make([]core.Edge, 0, len(doc.Edges))
	for i, pair := range doc.Edges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrSyntax, i+1, len(pair))
		}
		edges = append(edges, core.Edge{U: pair[0], V: pair[1]})
	}

	return core.NewGraph(doc.Vertices, edges)
}

// ImportTOML reads the TOML graph file at path.
func ImportTOML(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadTOML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteTOML encodes g as a TOML graph document.
func WriteTOML(w io.Writer, g *core.Graph) error {
	doc := document{Vertices: g.Vertices(), Edges: make([][]int, 0, g.Size())}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, []int{e.U, e.V})
	}

	return toml.NewEncoder(w).Encode(doc)
}
