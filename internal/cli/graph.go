package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/betweenness/builder"
	"github.com/katalvlaran/betweenness/core"
	"github.com/katalvlaran/betweenness/graphio"
)

var (
	errNoGraph        = errors.New("no graph given: use --vertices/--edges, --file or --generate")
	errConflictingSrc = errors.New("--vertices/--edges, --file and --generate are mutually exclusive")
	errBadGenerator   = errors.New("invalid generator spec")
)

// graphSource collects the flags that select where a graph comes from.
type graphSource struct {
	vertices string
	edges    string
	file     string
	generate string
	base     int
}

func (s *graphSource) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.vertices, "vertices", "", `comma separated vertex ids, e.g. "1,2,3"`)
	fs.StringVar(&s.edges, "edges", "", `edge tuples, e.g. "(1,2),(2,3)"`)
	fs.StringVarP(&s.file, "file", "f", "", "TOML graph file")
	fs.StringVarP(&s.generate, "generate", "g", "",
		"generator spec: cycle:N, path:N, star:N, wheel:N, complete:N, grid:RxC, random:N:P[:SEED]")
	fs.IntVar(&s.base, "base", 1, "first vertex id for --generate")
}

// loadGraph resolves the graph from the flags, falling back to the
// configured default file.
func (c *CLI) loadGraph() (*core.Graph, error) {
	s := c.src
	given := 0
	for _, set := range []bool{s.vertices != "" || s.edges != "", s.file != "", s.generate != ""} {
		if set {
			given++
		}
	}
	if given > 1 {
		return nil, errConflictingSrc
	}

	switch {
	case s.generate != "":
		cons, opts, err := parseGenerator(s.generate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, builder.WithBase(s.base))
		c.Logger.Debug("Generating graph", "spec", s.generate, "base", s.base)
		return builder.BuildGraph(opts, cons)
	case s.file != "":
		c.Logger.Debug("Reading graph", "file", s.file)
		return graphio.ImportTOML(s.file)
	case s.vertices != "":
		return graphio.Load(s.vertices, s.edges)
	case c.cfg.Graph != "":
		c.Logger.Debug("Reading configured graph", "file", c.cfg.Graph)
		return graphio.ImportTOML(c.cfg.Graph)
	}

	return nil, errNoGraph
}

// sized maps generator names taking a single vertex count to constructors.
var sized = map[string]func(int) builder.Constructor{
	"cycle":    builder.Cycle,
	"path":     builder.Path,
	"star":     builder.Star,
	"wheel":    builder.Wheel,
	"complete": builder.Complete,
}

// parseGenerator turns a spec such as "wheel:7" or "random:10:0.3:42" into a
// builder constructor plus any options it needs.
func parseGenerator(spec string) (builder.Constructor, []builder.BuilderOption, error) {
	kind, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", errBadGenerator, spec)
	}

	if fn, found := sized[kind]; found {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q: %v", errBadGenerator, spec, err)
		}
		return fn(n), nil, nil
	}

	switch kind {
	case "grid":
		rs, cs, ok := strings.Cut(rest, "x")
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q: want grid:RxC", errBadGenerator, spec)
		}
		r, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if err := errors.Join(err1, err2); err != nil {
			return nil, nil, fmt.Errorf("%w: %q: %v", errBadGenerator, spec, err)
		}
		return builder.Grid(r, cols), nil, nil
	case "random":
		parts := strings.Split(rest, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, nil, fmt.Errorf("%w: %q: want random:N:P[:SEED]", errBadGenerator, spec)
		}
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q: %v", errBadGenerator, spec, err)
		}
		p, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q: %v", errBadGenerator, spec, err)
		}
		seed := int64(1)
		if len(parts) == 3 {
			if seed, err = strconv.ParseInt(parts[2], 10, 64); err != nil {
				return nil, nil, fmt.Errorf("%w: %q: %v", errBadGenerator, spec, err)
			}
		}
		return builder.RandomSparse(n, p), []builder.BuilderOption{builder.WithSeed(seed)}, nil
	}

	return nil, nil, fmt.Errorf("%w: unknown kind %q", errBadGenerator, kind)
}

// parseVertexArg parses a positional vertex id.
func parseVertexArg(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid vertex %q: %w", s, err)
	}
	return v, nil
}
