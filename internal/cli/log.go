// Package cli implements the sbc command-line interface.
//
// The commands load an undirected graph from flags, a TOML file or a
// generator spec and report exhaustive betweenness centrality, BFS distances
// and shortest paths. The CLI is built on cobra, reads settings through
// viper and logs with charmbracelet/log.
//
// # Commands
//
//   - top: vertices tied for the highest centrality
//   - scores: every vertex's centrality and the maximum
//   - score: one vertex's centrality
//   - distance: BFS hop count between two vertices
//   - paths: every shortest path between two vertices
//   - export: the loaded graph as a TOML document
//   - prompt: read vertices and edges interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. At debug
// level the per-pair contributions and BFS visits are logged as they happen.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Scored 7 vertices (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// debugEnabled reports whether l emits debug records.
func debugEnabled(l *log.Logger) bool {
	return l.GetLevel() <= log.DebugLevel
}
