package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/betweenness/bfs"
	"github.com/katalvlaran/betweenness/centrality"
	"github.com/katalvlaran/betweenness/graphio"
	"github.com/katalvlaran/betweenness/paths"
)

func (c *CLI) topCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Print the vertices tied for the highest betweenness centrality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := c.loadGraph()
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			top, err := centrality.TopBetweenness(g, c.centralityOptions(cmd)...)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Ranked %d vertices", g.Order()))

			fmt.Fprintln(cmd.OutOrStdout(), StyleTop.Render(fmt.Sprint(top)))
			return nil
		},
	}
}

func (c *CLI) scoresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Print every vertex's betweenness centrality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := c.loadGraph()
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			res, err := centrality.Scores(g, c.centralityOptions(cmd)...)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Scored %d vertices", len(res.Scores)))

			printResult(cmd.OutOrStdout(), res, c.cfg.Epsilon)
			return nil
		},
	}
}

func (c *CLI) scoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score <vertex>",
		Short: "Print one vertex's betweenness centrality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVertexArg(args[0])
			if err != nil {
				return err
			}
			g, err := c.loadGraph()
			if err != nil {
				return err
			}
			score, err := centrality.Betweenness(g, v, c.centralityOptions(cmd)...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				StyleValue.Render(fmt.Sprintf("%d", v)), StyleNumber.Render(formatScore(score)))
			return nil
		},
	}
}

func (c *CLI) distanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <from> <to>",
		Short: "Print the BFS hop count between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseVertexPair(args)
			if err != nil {
				return err
			}
			g, err := c.loadGraph()
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			opts := []bfs.Option{bfs.WithContext(cmd.Context())}
			if debugEnabled(logger) {
				opts = append(opts, bfs.WithOnVisit(func(v, depth int) error {
					logger.Debug("Visit", "vertex", v, "depth", depth)
					return nil
				}))
			}
			d, err := bfs.MinDistance(g, from, to, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if d == bfs.Unreachable {
				fmt.Fprintln(out, StyleDim.Render("unreachable"))
				return nil
			}
			fmt.Fprintln(out, StyleNumber.Render(fmt.Sprintf("%d", d)))
			return nil
		},
	}
}

func (c *CLI) pathsCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "paths <from> <to>",
		Short: "Print every shortest path between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseVertexPair(args)
			if err != nil {
				return err
			}
			g, err := c.loadGraph()
			if err != nil {
				return err
			}
			ps, err := paths.AllShortestPaths(g, from, to,
				paths.WithContext(cmd.Context()), paths.WithMaxPaths(c.cfg.MaxPaths))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range ps {
				if check {
					if err := paths.Validate(g, p); err != nil {
						return fmt.Errorf("path %s: %w", p, err)
					}
				}
				fmt.Fprintln(out, StyleValue.Render(p.String()))
			}
			if check {
				fmt.Fprintln(out, StyleSuccess.Render(iconSuccess+" all paths valid"))
			}
			printDetail(out, "%d shortest path(s)", len(ps))
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "validate every path against the graph")

	return cmd
}

func (c *CLI) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the loaded graph as a TOML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := c.loadGraph()
			if err != nil {
				return err
			}
			return graphio.WriteTOML(cmd.OutOrStdout(), g)
		},
	}
}

func parseVertexPair(args []string) (int, int, error) {
	from, err := parseVertexArg(args[0])
	if err != nil {
		return 0, 0, err
	}
	to, err := parseVertexArg(args[1])
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}
