package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/betweenness/centrality"
	"github.com/katalvlaran/betweenness/graphio"
)

var errNoInput = errors.New("unexpected end of input")

func (c *CLI) promptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Read vertices and edges from stdin and print all scores",
		Long: `Prompt asks for a comma separated vertex list such as "1,2,3" and an edge
list such as "(1,2),(2,3)", then prints every score, the maximum and the
vertices tied for it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			sc := bufio.NewScanner(cmd.InOrStdin())

			vertices, err := ask(sc, out, "Vertices (comma separated): ")
			if err != nil {
				return err
			}
			edges, err := ask(sc, out, "Edges as (u,v) tuples: ")
			if err != nil {
				return err
			}

			g, err := graphio.Load(vertices, edges)
			if err != nil {
				return err
			}
			res, err := centrality.Scores(g, c.centralityOptions(cmd)...)
			if err != nil {
				return err
			}

			printResult(out, res, c.cfg.Epsilon)
			return nil
		},
	}
}

// ask writes label and returns the next input line.
func ask(sc *bufio.Scanner, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return sc.Text(), nil
}

// printResult writes the score table, the maximum and the tied vertices.
func printResult(w io.Writer, res *centrality.Result, eps float64) {
	top := res.Top(eps)
	isTop := make(map[int]bool, len(top))
	for _, v := range top {
		isTop[v] = true
	}

	printTitle(w, "Betweenness centrality")
	for _, s := range res.Scores {
		val := StyleNumber.Render(formatScore(s.Value))
		if isTop[s.Vertex] {
			val += " " + StyleTop.Render(iconTop)
		}
		printKeyValue(w, fmt.Sprintf("%d", s.Vertex), val)
	}
	printTitle(w, "Maximum")
	printKeyValue(w, "score", StyleTop.Render(formatScore(res.Max)))
	printKeyValue(w, "vertices", StyleTop.Render(fmt.Sprint(top)))
}
