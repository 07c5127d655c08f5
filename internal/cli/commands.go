package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/graph"
	"github.com/katalvlaran/wordladder/ladder"
)

type statsJSON struct {
	Words            int      `json:"words"`
	TotalDegree      int      `json:"total_degree"`
	AverageDegree    float64  `json:"average_degree"`
	MaxDegree        int      `json:"max_degree"`
	MaxDegreeWords   []string `json:"max_degree_words"`
	MinDegree        int      `json:"min_degree"`
	MinDegreeWords   []string `json:"min_degree_words"`
	Isolated         []string `json:"isolated"`
	Components       int      `json:"components"`
	LargestComponent int      `json:"largest_component"`
}

type pathJSON struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Found    bool     `json:"found"`
	Distance int      `json:"distance"`
	Path     []string `json:"path,omitempty"`
}

func RunStats(cmd *cobra.Command, _ []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st, err := s.Stats()
	if errors.Is(err, graph.ErrEmptyGraph) {
		if asJSON {
			return printJSON(out, statsJSON{})
		}
		fmt.Fprintf(out, "No words of length %d.\n", s.Lexicon().WordLength())
		return nil
	}
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(out, statsJSON(st))
	}
	fmt.Fprintf(out, "Words: %d\n", st.Words)
	fmt.Fprintf(out, "Average neighbor count (average degree): %.3f\n", st.AverageDegree)
	fmt.Fprintf(out, "Word(s) with most neighbors (highest degree %d): %s\n", st.MaxDegree, strings.Join(st.MaxDegreeWords, ", "))
	fmt.Fprintf(out, "Word(s) with fewest neighbors (lowest degree %d): %s\n", st.MinDegree, strings.Join(st.MinDegreeWords, ", "))
	fmt.Fprintf(out, "Connected components: %d (largest %d)\n", st.Components, st.LargestComponent)
	if len(st.Isolated) > 0 {
		fmt.Fprintf(out, "Words with no neighbors (%d):\n", len(st.Isolated))
		for _, w := range st.Isolated {
			fmt.Fprintln(out, w)
		}
	}
	return nil
}

func RunList(cmd *cobra.Command, _ []string) error {
	withNeighbors, err := cmd.Flags().GetBool("neighbors")
	if err != nil {
		return fmt.Errorf("failed to read --neighbors flag: %w", err)
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	g, lex := s.Graph(), s.Lexicon()
	for i := 0; i < g.Len(); i++ {
		fmt.Fprintf(out, "%-6d%s: %d", i, lex.Text(i), g.Degree(i))
		if withNeighbors && g.Degree(i) > 0 {
			names := make([]string, 0, g.Degree(i))
			for _, j := range g.Neighbors(i) {
				names = append(names, lex.Text(j))
			}
			fmt.Fprintf(out, " [%s]", strings.Join(names, " "))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func RunPath(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}
	maxDepth, err := cmd.Flags().GetInt("max-depth")
	if err != nil {
		return fmt.Errorf("failed to read --max-depth flag: %w", err)
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	var opts []bfs.Option
	if maxDepth != 0 {
		opts = append(opts, bfs.WithMaxDepth(maxDepth))
	}

	out := cmd.OutOrStdout()
	from, to := ladder.Normalize(args[0]), ladder.Normalize(args[1])
	res, err := s.Path(from, to, opts...)
	switch {
	case errors.Is(err, bfs.ErrNotFound):
		if asJSON {
			return printJSON(out, pathJSON{From: from, To: to, Distance: -1})
		}
		fmt.Fprintf(out, "Path between %s and %s doesn't exist.\n", from, to)
		return nil
	case err != nil:
		return err
	}

	if asJSON {
		return printJSON(out, pathJSON{From: from, To: to, Found: true, Distance: res.Distance, Path: res.Path})
	}
	fmt.Fprintln(out, strings.Join(res.Path, " > "))
	fmt.Fprintf(out, "Shortest distance between %s and %s: %d\n", from, to, res.Distance)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
