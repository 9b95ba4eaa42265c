package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/dfs"
	"github.com/katalvlaran/statespace/knights"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/space"
)

// solveReport is the JSON form of one solved (or unsolved) puzzle.
type solveReport struct {
	Puzzle    string             `json:"puzzle,omitempty"`
	Method    string             `json:"method"`
	Start     []knights.Location `json:"start"`
	Target    []knights.Location `json:"target,omitempty"`
	Occupies  []knights.Location `json:"occupies,omitempty"`
	Outcome   string             `json:"outcome"`
	Policy    space.Policy       `json:"policy"`
	Cost      float64            `json:"cost"`
	Truncated bool               `json:"truncated"`
	Stats     any                `json:"stats"`
}

// searchSummary is what either search method reports back to the printer.
type searchSummary struct {
	method    string
	outcome   string
	policy    space.Policy
	truncated bool
	stats     any    // bfs.Stats or deepenStats
	counters  string // text form of stats
}

// deepenStats is the JSON form of the iterative-deepening counters.
type deepenStats struct {
	Iterations int `json:"iterations"`
	Visits     int `json:"visits"`
}

func summarizeBFS(res *bfs.Result) searchSummary {
	return searchSummary{
		method:    methodBFS,
		outcome:   res.Outcome.String(),
		policy:    res.Policy,
		truncated: res.Truncated,
		stats:     res.Stats,
		counters:  fmt.Sprintf("discovered=%d expanded=%d", res.Stats.Discovered, res.Stats.Expanded),
	}
}

func summarizeDeepen(res *dfs.DeepenResult, cancelled bool) searchSummary {
	outcome := bfs.NoPolicy
	switch {
	case cancelled:
		outcome = bfs.Cancelled
	case res.Found:
		outcome = bfs.Found
	}
	return searchSummary{
		method:    methodDeepen,
		outcome:   outcome.String(),
		policy:    res.Policy,
		truncated: res.Truncated,
		stats:     deepenStats{Iterations: res.Iterations, Visits: res.Visits},
		counters:  fmt.Sprintf("passes=%d visits=%d", res.Iterations, res.Visits),
	}
}

func writeSolve(w io.Writer, format string, p *puzzle.Puzzle, sum searchSummary) error {
	if format == "json" {
		rep := solveReport{
			Puzzle:    p.Name,
			Method:    sum.method,
			Start:     p.Start().Occupied(),
			Occupies:  p.Occupies(),
			Outcome:   sum.outcome,
			Policy:    sum.policy,
			Cost:      sum.policy.Cost(),
			Truncated: sum.truncated,
			Stats:     sum.stats,
		}
		if target, ok := p.Target(); ok {
			rep.Target = target.Occupied()
		}
		return writeJSON(w, rep)
	}

	var sb strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&sb, "puzzle: %s\n", p.Name)
	}
	fmt.Fprintf(&sb, "start:\n%s\n", p.Start())
	if target, ok := p.Target(); ok {
		fmt.Fprintf(&sb, "target:\n%s\n", target)
	} else {
		fmt.Fprintf(&sb, "goal: occupies %s\n", joinLocations(p.Occupies()))
	}
	fmt.Fprintf(&sb, "outcome: %s\n", sum.outcome)
	if sum.outcome == bfs.Found.String() {
		fmt.Fprintf(&sb, "policy (%d %s): %s\n", sum.policy.Len(), plural(sum.policy.Len(), "action"), sum.policy)
	}
	if sum.truncated {
		sb.WriteString("note: search limits were reached\n")
	}
	fmt.Fprintf(&sb, "states: %s\n", sum.counters)

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMoves(w io.Writer, format string, s knights.State, trs []space.Transition) error {
	if format == "json" {
		actions := make([]space.Action, len(trs))
		for i, tr := range trs {
			actions[i] = tr.Action
		}
		return writeJSON(w, struct {
			Board []knights.Location `json:"board"`
			Moves []space.Action     `json:"moves"`
		}{s.Occupied(), actions})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", s)
	for _, tr := range trs {
		fmt.Fprintf(&sb, "%s\n", tr.Action)
	}
	fmt.Fprintf(&sb, "%d %s\n", len(trs), plural(len(trs), "move"))

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeClassics(w io.Writer, format string, all []*puzzle.Puzzle) error {
	if format == "json" {
		type entry struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Pieces      int    `json:"pieces"`
		}
		list := make([]entry, len(all))
		for i, p := range all {
			list[i] = entry{p.Name, p.Description, p.Start().Len()}
		}
		return writeJSON(w, list)
	}
	for _, p := range all {
		if _, err := fmt.Fprintf(w, "%-14s %s\n", p.Name, p.Description); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinLocations(locs []knights.Location) string {
	parts := make([]string, len(locs))
	for i, l := range locs {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
