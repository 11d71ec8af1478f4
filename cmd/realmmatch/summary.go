package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/freeeve/realmwright/internal/arena"
)

// playstyleStats aggregates every seat played with one playstyle.
type playstyleStats struct {
	Playstyle   string
	Seats       int
	Wins        int
	Draws       int
	Settlements int
	Wealth      float64
}

func (s playstyleStats) meanSettlements() float64 {
	if s.Seats == 0 {
		return 0
	}
	return float64(s.Settlements) / float64(s.Seats)
}

func (s playstyleStats) meanWealth() float64 {
	if s.Seats == 0 {
		return 0
	}
	return s.Wealth / float64(s.Seats)
}

// aggregate folds completed results into per-playstyle stats, sorted by
// wins then name. Failed matches (nil results) are skipped.
func aggregate(results []*arena.MatchResult) []playstyleStats {
	byStyle := make(map[string]*playstyleStats)
	for _, r := range results {
		if r == nil {
			continue
		}
		for _, st := range r.Standings {
			s, ok := byStyle[st.Playstyle]
			if !ok {
				s = &playstyleStats{Playstyle: st.Playstyle}
				byStyle[st.Playstyle] = s
			}
			s.Seats++
			s.Settlements += st.Settlements
			s.Wealth += st.Wealth
			switch r.Winner {
			case st.Name:
				s.Wins++
			case "":
				s.Draws++
			}
		}
	}

	out := make([]playstyleStats, 0, len(byStyle))
	for _, s := range byStyle {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Playstyle < out[j].Playstyle
	})
	return out
}

// buildLabel names a batch after its playstyle mix, e.g. "2 aggressives vs 2 neutrals".
func buildLabel(players []arena.PlayerSpec) string {
	counts := make(map[string]int)
	for _, p := range players {
		counts[string(p.Playstyle)]++
	}
	if len(counts) == 1 {
		for ps := range counts {
			return "realmmatch: all-" + ps
		}
	}

	var parts []string
	for ps, c := range counts {
		name := ps
		if c > 1 {
			name += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", c, name))
	}
	sort.Strings(parts)
	return strings.Join(parts, " vs ")
}

func printSummary(w io.Writer, results []*arena.MatchResult, base arena.MatchConfig, errCount int, label string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	errorColor := color.New(color.FgRed)
	infoColor := color.New(color.FgYellow)

	completed := 0
	for _, r := range results {
		if r != nil {
			completed++
		}
	}

	titleColor.Fprintf(w, "\n%s: %d matches, %d turn limit\n", label, completed, base.MaxTurns)
	if errCount > 0 {
		errorColor.Fprintf(w, "  (%d matches failed)\n", errCount)
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Playstyle", "Seats", "Wins", "Draws", "Avg Settlements", "Avg Wealth"}),
	)
	for _, s := range aggregate(results) {
		_ = table.Append([]string{
			s.Playstyle,
			fmt.Sprintf("%d", s.Seats),
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%d", s.Draws),
			fmt.Sprintf("%.1f", s.meanSettlements()),
			fmt.Sprintf("%.1f", s.meanWealth()),
		})
	}
	_ = table.Render()

	if !base.DryRun && completed > 0 {
		infoColor.Fprintf(w, "\nMatches saved as \"%s #1\" through \"#%d\"\n", label, len(results))
	}
}

func printJSON(w io.Writer, results []*arena.MatchResult, total, errCount int) error {
	out := struct {
		Total   int                  `json:"total"`
		Errors  int                  `json:"errors"`
		Results []*arena.MatchResult `json:"results"`
	}{
		Total:   total,
		Errors:  errCount,
		Results: results,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
