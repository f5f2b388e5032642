// Package display renders driver results to stdout using the same
// tabwriter-plus-lipgloss approach as the rest of the command-line tools in
// this codebase: lipgloss styling is cosmetic only, never load-bearing for
// the underlying plain-text layout.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/exactodds/internal/card"
	"github.com/lox/exactodds/internal/driver"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	handStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tieStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Hands writes the canonical starting hands as a single
// "hands = <names...>" line, space-separated.
func Hands(w io.Writer, hands []card.Hand) {
	names := make([]string, len(hands))
	for i, h := range hands {
		names[i] = h.String()
	}
	fmt.Fprintf(w, "hands = %s\n", strings.Join(names, " "))
}

// Matchup writes a matchup's result. In verbose mode it writes the full
// "Alice: w/t = f" / "Bob: ..." / "Tie: ..." block with the exact
// floating-point ratio, the format exact.cpp's show_comparison emits; in
// non-verbose mode it writes only the matchup label, matching the quiet
// progress output exact.cpp's compare_many_hands falls back to when not
// asked to show full equities.
func Matchup(w io.Writer, r driver.Result, verbose bool) {
	if !verbose {
		fmt.Fprintf(w, "%s vs %s\n", r.Job.Alice, r.Job.Bob)
		return
	}

	o := r.Outcomes
	total := o.Total()
	fmt.Fprintf(w, "%s vs %s\n", r.Job.Alice, r.Job.Bob)
	fmt.Fprintf(w, "  Alice: %d/%d = %s\n", o.Alice, total, ratio(o.Alice, total))
	fmt.Fprintf(w, "  Bob:   %d/%d = %s\n", o.Bob, total, ratio(o.Bob, total))
	fmt.Fprintf(w, "  Tie:   %d/%d = %s\n", o.Tie, total, ratio(o.Tie, total))
}

// Table writes every result as one styled tabwriter row: hand vs hand,
// Alice's win%, Bob's win%, tie%.
func Table(w io.Writer, results []driver.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("matchup"),
		headerStyle.Render("alice"),
		headerStyle.Render("bob"),
		headerStyle.Render("tie"))

	for _, r := range results {
		o := r.Outcomes
		total := o.Total()
		label := fmt.Sprintf("%s vs %s", r.Job.Alice, r.Job.Bob)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			handStyle.Render(label),
			winStyle.Render(pct(o.Alice, total)),
			winStyle.Render(pct(o.Bob, total)),
			tieStyle.Render(pct(o.Tie, total)))
	}
	tw.Flush()
}

// Summary writes the verbose trailer line: total comparisons and elapsed
// wall time, gated by the caller on --verbose.
func Summary(w io.Writer, totalComparisons uint64, elapsed time.Duration) {
	fmt.Fprintf(w, "%d comparisons in %v\n", totalComparisons, elapsed.Truncate(time.Millisecond))
}

func frac(n uint32, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func pct(n uint32, total uint64) string {
	return fmt.Sprintf("%.2f%%", frac(n, total)*100)
}

// ratio formats n/total as the exact shortest decimal string that
// round-trips back to the same float64, rather than truncating to a fixed
// number of decimal places.
func ratio(n uint32, total uint64) string {
	return strconv.FormatFloat(frac(n, total), 'g', -1, 64)
}
