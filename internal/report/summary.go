// Package report renders simulation results for terminals and files.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/dominionsim/internal/simulator"
)

// Options controls summary rendering.
type Options struct {
	Title string
	Plain bool // no colour, regardless of the writer
}

// Summary writes a per-player table of turn and victory point statistics.
func Summary(w io.Writer, result *simulator.SimulationResult, opts Options) error {
	styles := NewStyles(NewRenderer(w, opts.Plain))

	title := opts.Title
	if title == "" {
		title = "Simulation results"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%d games, seed %d, %s",
		len(result.GameResults), result.Seed, result.Duration.Round(time.Millisecond))))
	b.WriteString("\n")

	if len(result.GameResults) == 0 {
		b.WriteString(styles.Warn.Render("no games played"))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(summaryTable(result, styles).Render())
	b.WriteString("\n")

	ended := 0
	for _, g := range result.GameResults {
		if g.Ended {
			ended++
		}
	}
	if ended < len(result.GameResults) {
		b.WriteString(styles.Warn.Render(fmt.Sprintf("%d of %d games hit the turn limit",
			len(result.GameResults)-ended, len(result.GameResults))))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func summaryTable(result *simulator.SimulationResult, styles Styles) *table.Table {
	stats := result.Statistics()
	strategies := strategyNames(result)

	rows := make([][]string, 0, len(result.Players))
	for _, name := range result.Players {
		s, ok := stats[name]
		if !ok {
			continue
		}
		low, high := s.ConfidenceInterval95()
		rows = append(rows, []string{
			name,
			strategies[name],
			fmt.Sprintf("%.2f", s.Mean()),
			fmt.Sprintf("%.1f", s.Median()),
			fmt.Sprintf("%.2f", s.StdDev()),
			fmt.Sprintf("%.2f-%.2f", low, high),
			fmt.Sprintf("%d-%d", s.MinTurns, s.MaxTurns),
			fmt.Sprintf("%.2f", s.MeanVictoryPoints()),
			fmt.Sprintf("%.1f%%", s.WinRate()*100),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers("Player", "Strategy", "Avg turns", "Median", "Std dev", "95% CI", "Range", "Avg VP", "Wins").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case col == 0:
				return styles.Name
			default:
				return styles.Cell
			}
		})
}

func strategyNames(result *simulator.SimulationResult) map[string]string {
	out := make(map[string]string, len(result.Players))
	if len(result.GameResults) == 0 {
		return out
	}
	for _, p := range result.GameResults[0].Players {
		out[p.Name] = p.Strategy
	}
	return out
}

// TurnAverages writes one "name: average" line per player in seat order.
func TurnAverages(w io.Writer, result *simulator.SimulationResult) error {
	counts := result.TurnCounts()
	for _, name := range result.Players {
		turns := counts[name]
		avg := 0.0
		if len(turns) > 0 {
			sum := 0
			for _, t := range turns {
				sum += t
			}
			avg = float64(sum) / float64(len(turns))
		}
		if _, err := fmt.Fprintf(w, "%s: %.3f\n", name, avg); err != nil {
			return err
		}
	}
	return nil
}
