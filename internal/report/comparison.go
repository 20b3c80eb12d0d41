package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/dominionsim/internal/simulator"
)

// Comparison writes one table row per player of every run. names labels the
// runs and must line up with results; nil results are skipped.
func Comparison(w io.Writer, names []string, results []*simulator.SimulationResult, opts Options) error {
	if len(names) != len(results) {
		return fmt.Errorf("comparison: %d names for %d results", len(names), len(results))
	}
	styles := NewStyles(NewRenderer(w, opts.Plain))

	title := opts.Title
	if title == "" {
		title = "Comparison"
	}

	var rows [][]string
	for i, result := range results {
		if result == nil {
			continue
		}
		stats := result.Statistics()
		strategies := strategyNames(result)
		for _, player := range result.Players {
			s, ok := stats[player]
			if !ok {
				continue
			}
			low, high := s.ConfidenceInterval95()
			rows = append(rows, []string{
				names[i],
				player,
				strategies[player],
				fmt.Sprintf("%d", s.Games),
				fmt.Sprintf("%.2f", s.Mean()),
				fmt.Sprintf("%.2f-%.2f", low, high),
				fmt.Sprintf("%.2f", s.MeanVictoryPoints()),
				fmt.Sprintf("%.1f%%", s.WinRate()*100),
				fmt.Sprintf("%.1f%%", s.EndRate()*100),
			})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers("Config", "Player", "Strategy", "Games", "Avg turns", "95% CI", "Avg VP", "Wins", "Ended").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case col <= 1:
				return styles.Name
			default:
				return styles.Cell
			}
		})

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
