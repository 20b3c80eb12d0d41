package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/dominionsim/internal/card"
)

// Cards writes the catalog as a table with pile sizes for the given player
// count.
func Cards(w io.Writer, catalog *card.Catalog, players int, opts Options) error {
	styles := NewStyles(NewRenderer(w, opts.Plain))

	var rows [][]string
	for _, r := range catalog.Records() {
		types := make([]string, len(r.Types))
		for i, t := range r.Types {
			types[i] = string(t)
		}
		vp := ""
		if r.VictoryPoints != 0 {
			vp = fmt.Sprintf("%d", r.VictoryPoints)
		}
		duration := ""
		if r.Duration != card.NoDuration {
			duration = r.Duration.String()
		}
		rows = append(rows, []string{
			string(r.Name),
			strings.Join(types, ","),
			r.Cost.String(),
			vp,
			fmt.Sprintf("%d", r.PileSize(players)),
			duration,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers("Card", "Types", "Cost", "VP", "Pile", "Duration").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			if col == 0 {
				return styles.Name
			}
			return styles.Cell
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
