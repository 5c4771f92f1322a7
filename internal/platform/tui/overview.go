package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/darkpath/internal/game"
)

var (
	overviewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				MarginBottom(1)
	overviewBoxStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

// newOverviewTable creates the level overview table.
func newOverviewTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "", Width: 1},
		{Title: "Level", Width: 6},
		{Title: "Kind", Width: 6},
		{Title: "Seed", Width: 12},
		{Title: "Frontier", Width: 9},
		{Title: "Portals", Width: 8},
		{Title: "Pickups", Width: 9},
	}

	h := height - 8 // Title, borders, help
	if h < 3 {
		h = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("238")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// overviewRows converts level rows into table rows.
func overviewRows(rows []game.LevelRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		marker := ""
		if r.Active {
			marker = "▶"
		}
		kind := "level"
		pickups := fmt.Sprintf("%d/%d", r.ActivePickups, r.TotalPickups)
		if r.PortalRoom {
			kind = "hub"
			pickups = "-"
		}
		out = append(out, table.Row{
			marker,
			fmt.Sprintf("%d", r.Index),
			kind,
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Frontier),
			fmt.Sprintf("%d", r.Portals),
			pickups,
		})
	}
	return out
}

// activeRow returns the index of the active level row, or 0.
func activeRow(rows []game.LevelRow) int {
	for i, r := range rows {
		if r.Active {
			return i
		}
	}
	return 0
}

// renderOverview draws the overview table with its title and footer.
func renderOverview(t table.Model, footer string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		overviewTitleStyle.Render("Levels"),
		t.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, overviewBoxStyle.Render(body), footer)
}
