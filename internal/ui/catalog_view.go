package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/skydome/internal/astro"
	"github.com/litescript/skydome/internal/catalog"
	"github.com/litescript/skydome/internal/state"
)

// CatalogViewModel lists the stars that pass the current filter, with
// computed positions and a rise/set readout for the cursor row.
type CatalogViewModel struct {
	state  *state.Manager
	width  int
	height int

	cursor   int
	scroll   int
	snapshot state.Snapshot
}

// NewCatalogViewModel creates a new catalog view model.
func NewCatalogViewModel(stateMgr *state.Manager) CatalogViewModel {
	return CatalogViewModel{state: stateMgr}
}

// SetSize updates the viewport size.
func (m CatalogViewModel) SetSize(width, height int) CatalogViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a new state snapshot.
func (m CatalogViewModel) UpdateData(snapshot state.Snapshot) CatalogViewModel {
	m.snapshot = snapshot
	if m.cursor >= len(snapshot.Visible) {
		m.cursor = 0
		m.scroll = 0
	}
	return m
}

// Update handles messages.
func (m CatalogViewModel) Update(msg tea.Msg) (CatalogViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.snapshot.Visible)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.snapshot.Visible) {
				m.state.SelectStar(m.snapshot.Visible[m.cursor])
			}
		}
	}

	// Keep cursor within the visible window.
	rows := m.tableRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+rows {
		m.scroll = m.cursor - rows + 1
	}

	return m, nil
}

// tableRows returns how many star rows fit under the header and detail lines.
func (m CatalogViewModel) tableRows() int {
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the catalog table.
func (m CatalogViewModel) View() string {
	if m.width < 40 || m.height < 8 {
		return "Catalog view requires a larger terminal"
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-18s %6s %10s %7s %7s %-8s %7s %7s",
		"NAME", "MAG", "DIST(ly)", "AGE", "MASS", "CLASS", "ALT", "AZ")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", min(m.width-4, 82))))
	b.WriteString("\n")

	stars := m.snapshot.Visible
	if len(stars) == 0 {
		b.WriteString(dimStyle.Render("  No stars match the current filter"))
		return b.String()
	}

	obs := m.snapshot.Observer
	at := m.snapshot.RenderedAt
	lst := astro.LocalSiderealTime(at, obs.LonDeg)

	rows := m.tableRows()
	end := m.scroll + rows
	if end > len(stars) {
		end = len(stars)
	}

	for i := m.scroll; i < end; i++ {
		s := stars[i]
		horiz := astro.EquatorialToHorizontal(s.RAdeg, s.DecDeg, lst, obs.LatDeg)

		line := fmt.Sprintf("%-18s %6.2f %10.1f %7.2f %7.2f %-8s %6.1f° %6.1f°",
			truncate(s.Name, 18), s.Magnitude, s.DistanceLY, s.AgeGyr, s.MassSolar,
			s.SpectralClass, horiz.AltDeg, horiz.AzDeg)

		if i == m.cursor {
			b.WriteString(cursorStyle.Render("▶ " + line))
		} else {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(catalog.SpectralColor(s.SpectralClass)))
			if horiz.AltDeg < 0 {
				style = style.Faint(true)
			}
			b.WriteString("  " + style.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderCursorDetail(dimStyle))

	return b.String()
}

// renderCursorDetail shows the rise/set window for the cursor star.
func (m CatalogViewModel) renderCursorDetail(dimStyle lipgloss.Style) string {
	if m.cursor >= len(m.snapshot.Visible) {
		return ""
	}
	s := m.snapshot.Visible[m.cursor]
	win := astro.RiseSet(m.snapshot.Observer, s.RAdeg, s.DecDeg, m.snapshot.RenderedAt)

	var detail string
	switch {
	case win.Circumpolar:
		detail = fmt.Sprintf("%s: circumpolar, transit %s at %.1f°",
			s.Name, win.Transit.UTC().Format("15:04"), win.MaxAltDeg)
	case win.NeverVisible:
		detail = fmt.Sprintf("%s: never rises at this latitude", s.Name)
	default:
		detail = fmt.Sprintf("%s: rise %s, transit %s at %.1f°, set %s",
			s.Name,
			win.Rise.UTC().Format("15:04"),
			win.Transit.UTC().Format("15:04"),
			win.MaxAltDeg,
			win.Set.UTC().Format("15:04"))
	}

	return dimStyle.Render("  " + detail)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}
