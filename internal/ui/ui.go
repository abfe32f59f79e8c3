// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/skydome/internal/astro"
	"github.com/litescript/skydome/internal/dome"
	"github.com/litescript/skydome/internal/state"
	"github.com/litescript/skydome/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDome ViewMode = iota
	ViewCatalog
)

// Header is title + tabs + blank line; footer is status + help.
const (
	headerLines = 3
	footerLines = 2
)

// Observer nudge and time step increments.
const (
	nudgeDeg = 5.0
	timeStep = time.Hour
	magStep  = 0.5
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic re-render of the dome.
	TickMsg time.Time
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	viewMode ViewMode
	width    int
	height   int
	ready    bool

	// Offset applied to the wall clock, adjusted with time-step keys.
	timeOffset time.Duration

	domeView    DomeViewModel
	catalogView CatalogViewModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:       stateMgr,
		viewMode:    ViewDome,
		domeView:    NewDomeViewModel(stateMgr),
		catalogView: NewCatalogViewModel(stateMgr),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "d":
			m.viewMode = ViewDome
		case "2", "c":
			m.viewMode = ViewCatalog
		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		case "esc":
			m.state.ClearSelection()
			m.snapshot = m.state.Snapshot()

		case "up":
			m.nudgeObserver(nudgeDeg, 0)
		case "down":
			m.nudgeObserver(-nudgeDeg, 0)
		case "left":
			m.nudgeObserver(0, -nudgeDeg)
		case "right":
			m.nudgeObserver(0, nudgeDeg)

		case ",":
			m.timeOffset -= timeStep
			m.renderNow()
		case ".":
			m.timeOffset += timeStep
			m.renderNow()
		case "0":
			m.timeOffset = 0
			m.renderNow()

		case "m":
			m.adjustMagnitude(-magStep)
		case "M":
			m.adjustMagnitude(magStep)
		case "r":
			m.state.SetRanges(dome.DefaultRanges())
			m.snapshot = m.state.Snapshot()

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.MouseMsg:
		// Shift into content coordinates before forwarding.
		msg.Y -= headerLines
		cmds = append(cmds, m.updateActiveView(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentHeight := msg.Height - headerLines - footerLines
		m.domeView = m.domeView.SetSize(msg.Width, contentHeight)
		m.catalogView = m.catalogView.SetSize(msg.Width, contentHeight)

		m.state.SetGeometry(domeGeometry(msg.Width, contentHeight))
		m.snapshot = m.state.Snapshot()

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.renderNow()
	}

	m.domeView = m.domeView.UpdateData(m.snapshot)
	m.catalogView = m.catalogView.UpdateData(m.snapshot)

	return m, tea.Batch(cmds...)
}

func (m *Model) renderNow() {
	m.state.RenderAt(m.state.Now().Add(m.timeOffset))
	m.snapshot = m.state.Snapshot()
}

func (m *Model) nudgeObserver(dLat, dLon float64) {
	obs := m.snapshot.Observer
	obs.LatDeg += dLat
	obs.LonDeg += dLon
	m.state.SetObserver(obs)
	m.snapshot = m.state.Snapshot()
}

func (m *Model) adjustMagnitude(delta float64) {
	r := m.snapshot.Ranges
	r.Magnitude.Max += delta
	m.state.SetRanges(r)
	m.snapshot = m.state.Snapshot()
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewDome:
		m.domeView, cmd = m.domeView.Update(msg)
		m.snapshot = m.state.Snapshot()
	case ViewCatalog:
		m.catalogView, cmd = m.catalogView.Update(msg)
		m.snapshot = m.state.Snapshot()
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewDome:
		content = m.domeView.View()
	case ViewCatalog:
		content = m.catalogView.View()
	}

	return m.renderHeader() + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := titleStyle.Render("  SKYDOME") +
		dimStyle.Render(fmt.Sprintf("  Planetarium Dome Projection | v%s", version.Version))

	return title + "\n" + m.renderTabs() + "\n\n"
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Dome", "[2] Catalog"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	obs := m.snapshot.Observer
	phase := astro.GetTwilightPhase(m.snapshot.SunAltDeg)

	status := dimStyle.Render(fmt.Sprintf("  lat %.2f° lon %.2f° | %s UTC | %s | ",
		obs.LatDeg, obs.LonDeg,
		m.snapshot.RenderedAt.UTC().Format("2006-01-02 15:04"),
		phase)) +
		accentStyle.Render(fmt.Sprintf("%d/%d stars", m.snapshot.VisibleCount, m.snapshot.TotalCount))

	if m.snapshot.Selected != nil {
		status += dimStyle.Render(" | selected: ") + accentStyle.Render(m.snapshot.Selected.Name)
	}

	var help string
	switch m.viewMode {
	case ViewCatalog:
		help = dimStyle.Render("  j/k: cursor | enter: select | esc: clear | tab: switch view | q: quit")
	default:
		help = dimStyle.Render("  click: select | arrows: move observer | ,/.: step time | m/M: mag limit | r: reset | q: quit")
	}

	return status + "\n" + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
