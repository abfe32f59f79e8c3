package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/skydome/internal/catalog"
	"github.com/litescript/skydome/internal/dome"
	"github.com/litescript/skydome/internal/state"
)

const (
	// Terminal cells are roughly twice as tall as they are wide; the dome
	// lives in a virtual plane where one row spans cellAspect units.
	cellAspect = 2.0

	// Hit tolerance for mouse clicks, in virtual units. Cell-grid input is
	// far coarser than the projected positions.
	clickTolerance = 2.5

	// Star glyphs by magnitude
	glyphStarBrilliant = '✦' // mag < 0
	glyphStarBright    = '✶' // mag 0-1.5
	glyphStarMedium    = '✸' // mag 1.5-3.0
	glyphStarDim       = '·' // mag > 3.0

	glyphSelected = '◎'
	glyphZenith   = '+'

	colorHorizon  = "60"  // muted purple
	colorCardinal = "135" // violet
	colorZenith   = "238"
	colorSelected = "229" // bright gold
)

// domeGeometry maps a cell grid onto the virtual dome plane.
func domeGeometry(widthCells, heightCells int) dome.Geometry {
	w := float64(widthCells)
	h := float64(heightCells) * cellAspect

	radius := w / 2
	if h/2 < radius {
		radius = h / 2
	}
	radius -= 2
	if radius < 1 {
		radius = 1
	}

	return dome.Geometry{
		CenterX: w / 2,
		CenterY: h / 2,
		Radius:  radius,
	}
}

// DomeViewModel renders the projected sky dome and handles click selection.
type DomeViewModel struct {
	state  *state.Manager
	width  int
	height int

	frame    []dome.ProjectedStar
	selected *catalog.Star
}

// NewDomeViewModel creates a new dome view model.
func NewDomeViewModel(stateMgr *state.Manager) DomeViewModel {
	return DomeViewModel{state: stateMgr}
}

// SetSize updates the viewport size.
func (m DomeViewModel) SetSize(width, height int) DomeViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a new state snapshot.
func (m DomeViewModel) UpdateData(snapshot state.Snapshot) DomeViewModel {
	m.frame = snapshot.Frame
	m.selected = snapshot.Selected
	return m
}

// Update handles messages. Mouse coordinates arrive already shifted into
// content space.
func (m DomeViewModel) Update(msg tea.Msg) (DomeViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			vx, vy := cellToVirtual(msg.X, msg.Y)
			m.state.Select(vx, vy, clickTolerance)
		}
	}
	return m, nil
}

// cellToVirtual maps a cell coordinate to the center of that cell in the
// virtual dome plane.
func cellToVirtual(col, row int) (float64, float64) {
	return float64(col) + 0.5, (float64(row) + 0.5) * cellAspect
}

// virtualToCell maps a virtual point to its containing cell.
func virtualToCell(x, y float64) (col, row int) {
	return int(x), int(y / cellAspect)
}

// View renders the dome canvas.
func (m DomeViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Dome view requires a larger terminal"
	}

	canvas := make([][]rune, m.height)
	styles := make([][]lipgloss.Style, m.height)
	for y := 0; y < m.height; y++ {
		canvas[y] = make([]rune, m.width)
		styles[y] = make([]lipgloss.Style, m.width)
		for x := 0; x < m.width; x++ {
			canvas[y][x] = ' '
		}
	}

	geom := domeGeometry(m.width, m.height)

	m.drawHorizonRing(canvas, styles, geom)

	// Zenith marker at the dome center
	if col, row := virtualToCell(geom.CenterX, geom.CenterY); m.inBounds(col, row) {
		canvas[row][col] = glyphZenith
		styles[row][col] = lipgloss.NewStyle().Foreground(lipgloss.Color(colorZenith))
	}

	m.drawStars(canvas, styles)
	m.drawSelection(canvas, styles)

	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			b.WriteString(styles[y][x].Render(string(canvas[y][x])))
		}
		if y < m.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m DomeViewModel) inBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}

// drawHorizonRing traces the altitude-zero circle and stamps the cardinal
// directions on it.
func (m DomeViewModel) drawHorizonRing(canvas [][]rune, styles [][]lipgloss.Style, geom dome.Geometry) {
	ringStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorHorizon))
	for az := 0.0; az < 360.0; az += 2.0 {
		x, y := dome.Project(0, az, geom)
		if col, row := virtualToCell(x, y); m.inBounds(col, row) && canvas[row][col] == ' ' {
			canvas[row][col] = '·'
			styles[row][col] = ringStyle
		}
	}

	cardinalStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorCardinal))
	cardinals := []struct {
		label rune
		az    float64
	}{
		{'N', 0}, {'E', 90}, {'S', 180}, {'W', 270},
	}
	for _, c := range cardinals {
		x, y := dome.Project(0, c.az, geom)
		if col, row := virtualToCell(x, y); m.inBounds(col, row) {
			canvas[row][col] = c.label
			styles[row][col] = cardinalStyle
		}
	}
}

func (m DomeViewModel) drawStars(canvas [][]rune, styles [][]lipgloss.Style) {
	for _, ps := range m.frame {
		col, row := virtualToCell(ps.X, ps.Y)
		if !m.inBounds(col, row) {
			continue
		}

		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(catalog.SpectralColor(ps.Star.SpectralClass)))
		if ps.AltDeg < 0 {
			style = style.Faint(true)
		}

		canvas[row][col] = starGlyph(ps.Star.Magnitude)
		styles[row][col] = style
	}
}

func (m DomeViewModel) drawSelection(canvas [][]rune, styles [][]lipgloss.Style) {
	if m.selected == nil {
		return
	}

	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorSelected))

	for _, ps := range m.frame {
		if ps.Star.ID != m.selected.ID {
			continue
		}
		col, row := virtualToCell(ps.X, ps.Y)
		if !m.inBounds(col, row) {
			return
		}
		canvas[row][col] = glyphSelected
		styles[row][col] = style

		// Label to the right of the marker, clipped at the edge
		label := []rune(" " + ps.Star.Name)
		for i, r := range label {
			lx := col + 1 + i
			if lx >= m.width {
				break
			}
			canvas[row][lx] = r
			styles[row][lx] = style
		}
		return
	}
}

func starGlyph(magnitude float64) rune {
	switch {
	case magnitude < 0:
		return glyphStarBrilliant
	case magnitude < 1.5:
		return glyphStarBright
	case magnitude < 3.0:
		return glyphStarMedium
	default:
		return glyphStarDim
	}
}
