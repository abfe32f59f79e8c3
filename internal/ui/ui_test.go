package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/skydome/internal/astro"
	"github.com/litescript/skydome/internal/catalog"
	"github.com/litescript/skydome/internal/dome"
	"github.com/litescript/skydome/internal/state"
)

var uiTestTime = time.Date(2026, 8, 26, 22, 0, 0, 0, time.UTC)

func uiTestManager() *state.Manager {
	clock := func() time.Time { return uiTestTime }
	engine := dome.NewEngine(catalog.Default(),
		dome.WithObserver(astro.Observer{LatDeg: 59.3293, LonDeg: 18.0686}),
		dome.WithClock(clock),
	)
	cfg := state.DefaultConfig()
	cfg.Clock = clock
	return state.NewManager(engine, cfg)
}

func TestDomeGeometry(t *testing.T) {
	geom := domeGeometry(80, 24)

	if geom.Radius <= 0 {
		t.Fatalf("radius = %v, want positive", geom.Radius)
	}
	// The disk must fit the virtual plane in both directions.
	if geom.CenterX-geom.Radius < 0 || geom.CenterX+geom.Radius > 80 {
		t.Errorf("disk overflows horizontally: center %v radius %v", geom.CenterX, geom.Radius)
	}
	vh := 24 * cellAspect
	if geom.CenterY-geom.Radius < 0 || geom.CenterY+geom.Radius > vh {
		t.Errorf("disk overflows vertically: center %v radius %v", geom.CenterY, geom.Radius)
	}

	// Degenerate sizes still yield a usable geometry.
	if tiny := domeGeometry(2, 1); tiny.Radius < 1 {
		t.Errorf("tiny geometry radius = %v", tiny.Radius)
	}
}

func TestCellVirtualRoundTrip(t *testing.T) {
	for col := 0; col < 40; col += 7 {
		for row := 0; row < 20; row += 3 {
			vx, vy := cellToVirtual(col, row)
			gotCol, gotRow := virtualToCell(vx, vy)
			if gotCol != col || gotRow != row {
				t.Errorf("cell (%d,%d) -> virtual (%v,%v) -> cell (%d,%d)",
					col, row, vx, vy, gotCol, gotRow)
			}
		}
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		mag  float64
		want rune
	}{
		{-1.46, glyphStarBrilliant},
		{0.5, glyphStarBright},
		{2, glyphStarMedium},
		{4.5, glyphStarDim},
	}
	for _, tt := range tests {
		if got := starGlyph(tt.mag); got != tt.want {
			t.Errorf("starGlyph(%v) = %q, want %q", tt.mag, got, tt.want)
		}
	}
}

func TestModelViewSmoke(t *testing.T) {
	m := New(uiTestManager())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	m = updated.(Model)

	out := m.View()
	if !strings.Contains(out, "SKYDOME") {
		t.Error("dome view missing header")
	}
	if !strings.Contains(out, "stars") {
		t.Error("dome view missing footer status")
	}

	// Switch to the catalog view and render it too.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = updated.(Model)
	if !strings.Contains(m.View(), "NAME") {
		t.Error("catalog view missing table header")
	}
}

func TestDomeViewClickSelects(t *testing.T) {
	mgr := uiTestManager()
	mgr.SetGeometry(domeGeometry(100, 27))

	snap := mgr.Snapshot()
	if len(snap.Frame) == 0 {
		t.Fatal("empty frame")
	}
	target := snap.Frame[0]

	view := NewDomeViewModel(mgr).SetSize(100, 27).UpdateData(snap)

	col, row := virtualToCell(target.X, target.Y)
	view, _ = view.Update(tea.MouseMsg{
		X:      col,
		Y:      row,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	_ = view

	selected := mgr.Snapshot().Selected
	if selected == nil {
		t.Fatal("click on a star cell selected nothing")
	}

	// The click resolves within the coarse tolerance, so it must land on a
	// star projected near that cell.
	vx, vy := cellToVirtual(col, row)
	hitAny := false
	for _, ps := range snap.Frame {
		if ps.Star.ID == selected.ID {
			if math.Hypot(ps.X-vx, ps.Y-vy) <= clickTolerance {
				hitAny = true
			}
		}
	}
	if !hitAny {
		t.Errorf("selected %q is not within tolerance of the click", selected.Name)
	}
}

func TestCatalogViewCursorAndSelect(t *testing.T) {
	mgr := uiTestManager()
	mgr.SetGeometry(domeGeometry(100, 27))

	view := NewCatalogViewModel(mgr).SetSize(100, 27).UpdateData(mgr.Snapshot())

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view, _ = view.Update(down)
	view, _ = view.Update(down)
	if view.cursor != 2 {
		t.Errorf("cursor = %d after two downs, want 2", view.cursor)
	}

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	selected := mgr.Snapshot().Selected
	if selected == nil {
		t.Fatal("enter selected nothing")
	}
	if want := mgr.Snapshot().Visible[2]; selected.ID != want.ID {
		t.Errorf("selected %q, want cursor star %q", selected.Name, want.Name)
	}
}
