package dome

import (
	"testing"
	"time"

	"github.com/litescript/skydome/internal/astro"
	"github.com/litescript/skydome/internal/catalog"
)

var engineTestTime = time.Date(2026, 8, 26, 22, 0, 0, 0, time.UTC)

// poleCatalog builds a catalog whose altitudes are trivial to predict from
// the north pole: for an observer at lat 90, altitude equals declination.
func poleCatalog() catalog.Catalog {
	return catalog.New([]catalog.Star{
		{ID: "overhead", Name: "Overhead", RAdeg: 10, DecDeg: 80, Magnitude: 1, DistanceLY: 50, AgeGyr: 1, MassSolar: 2, SpectralClass: "A0V"},
		{ID: "low", Name: "Low", RAdeg: 50, DecDeg: 20, Magnitude: 2, DistanceLY: 100, AgeGyr: 2, MassSolar: 1, SpectralClass: "K0III"},
		{ID: "sunk", Name: "Sunk", RAdeg: 90, DecDeg: -10, Magnitude: 3, DistanceLY: 200, AgeGyr: 3, MassSolar: 1, SpectralClass: "M1Ia"},
		{ID: "gone", Name: "Gone", RAdeg: 130, DecDeg: -60, Magnitude: 4, DistanceLY: 400, AgeGyr: 4, MassSolar: 1, SpectralClass: "G2V"},
	})
}

func poleEngine() *Engine {
	return NewEngine(poleCatalog(),
		WithObserver(astro.Observer{LatDeg: 90, LonDeg: 0}),
		WithClock(func() time.Time { return engineTestTime }),
	)
}

func TestRenderBelowHorizonHandling(t *testing.T) {
	e := poleEngine()
	frame := e.Render(engineTestTime, testGeom)

	byName := make(map[string]ProjectedStar, len(frame))
	for _, ps := range frame {
		byName[ps.Star.Name] = ps
	}

	// Dec -10 projects to 10/9 of the radius: kept, flagged below horizon.
	sunk, ok := byName["Sunk"]
	if !ok {
		t.Fatal("star just below the horizon missing from frame")
	}
	if sunk.AltDeg >= 0 {
		t.Errorf("Sunk altitude = %v, want negative", sunk.AltDeg)
	}

	// Dec -60 projects to 5/3 of the radius: beyond the render limit.
	if _, ok := byName["Gone"]; ok {
		t.Error("star far below the horizon should be dropped from frame")
	}

	if _, ok := byName["Overhead"]; !ok {
		t.Error("high star missing from frame")
	}
}

func TestRenderDeterministic(t *testing.T) {
	e := poleEngine()

	a := e.Render(engineTestTime, testGeom)
	b := e.Render(engineTestTime, testGeom)

	if len(a) != len(b) {
		t.Fatalf("frame sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y || a[i].AltDeg != b[i].AltDeg {
			t.Errorf("star %q moved between identical renders", a[i].Star.Name)
		}
	}
}

func TestRenderNowUsesInjectedClock(t *testing.T) {
	e := poleEngine()

	want := e.Render(engineTestTime, testGeom)
	got := e.RenderNow(testGeom)

	if len(got) != len(want) {
		t.Fatalf("frame sizes differ: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if got[i].X != want[i].X || got[i].Y != want[i].Y {
			t.Errorf("star %q differs between RenderNow and explicit render", got[i].Star.Name)
		}
	}
}

func TestOnStarsFilteredCounts(t *testing.T) {
	e := poleEngine()
	e.SetRanges(Ranges{
		Magnitude: Range{Min: -5, Max: 2.5}, // admits Overhead and Low only
		Distance:  Range{Min: 0, Max: 100000},
		Age:       Range{Min: 0, Max: 20},
		Mass:      Range{Min: 0, Max: 200},
	})

	var gotVisible, gotTotal, calls int
	e.OnStarsFiltered = func(visible, total int) {
		gotVisible, gotTotal = visible, total
		calls++
	}

	e.Render(engineTestTime, testGeom)

	if calls != 1 {
		t.Fatalf("callback fired %d times, want 1", calls)
	}
	if gotVisible != 2 || gotTotal != 4 {
		t.Errorf("counts = (%d, %d), want (2, 4)", gotVisible, gotTotal)
	}
	if len(e.Visible()) != 2 {
		t.Errorf("Visible() has %d stars, want 2", len(e.Visible()))
	}
}

func TestSelectHitAndMiss(t *testing.T) {
	e := poleEngine()
	frame := e.Render(engineTestTime, testGeom)
	if len(frame) == 0 {
		t.Fatal("empty frame")
	}

	var selectedNames []string
	e.OnStarSelected = func(s catalog.Star) {
		selectedNames = append(selectedNames, s.Name)
	}

	target := frame[0]
	hit := e.Select(target.X, target.Y, 0)
	if hit == nil || hit.Name != target.Star.Name {
		t.Fatalf("Select on star position = %v, want %q", hit, target.Star.Name)
	}
	if e.Selected() == nil || e.Selected().Name != target.Star.Name {
		t.Errorf("Selected() = %v after hit", e.Selected())
	}

	// A miss returns nil and leaves the selection alone.
	if got := e.Select(-1000, -1000, 0); got != nil {
		t.Errorf("miss returned %v, want nil", got)
	}
	if e.Selected() == nil || e.Selected().Name != target.Star.Name {
		t.Error("miss clobbered the existing selection")
	}

	if len(selectedNames) != 1 || selectedNames[0] != target.Star.Name {
		t.Errorf("OnStarSelected fired with %v, want one hit for %q", selectedNames, target.Star.Name)
	}

	e.ClearSelection()
	if e.Selected() != nil {
		t.Error("selection survived ClearSelection")
	}
}

func TestSetCatalogResetsSelection(t *testing.T) {
	e := poleEngine()
	frame := e.Render(engineTestTime, testGeom)
	if e.Select(frame[0].X, frame[0].Y, 0) == nil {
		t.Fatal("setup: selection failed")
	}

	e.SetCatalog(catalog.Default())

	if e.Selected() != nil {
		t.Error("selection survived a catalog swap")
	}
	if e.Frame() != nil {
		t.Error("stale frame survived a catalog swap")
	}
	if e.CatalogSize() != catalog.Default().Len() {
		t.Errorf("CatalogSize() = %d after swap", e.CatalogSize())
	}
}

func TestSelectStarDirect(t *testing.T) {
	e := poleEngine()

	var fired []string
	e.OnStarSelected = func(s catalog.Star) { fired = append(fired, s.Name) }

	s := poleCatalog().Stars[1]
	e.SelectStar(s)

	if e.Selected() == nil || e.Selected().Name != s.Name {
		t.Errorf("Selected() = %v, want %q", e.Selected(), s.Name)
	}
	if len(fired) != 1 || fired[0] != s.Name {
		t.Errorf("OnStarSelected fired with %v", fired)
	}
}
