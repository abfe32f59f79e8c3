package dome

import (
	"time"

	"github.com/litescript/skydome/internal/astro"
	"github.com/litescript/skydome/internal/catalog"
	"github.com/litescript/skydome/internal/logging"
)

// Engine runs the render pipeline: filter the catalog, transform each
// visible star to horizontal coordinates for the observer and instant, and
// project it onto the dome disk. It also answers pointer queries against the
// last rendered frame.
//
// All operations are synchronous and run to completion; the engine never
// mutates catalog records, producing fresh ProjectedStar values each pass.
// It is not safe for concurrent use; wrap it (see internal/state) when
// sharing across goroutines.
type Engine struct {
	cat      catalog.Catalog
	observer astro.Observer
	ranges   Ranges
	clock    func() time.Time
	log      *logging.Logger

	lastFrame   []ProjectedStar
	lastVisible []catalog.Star
	selected    *catalog.Star

	// OnStarsFiltered is invoked synchronously at the end of every render
	// pass with the filtered and total star counts.
	OnStarsFiltered func(visible, total int)

	// OnStarSelected is invoked synchronously after a successful pointer hit.
	OnStarSelected func(catalog.Star)
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithObserver sets the observer location.
func WithObserver(obs astro.Observer) EngineOption {
	return func(e *Engine) {
		e.observer = obs.Normalized()
	}
}

// WithRanges sets the initial filter ranges.
func WithRanges(r Ranges) EngineOption {
	return func(e *Engine) {
		e.ranges = r
	}
}

// WithClock injects the time source used by RenderNow. Defaults to
// time.Now; tests inject a fixed clock for deterministic output.
func WithClock(clock func() time.Time) EngineOption {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithLogger sets the engine logger.
func WithLogger(log *logging.Logger) EngineOption {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine creates an engine over the given catalog.
func NewEngine(cat catalog.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		cat:    cat,
		ranges: DefaultRanges(),
		clock:  time.Now,
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, w := range cat.Warnings {
		e.log.Warn("catalog: %s", w)
	}
	return e
}

// SetCatalog replaces the star catalog. Selection is cleared since it may
// reference a star that no longer exists.
func (e *Engine) SetCatalog(cat catalog.Catalog) {
	e.cat = cat
	e.selected = nil
	e.lastFrame = nil
	e.lastVisible = nil
	for _, w := range cat.Warnings {
		e.log.Warn("catalog: %s", w)
	}
}

// SetObserver updates the observer location.
func (e *Engine) SetObserver(obs astro.Observer) {
	e.observer = obs.Normalized()
}

// Observer returns the current observer location.
func (e *Engine) Observer() astro.Observer {
	return e.observer
}

// SetRanges updates the filter constraints.
func (e *Engine) SetRanges(r Ranges) {
	e.ranges = r
}

// Ranges returns the current filter constraints.
func (e *Engine) Ranges() Ranges {
	return e.ranges
}

// CatalogSize returns the number of stars in the catalog.
func (e *Engine) CatalogSize() int {
	return e.cat.Len()
}

// Render runs one full pipeline pass for the given instant and dome
// geometry. Identical inputs always yield an identical frame: the instant is
// an explicit parameter and no hidden state feeds the computation.
//
// Stars projecting farther than MaxRenderFactor times the dome radius from
// the center are dropped from the frame; below-horizon stars within that
// limit are kept, with AltDeg carried through so renderers can dim them.
func (e *Engine) Render(at time.Time, geom Geometry) []ProjectedStar {
	visible := Filter(e.cat.Stars, e.ranges)
	lst := astro.LocalSiderealTime(at, e.observer.LonDeg)

	frame := make([]ProjectedStar, 0, len(visible))
	for i := range visible {
		s := &visible[i]
		horiz := astro.EquatorialToHorizontal(s.RAdeg, s.DecDeg, lst, e.observer.LatDeg)
		x, y := Project(horiz.AltDeg, horiz.AzDeg, geom)
		if !WithinRenderLimit(x, y, geom) {
			continue
		}
		frame = append(frame, ProjectedStar{
			Star:      s,
			X:         x,
			Y:         y,
			HitRadius: HitRadiusFor(s.Magnitude),
			AltDeg:    horiz.AltDeg,
		})
	}

	e.lastFrame = frame
	e.lastVisible = visible

	if e.OnStarsFiltered != nil {
		e.OnStarsFiltered(len(visible), e.cat.Len())
	}
	return frame
}

// RenderNow renders a frame at the injected clock's current time.
func (e *Engine) RenderNow(geom Geometry) []ProjectedStar {
	return e.Render(e.clock(), geom)
}

// Visible returns the filter-passing stars from the last render pass, in
// catalog order.
func (e *Engine) Visible() []catalog.Star {
	return e.lastVisible
}

// Frame returns the last rendered frame.
func (e *Engine) Frame() []ProjectedStar {
	return e.lastFrame
}

// Select hit-tests a pointer position against the last rendered frame. On a
// hit it stores the star as the current selection and fires OnStarSelected.
// A miss leaves the existing selection untouched and returns nil.
func (e *Engine) Select(x, y float64, override float64) *catalog.Star {
	hit := FindAt(x, y, e.lastFrame, override)
	if hit == nil {
		return nil
	}
	e.selected = hit
	if e.OnStarSelected != nil {
		e.OnStarSelected(*hit)
	}
	return hit
}

// SelectStar selects a catalog star directly (e.g., from a list view rather
// than a pointer). Fires OnStarSelected.
func (e *Engine) SelectStar(s catalog.Star) {
	star := s
	e.selected = &star
	if e.OnStarSelected != nil {
		e.OnStarSelected(s)
	}
}

// Selected returns the currently selected star, or nil.
func (e *Engine) Selected() *catalog.Star {
	return e.selected
}

// ClearSelection removes the current selection.
func (e *Engine) ClearSelection() {
	e.selected = nil
}
