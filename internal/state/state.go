// Package state provides thread-safe state management for the application.
//
// The dome engine itself is synchronous and single-threaded; the Manager
// wraps it so the TUI event loop and headless render loops can share one
// engine, and records a ring buffer of state-change events.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/litescript/skydome/internal/astro"
	"github.com/litescript/skydome/internal/catalog"
	"github.com/litescript/skydome/internal/dome"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventCatalogLoaded    EventType = "CATALOG_LOADED"
	EventLocationChanged  EventType = "LOCATION_CHANGED"
	EventFilterChanged    EventType = "FILTER_CHANGED"
	EventStarSelected     EventType = "STAR_SELECTED"
	EventSelectionCleared EventType = "SELECTION_CLEARED"
)

// Event records one state change.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Detail    string    `json:"detail,omitempty"`
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents int
	Clock     func() time.Time
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents: 50,
		Clock:     time.Now,
	}
}

// Manager owns the engine and all shared application state.
type Manager struct {
	mu sync.RWMutex

	engine *dome.Engine
	clock  func() time.Time
	geom   dome.Geometry

	// Last render pass
	frame        []dome.ProjectedStar
	renderedAt   time.Time
	visibleCount int
	totalCount   int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int
}

// NewManager creates a state manager around an engine. The engine's
// callbacks are claimed by the manager; hosts observe changes through
// Snapshot and the event log.
func NewManager(engine *dome.Engine, cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	m := &Manager{
		engine:    engine,
		clock:     clock,
		maxEvents: maxEvents,
		events:    make([]Event, 0, maxEvents),
	}

	engine.OnStarsFiltered = func(visible, total int) {
		m.visibleCount = visible
		m.totalCount = total
	}
	engine.OnStarSelected = func(s catalog.Star) {
		m.addEvent(Event{
			Type:      EventStarSelected,
			Timestamp: m.clock(),
			Detail:    s.Name,
		})
	}

	return m
}

// SetGeometry updates the dome geometry and re-renders.
func (m *Manager) SetGeometry(geom dome.Geometry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.geom = geom
	m.renderLocked()
}

// SetObserver updates the observer location and re-renders.
func (m *Manager) SetObserver(obs astro.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engine.SetObserver(obs)
	m.addEvent(Event{
		Type:      EventLocationChanged,
		Timestamp: m.clock(),
		Detail:    fmt.Sprintf("lat %.4f lon %.4f", obs.LatDeg, obs.LonDeg),
	})
	m.renderLocked()
}

// SetRanges updates the filter constraints and re-renders.
func (m *Manager) SetRanges(r dome.Ranges) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engine.SetRanges(r)
	m.addEvent(Event{
		Type:      EventFilterChanged,
		Timestamp: m.clock(),
		Detail: fmt.Sprintf("mag [%.1f,%.1f] dist [%.0f,%.0f] age [%.1f,%.1f] mass [%.1f,%.1f]",
			r.Magnitude.Min, r.Magnitude.Max,
			r.Distance.Min, r.Distance.Max,
			r.Age.Min, r.Age.Max,
			r.Mass.Min, r.Mass.Max),
	})
	m.renderLocked()
}

// SetCatalog replaces the star catalog and re-renders.
func (m *Manager) SetCatalog(cat catalog.Catalog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engine.SetCatalog(cat)
	m.addEvent(Event{
		Type:      EventCatalogLoaded,
		Timestamp: m.clock(),
		Detail:    fmt.Sprintf("%d stars", cat.Len()),
	})
	m.renderLocked()
}

// Render runs a render pass at the clock's current time.
func (m *Manager) Render() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renderLocked()
}

// RenderAt runs a render pass at an explicit instant.
func (m *Manager) RenderAt(at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renderAtLocked(at)
}

func (m *Manager) renderLocked() {
	m.renderAtLocked(m.clock())
}

func (m *Manager) renderAtLocked(at time.Time) {
	if m.geom.Radius <= 0 {
		return
	}
	m.frame = m.engine.Render(at, m.geom)
	m.renderedAt = at
}

// Select resolves a pointer position against the last rendered frame. The
// override widens the hit tolerance for coarse pointers; pass 0 to use each
// star's own hit radius.
func (m *Manager) Select(x, y float64, override float64) *catalog.Star {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engine.Select(x, y, override)
}

// SelectStar selects a star directly, bypassing hit testing.
func (m *Manager) SelectStar(s catalog.Star) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engine.SelectStar(s)
}

// ClearSelection removes the current selection.
func (m *Manager) ClearSelection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine.Selected() == nil {
		return
	}
	m.engine.ClearSelection()
	m.addEvent(Event{
		Type:      EventSelectionCleared,
		Timestamp: m.clock(),
	})
}

// addEvent adds an event to the ring buffer. Callers hold the lock or run
// inside a locked engine callback.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events, oldest first.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Snapshot is an immutable view of the current state.
type Snapshot struct {
	Frame        []dome.ProjectedStar
	Visible      []catalog.Star
	Observer     astro.Observer
	Ranges       dome.Ranges
	Selected     *catalog.Star
	VisibleCount int
	TotalCount   int
	RenderedAt   time.Time
	SunAltDeg    float64
	Events       []Event
}

// Snapshot returns a consistent copy of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	frame := make([]dome.ProjectedStar, len(m.frame))
	copy(frame, m.frame)

	visible := make([]catalog.Star, len(m.engine.Visible()))
	copy(visible, m.engine.Visible())

	var selected *catalog.Star
	if s := m.engine.Selected(); s != nil {
		star := *s
		selected = &star
	}

	obs := m.engine.Observer()

	sunAlt := 0.0
	if !m.renderedAt.IsZero() {
		sunAlt = astro.SunAltitude(obs, m.renderedAt)
	}

	return Snapshot{
		Frame:        frame,
		Visible:      visible,
		Observer:     obs,
		Ranges:       m.engine.Ranges(),
		Selected:     selected,
		VisibleCount: m.visibleCount,
		TotalCount:   m.totalCount,
		RenderedAt:   m.renderedAt,
		SunAltDeg:    sunAlt,
		Events:       m.getEventsOrdered(),
	}
}

// Now returns the manager's clock time. The clock may be pinned for
// deterministic output.
func (m *Manager) Now() time.Time {
	return m.clock()
}

// HasFrame reports whether at least one render pass has completed.
func (m *Manager) HasFrame() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.renderedAt.IsZero()
}
