package dome

import (
	"math"

	"github.com/litescript/skydome/internal/catalog"
)

// ProjectedStar is the per-frame projection of one catalog star. It is
// created fresh each render pass, never mutated afterwards, and valid only
// for that frame (or as "last known" geometry for the next hit test).
type ProjectedStar struct {
	Star      *catalog.Star
	X         float64 // Surface X coordinate
	Y         float64 // Surface Y coordinate
	HitRadius float64 // Pointer hit tolerance in surface units
	AltDeg    float64 // Carried through so renderers can dim below-horizon stars
}

const (
	// MinHitRadius is the floor on per-star hit radii so that faint, small
	// stars remain selectable.
	MinHitRadius = 6.0

	glowBase   = 9.0
	glowPerMag = 1.5
)

// HitRadiusFor derives a star's pointer hit radius from the glow size it
// renders with: brighter stars (lower magnitude) glow larger. Never smaller
// than MinHitRadius.
func HitRadiusFor(magnitude float64) float64 {
	glow := glowBase - glowPerMag*magnitude
	if glow < MinHitRadius {
		return MinHitRadius
	}
	return glow
}

// FindAt resolves a pointer position to a star. It returns the first star
// in iteration order whose projected position lies within its hit radius of
// the point — first match, not nearest match: with overlapping stars the one
// earlier in the frame wins regardless of exact distance. A positive
// override replaces every per-star radius, widening tolerance for coarse
// pointer input such as touch or terminal mouse cells.
//
// Returns nil when the point hits nothing; that is a normal outcome.
func FindAt(x, y float64, stars []ProjectedStar, override float64) *catalog.Star {
	for i := range stars {
		r := stars[i].HitRadius
		if override > 0 {
			r = override
		}
		if math.Hypot(x-stars[i].X, y-stars[i].Y) <= r {
			return stars[i].Star
		}
	}
	return nil
}
