// Package dome projects horizontal sky coordinates onto a 2D sky-dome disk
// and provides range filtering and pointer selection over the projection.
//
// The dome is the observer's visible hemisphere flattened to a disk: the
// zenith maps to the center and the horizon to the rim, with azimuth 0
// (north) rendered toward the top.
package dome

import "math"

// Geometry describes the dome disk on the rendering surface. The surface
// owns it; it is supplied to each projection pass.
type Geometry struct {
	CenterX float64 // Disk center X in surface units
	CenterY float64 // Disk center Y in surface units
	Radius  float64 // Horizon radius in surface units
}

// MaxRenderFactor bounds how far outside the rim a projected point may land
// and still be worth rendering. Points beyond MaxRenderFactor * Radius from
// the center are discarded by consumers.
const MaxRenderFactor = 1.5

// Project maps horizontal coordinates onto the dome disk.
//
// The radial mapping is linear in altitude: alt 90 is the center, alt 0 the
// rim, and the same formula continues unmodified below the horizon, so
// stars just under the horizon land just outside the rim (they are drawn
// dimmed there rather than excluded).
func Project(altDeg, azDeg float64, geom Geometry) (x, y float64) {
	radius := geom.Radius * (1 - altDeg/90)

	// Rotate so azimuth 0 (north) points to the top of the disk.
	angle := degToRad(azDeg) - math.Pi/2

	x = geom.CenterX + radius*math.Cos(angle)
	y = geom.CenterY + radius*math.Sin(angle)
	return x, y
}

// WithinRenderLimit reports whether a projected point is close enough to the
// dome to render.
func WithinRenderLimit(x, y float64, geom Geometry) bool {
	dx := x - geom.CenterX
	dy := y - geom.CenterY
	return math.Hypot(dx, dy) <= MaxRenderFactor*geom.Radius
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
