package astro

import (
	"math"
	"time"
)

// Horizontal represents observer-relative horizontal coordinates.
type Horizontal struct {
	AltDeg float64 // Altitude in degrees (-90 to +90, 0 = horizon, 90 = zenith)
	AzDeg  float64 // Azimuth in degrees (0 = N, 90 = E, 180 = S, 270 = W)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// Normalized returns the observer with latitude clamped to [-90,90] and
// longitude folded into [-180,180].
func (o Observer) Normalized() Observer {
	if o.LatDeg > 90 {
		o.LatDeg = 90
	} else if o.LatDeg < -90 {
		o.LatDeg = -90
	}
	lon := Mod360(o.LonDeg)
	if lon > 180 {
		lon -= 360
	}
	o.LonDeg = lon
	return o
}

// azimuthEps guards the azimuth denominator against the degenerate cases
// cos(lat) = 0 (observer at a pole) and cos(alt) = 0 (star at zenith/nadir).
const azimuthEps = 1e-9

// EquatorialToHorizontal converts equatorial coordinates (RA/Dec) to
// horizontal coordinates (Alt/Az) given a local sidereal time and observer
// latitude, all in degrees.
//
// The inverse-cosine azimuth ambiguity is resolved by the hemisphere of the
// hour angle: sin(H) >= 0 places the object west of the meridian
// (az = 360 - acos). When the observer is exactly at a pole, or the star is
// exactly at zenith or nadir, azimuth is undefined; this implementation
// defines it as 0 so that no NaN can propagate downstream.
func EquatorialToHorizontal(raDeg, decDeg, lstDeg, latDeg float64) Horizontal {
	ha := Mod360(lstDeg - raDeg + 360)
	h := degToRad(ha)
	dec := degToRad(decDeg)
	lat := degToRad(latDeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(h)
	sinAlt = clamp(sinAlt, -1, 1)
	alt := math.Asin(sinAlt)

	denom := math.Cos(lat) * math.Cos(alt)
	azDeg := 0.0
	if math.Abs(denom) >= azimuthEps {
		cosAz := clamp((math.Sin(dec)-math.Sin(lat)*sinAlt)/denom, -1, 1)
		az := radToDeg(math.Acos(cosAz))
		if math.Sin(h) >= 0 {
			az = 360 - az
		}
		azDeg = az
	}

	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  azDeg,
	}
}

// HorizontalAt computes the horizontal coordinates of a fixed RA/Dec
// position for a given observer and time. The time is always an explicit
// parameter; nothing in this package reads the wall clock.
func HorizontalAt(raDeg, decDeg float64, obs Observer, t time.Time) Horizontal {
	lst := LocalSiderealTime(t, obs.LonDeg)
	return EquatorialToHorizontal(raDeg, decDeg, lst, obs.LatDeg)
}

// clamp bounds v to [lo,hi]. Used to guard inverse trig against
// floating-point overshoot.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
