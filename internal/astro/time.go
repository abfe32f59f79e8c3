// Package astro provides astronomical time and coordinate math for the sky dome.
package astro

import (
	"math"
	"time"
)

// J2000 is the J2000.0 reference epoch (2000-01-01 12:00:00 UTC).
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// Mod360 returns deg reduced to [0,360) using true mathematical modulo.
// Unlike math.Mod, the result is never negative.
func Mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// DaysSinceJ2000 returns the continuous number of days between t and the
// J2000.0 epoch. The result is fractional and negative for instants before
// the epoch.
func DaysSinceJ2000(t time.Time) float64 {
	return t.UTC().Sub(J2000).Seconds() / 86400.0
}

// GreenwichSiderealTime calculates GST in degrees for a given UTC time.
//
//	GST0 = (280.46061837 + 360.98564736629 · d) mod 360
//	GST  = (GST0 + 15.04107 · h) mod 360
//
// where d is the continuous day count since J2000.0 and h is the fractional
// UTC hour of day.
func GreenwichSiderealTime(t time.Time) float64 {
	t = t.UTC()
	d := DaysSinceJ2000(t)
	gst0 := Mod360(280.46061837 + 360.98564736629*d)

	h := float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9

	return Mod360(gst0 + 15.04107*h)
}

// LocalSiderealTime calculates the Local Sidereal Time in degrees for a
// given UTC time and observer longitude (east positive). The result is
// always in [0,360), for any longitude and for instants before J2000.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return Mod360(GreenwichSiderealTime(t) + lonDeg)
}

// julianCenturies returns Julian centuries since J2000.0. Used by the solar
// ephemeris.
func julianCenturies(t time.Time) float64 {
	return DaysSinceJ2000(t) / 36525.0
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
