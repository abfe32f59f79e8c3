package astro

import (
	"math"
	"time"
)

// SunPosition calculates the apparent equatorial coordinates of the Sun.
// Uses a simplified solar ephemeris based on the Astronomical Almanac,
// accurate to ~0.01 degrees, which is plenty for twilight classification.
func SunPosition(t time.Time) (raDeg, decDeg float64) {
	T := julianCenturies(t)

	// Mean longitude and mean anomaly of the Sun (degrees)
	l0 := Mod360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	m := Mod360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	mRad := degToRad(m)

	// Equation of center
	c := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(mRad) +
		(0.019993-0.000101*T)*math.Sin(2*mRad) +
		0.000289*math.Sin(3*mRad)

	// Apparent longitude, corrected for aberration and nutation
	omega := 125.04 - 1934.136*T
	sunLon := l0 + c - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	// Obliquity of the ecliptic, with nutation correction
	eps := 23.439291 - 0.0130042*T + 0.00256*math.Cos(degToRad(omega))

	lonRad := degToRad(sunLon)
	epsRad := degToRad(eps)

	ra := radToDeg(math.Atan2(math.Cos(epsRad)*math.Sin(lonRad), math.Cos(lonRad)))
	if ra < 0 {
		ra += 360
	}
	dec := radToDeg(math.Asin(math.Sin(epsRad) * math.Sin(lonRad)))

	return ra, dec
}

// SunAltitude returns the Sun's altitude in degrees for an observer at a
// given time.
func SunAltitude(obs Observer, t time.Time) float64 {
	ra, dec := SunPosition(t)
	return HorizontalAt(ra, dec, obs, t).AltDeg
}

// TwilightPhase categorizes the sky darkness from the Sun's altitude.
type TwilightPhase int

const (
	PhaseDay          TwilightPhase = iota // Sun above horizon
	PhaseCivil                             // Sun between 0 and -6 degrees
	PhaseNautical                          // Sun between -6 and -12 degrees
	PhaseAstronomical                      // Sun between -12 and -18 degrees
	PhaseNight                             // Sun below -18 degrees
)

func (p TwilightPhase) String() string {
	switch p {
	case PhaseDay:
		return "day"
	case PhaseCivil:
		return "civil twilight"
	case PhaseNautical:
		return "nautical twilight"
	case PhaseAstronomical:
		return "astronomical twilight"
	case PhaseNight:
		return "night"
	default:
		return "unknown"
	}
}

// GetTwilightPhase returns the phase for a given sun altitude in degrees.
func GetTwilightPhase(sunAltDeg float64) TwilightPhase {
	switch {
	case sunAltDeg > 0:
		return PhaseDay
	case sunAltDeg > -6:
		return PhaseCivil
	case sunAltDeg > -12:
		return PhaseNautical
	case sunAltDeg > -18:
		return PhaseAstronomical
	default:
		return PhaseNight
	}
}
