package astro

import (
	"math"
	"time"
)

// RiseSetWindow describes one rise-transit-set cycle for a fixed RA/Dec
// position as seen by an observer.
type RiseSetWindow struct {
	Rise         time.Time // Time the object rises above the horizon
	Transit      time.Time // Time of maximum altitude
	Set          time.Time // Time the object sets below the horizon
	MaxAltDeg    float64   // Peak altitude in degrees
	Circumpolar  bool      // Object never sets
	NeverVisible bool      // Object never rises
}

// riseSetStep is the sampling interval used to locate horizon crossings.
const riseSetStep = 5 * time.Minute

// RiseSet computes rise, transit, and set times for a fixed RA/Dec position
// over the 24 hours following from. Horizon crossings are located by linear
// interpolation between samples; for catalog stars, whose positions are
// constant, this is accurate to well under a minute.
func RiseSet(obs Observer, raDeg, decDeg float64, from time.Time) RiseSetWindow {
	type sample struct {
		t      time.Time
		altDeg float64
	}

	n := int(24*time.Hour/riseSetStep) + 1
	samples := make([]sample, 0, n)

	minAlt, maxAlt := 90.0, -90.0
	maxIdx := 0
	for i := 0; i < n; i++ {
		t := from.Add(time.Duration(i) * riseSetStep)
		alt := HorizontalAt(raDeg, decDeg, obs, t).AltDeg
		samples = append(samples, sample{t: t, altDeg: alt})

		if alt < minAlt {
			minAlt = alt
		}
		if alt > maxAlt {
			maxAlt = alt
			maxIdx = i
		}
	}

	if minAlt > 0 {
		return RiseSetWindow{
			Transit:     samples[maxIdx].t,
			MaxAltDeg:   maxAlt,
			Circumpolar: true,
		}
	}
	if maxAlt < 0 {
		return RiseSetWindow{
			MaxAltDeg:    maxAlt,
			NeverVisible: true,
		}
	}

	w := RiseSetWindow{
		Transit:   samples[maxIdx].t,
		MaxAltDeg: maxAlt,
	}

	// First upward crossing
	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		if prev.altDeg <= 0 && curr.altDeg > 0 {
			w.Rise = interpolateCrossing(prev.t, curr.t, prev.altDeg, curr.altDeg)
			break
		}
	}

	// First downward crossing after the rise (or from the window start when
	// the object is already up).
	startIdx := 0
	if !w.Rise.IsZero() {
		for i, s := range samples {
			if !s.t.Before(w.Rise) {
				startIdx = i
				break
			}
		}
	}
	for i := startIdx + 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		if prev.altDeg > 0 && curr.altDeg <= 0 {
			w.Set = interpolateCrossing(prev.t, curr.t, prev.altDeg, curr.altDeg)
			break
		}
	}

	return w
}

// interpolateCrossing finds the time the altitude crosses zero between two
// samples, by linear interpolation.
func interpolateCrossing(t1, t2 time.Time, alt1, alt2 float64) time.Time {
	if math.Abs(alt2-alt1) < 1e-4 {
		return t1
	}
	fraction := -alt1 / (alt2 - alt1)
	fraction = clamp(fraction, 0, 1)
	return t1.Add(time.Duration(float64(t2.Sub(t1)) * fraction))
}
