// Package catalog defines the star catalog data model, validation, and loaders.
package catalog

import (
	"fmt"
	"math"
)

// Star represents a cataloged star. All fields are read-only once loaded;
// the rendering pipeline never writes derived state back onto a Star.
type Star struct {
	ID            string  // Stable identifier (e.g., "alpha-cma")
	Name          string  // Common name (e.g., "Sirius", "Vega")
	RAdeg         float64 // Right Ascension in degrees, [0,360) (J2000)
	DecDeg        float64 // Declination in degrees, [-90,90] (J2000)
	Magnitude     float64 // Apparent visual magnitude (lower = brighter)
	DistanceLY    float64 // Distance in light-years, >= 0
	AgeGyr        float64 // Age in billions of years, >= 0
	MassSolar     float64 // Mass in solar masses, > 0
	SpectralClass string  // Spectral type; first letter is the class (e.g., "A1V")
}

// Validate reports whether the record is well-formed. Malformed records are
// excluded at ingestion rather than propagated as NaN through the
// transformation chain.
func (s Star) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("star has no name")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"ra", s.RAdeg},
		{"dec", s.DecDeg},
		{"magnitude", s.Magnitude},
		{"distance", s.DistanceLY},
		{"age", s.AgeGyr},
		{"mass", s.MassSolar},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("star %q: %s is not a finite number", s.Name, f.name)
		}
	}
	if s.RAdeg < 0 || s.RAdeg >= 360 {
		return fmt.Errorf("star %q: ra %.4f outside [0,360)", s.Name, s.RAdeg)
	}
	if s.DecDeg < -90 || s.DecDeg > 90 {
		return fmt.Errorf("star %q: dec %.4f outside [-90,90]", s.Name, s.DecDeg)
	}
	if s.DistanceLY < 0 {
		return fmt.Errorf("star %q: negative distance %.4f", s.Name, s.DistanceLY)
	}
	if s.AgeGyr < 0 {
		return fmt.Errorf("star %q: negative age %.4f", s.Name, s.AgeGyr)
	}
	if s.MassSolar <= 0 {
		return fmt.Errorf("star %q: non-positive mass %.4f", s.Name, s.MassSolar)
	}
	if s.SpectralClass == "" {
		return fmt.Errorf("star %q: empty spectral class", s.Name)
	}
	return nil
}

// Catalog holds an ordered collection of stars. Iteration order is the
// catalog order and is preserved by filtering downstream.
type Catalog struct {
	Stars    []Star
	Warnings []string // Diagnostics for records skipped during ingestion
}

// New builds a catalog from raw records, excluding malformed ones. A bad
// record never prevents the rest of the catalog from loading; its
// diagnostic is carried in Warnings.
func New(stars []Star) Catalog {
	var c Catalog
	c.Stars = make([]Star, 0, len(stars))
	for _, s := range stars {
		if err := s.Validate(); err != nil {
			c.Warnings = append(c.Warnings, err.Error())
			continue
		}
		c.Stars = append(c.Stars, s)
	}
	return c
}

// Len returns the number of valid stars in the catalog.
func (c Catalog) Len() int {
	return len(c.Stars)
}
