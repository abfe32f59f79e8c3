package dome

import (
	"testing"

	"github.com/litescript/skydome/internal/catalog"
)

func testStar(name string, mag, dist, age, mass float64) catalog.Star {
	return catalog.Star{
		ID:            name,
		Name:          name,
		RAdeg:         100,
		DecDeg:        10,
		Magnitude:     mag,
		DistanceLY:    dist,
		AgeGyr:        age,
		MassSolar:     mass,
		SpectralClass: "G2V",
	}
}

func TestRangesMatch(t *testing.T) {
	r := Ranges{
		Magnitude: Range{Min: -2, Max: 6},
		Distance:  Range{Min: 0, Max: 3000},
		Age:       Range{Min: 0, Max: 15},
		Mass:      Range{Min: 0.1, Max: 50},
	}

	star := testStar("candidate", 1, 100, 5, 1)
	if !r.Match(star) {
		t.Error("star within all four ranges should match")
	}

	// Tightening any single dimension past the star excludes it.
	narrow := r
	narrow.Mass = Range{Min: 10, Max: 50}
	if narrow.Match(star) {
		t.Error("star outside the mass range should not match")
	}

	narrow = r
	narrow.Magnitude = Range{Min: -2, Max: 0.5}
	if narrow.Match(star) {
		t.Error("star outside the magnitude range should not match")
	}

	narrow = r
	narrow.Distance = Range{Min: 200, Max: 3000}
	if narrow.Match(star) {
		t.Error("star outside the distance range should not match")
	}

	narrow = r
	narrow.Age = Range{Min: 6, Max: 15}
	if narrow.Match(star) {
		t.Error("star outside the age range should not match")
	}
}

func TestRangeInclusiveEndpoints(t *testing.T) {
	r := Range{Min: 1, Max: 5}
	for _, v := range []float64{1, 5} {
		if !r.Contains(v) {
			t.Errorf("Contains(%v) = false, endpoints are inclusive", v)
		}
	}
	if r.Contains(0.999) || r.Contains(5.001) {
		t.Error("values just outside the range should not match")
	}
}

func TestRangeInverted(t *testing.T) {
	r := Range{Min: 5, Max: 1}
	if r.Valid() {
		t.Error("inverted range should not be valid")
	}
	for _, v := range []float64{0, 1, 3, 5, 6} {
		if r.Contains(v) {
			t.Errorf("inverted range matched %v", v)
		}
	}
}

func TestFilterOrderAndPurity(t *testing.T) {
	stars := []catalog.Star{
		testStar("a", 0, 10, 1, 1),
		testStar("b", 7, 10, 1, 1),
		testStar("c", 1, 10, 1, 1),
		testStar("d", 2, 10, 1, 1),
	}
	r := DefaultRanges()
	r.Magnitude = Range{Min: -5, Max: 5}

	got := Filter(stars, r)

	if len(got) != 3 {
		t.Fatalf("filtered %d stars, want 3", len(got))
	}
	for i, want := range []string{"a", "c", "d"} {
		if got[i].Name != want {
			t.Errorf("result[%d] = %q, want %q (catalog order)", i, got[i].Name, want)
		}
	}

	// Input untouched, result is a fresh slice.
	if stars[1].Name != "b" || len(stars) != 4 {
		t.Error("Filter mutated its input")
	}
	got[0].Name = "mutated"
	if stars[0].Name != "a" {
		t.Error("filter result aliases the input slice")
	}

	// Idempotent: filtering the result again is a no-op.
	again := Filter(got, r)
	if len(again) != len(got) {
		t.Errorf("second filter pass changed the result: %d != %d", len(again), len(got))
	}
}

func TestFilterMonotonic(t *testing.T) {
	stars := []catalog.Star{
		testStar("near", 1, 10, 1, 1),
		testStar("mid", 1, 500, 1, 1),
		testStar("far", 1, 5000, 1, 1),
	}

	wide := DefaultRanges()
	narrow := wide
	narrow.Distance = Range{Min: 0, Max: 1000}

	wideResult := Filter(stars, wide)
	narrowResult := Filter(stars, narrow)

	if len(narrowResult) > len(wideResult) {
		t.Fatal("narrowing a range grew the result")
	}
	// Every narrow match is also a wide match.
	inWide := make(map[string]bool, len(wideResult))
	for _, s := range wideResult {
		inWide[s.Name] = true
	}
	for _, s := range narrowResult {
		if !inWide[s.Name] {
			t.Errorf("star %q in narrow result but not wide result", s.Name)
		}
	}
}

func TestFilterInvertedRangeEmpty(t *testing.T) {
	stars := []catalog.Star{testStar("a", 1, 10, 1, 1)}
	r := DefaultRanges()
	r.Age = Range{Min: 10, Max: 0}

	if got := Filter(stars, r); len(got) != 0 {
		t.Errorf("inverted range matched %d stars, want 0", len(got))
	}
}
