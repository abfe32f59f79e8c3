package dome

import (
	"math"
	"testing"

	"github.com/litescript/skydome/internal/catalog"
)

func TestHitRadiusFor(t *testing.T) {
	tests := []struct {
		magnitude float64
		want      float64
	}{
		{-1.46, 11.19}, // bright: glow dominates
		{0, 9},
		{2, 6}, // glow hits the floor exactly
		{4, MinHitRadius},
		{6.5, MinHitRadius},
	}

	for _, tt := range tests {
		got := HitRadiusFor(tt.magnitude)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HitRadiusFor(%v) = %v, want %v", tt.magnitude, got, tt.want)
		}
		if got < MinHitRadius {
			t.Errorf("HitRadiusFor(%v) = %v, below floor", tt.magnitude, got)
		}
	}
}

func twoOverlappingStars() ([]ProjectedStar, *catalog.Star, *catalog.Star) {
	first := &catalog.Star{ID: "first", Name: "First", Magnitude: 1}
	second := &catalog.Star{ID: "second", Name: "Second", Magnitude: 1}
	frame := []ProjectedStar{
		{Star: first, X: 100, Y: 100, HitRadius: 8},
		{Star: second, X: 104, Y: 100, HitRadius: 8},
	}
	return frame, first, second
}

func TestFindAtFirstMatchWins(t *testing.T) {
	frame, first, _ := twoOverlappingStars()

	// The click is closer to the second star, but both radii cover it and
	// the first star appears earlier in the frame.
	got := FindAt(103, 100, frame, 0)
	if got != first {
		t.Errorf("FindAt returned %v, want first star (frame order, not proximity)", got)
	}
}

func TestFindAtExactPosition(t *testing.T) {
	frame, first, _ := twoOverlappingStars()
	if got := FindAt(100, 100, frame, 0); got != first {
		t.Errorf("click on exact star position missed: got %v", got)
	}
}

func TestFindAtMiss(t *testing.T) {
	frame, _, _ := twoOverlappingStars()
	if got := FindAt(300, 300, frame, 0); got != nil {
		t.Errorf("distant click hit %v, want nil", got)
	}
	if got := FindAt(0, 0, nil, 0); got != nil {
		t.Errorf("empty frame hit %v, want nil", got)
	}
}

func TestFindAtOverride(t *testing.T) {
	star := &catalog.Star{ID: "s", Name: "S", Magnitude: 3}
	frame := []ProjectedStar{{Star: star, X: 50, Y: 50, HitRadius: 6}}

	// 8 units away: outside the star's own radius.
	if got := FindAt(58, 50, frame, 0); got != nil {
		t.Errorf("hit with per-star radius at 8 units, want miss")
	}
	// A coarse-pointer override widens the tolerance.
	if got := FindAt(58, 50, frame, 10); got != star {
		t.Errorf("override 10 missed a star 8 units away")
	}
	// The override replaces the radius entirely, it does not extend it.
	if got := FindAt(58, 50, frame, 2); got != nil {
		t.Errorf("override 2 should shrink the tolerance, got %v", got)
	}
}
