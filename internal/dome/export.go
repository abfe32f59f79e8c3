package dome

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/skydome/internal/astro"
	"github.com/litescript/skydome/internal/catalog"
)

// FrameStar is the JSON-serializable geometry of one rendered star.
type FrameStar struct {
	Name      string  `json:"name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Altitude  float64 `json:"altitude"`
	Magnitude float64 `json:"magnitude"`
	Spectral  string  `json:"spectral_class"`
	Color     string  `json:"color"`
	HitRadius float64 `json:"hit_radius"`
}

// FrameExport is the JSON-serializable representation of a rendered frame.
type FrameExport struct {
	Time         time.Time   `json:"time"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	LST          float64     `json:"lst_degrees"`
	VisibleCount int         `json:"visible_count"`
	TotalCount   int         `json:"total_count"`
	Stars        []FrameStar `json:"stars"`
}

// ExportFrame converts a rendered frame to an exportable form.
func ExportFrame(frame []ProjectedStar, obs astro.Observer, at time.Time, visible, total int) *FrameExport {
	export := &FrameExport{
		Time:         at.UTC(),
		Latitude:     obs.LatDeg,
		Longitude:    obs.LonDeg,
		LST:          astro.LocalSiderealTime(at, obs.LonDeg),
		VisibleCount: visible,
		TotalCount:   total,
	}
	for _, ps := range frame {
		export.Stars = append(export.Stars, FrameStar{
			Name:      ps.Star.Name,
			X:         ps.X,
			Y:         ps.Y,
			Altitude:  ps.AltDeg,
			Magnitude: ps.Star.Magnitude,
			Spectral:  ps.Star.SpectralClass,
			Color:     catalog.SpectralColor(ps.Star.SpectralClass),
			HitRadius: ps.HitRadius,
		})
	}
	return export
}

// WriteJSON writes the frame as indented JSON to the given writer.
func (f *FrameExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// WriteSummaryTable writes a text table of the rendered frame.
func WriteSummaryTable(w io.Writer, frame []ProjectedStar, obs astro.Observer, at time.Time) {
	fmt.Fprintf(w, "Sky dome @ %s  lat %.4f lon %.4f\n",
		at.UTC().Format(time.RFC3339), obs.LatDeg, obs.LonDeg)
	fmt.Fprintln(w, strings.Repeat("─", 78))

	if len(frame) == 0 {
		fmt.Fprintln(w, "No stars in frame")
		return
	}

	fmt.Fprintf(w, "%-14s %-8s %6s %8s %8s %8s %8s\n",
		"Star", "Class", "Mag", "Alt", "X", "Y", "Color")
	fmt.Fprintln(w, strings.Repeat("─", 78))

	above := 0
	for _, ps := range frame {
		if ps.AltDeg >= 0 {
			above++
		}
		fmt.Fprintf(w, "%-14s %-8s %6.2f %7.2f° %8.1f %8.1f %8s\n",
			truncateStr(ps.Star.Name, 14),
			truncateStr(ps.Star.SpectralClass, 8),
			ps.Star.Magnitude,
			ps.AltDeg,
			ps.X,
			ps.Y,
			catalog.SpectralColor(ps.Star.SpectralClass),
		)
	}

	fmt.Fprintf(w, "\nTotal: %d rendered, %d above horizon\n", len(frame), above)
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
