package catalog

// spectralColors maps the leading classification letter to a display color.
var spectralColors = map[byte]string{
	'M': "#ffaa77",
	'K': "#ffcc88",
	'G': "#ffff88",
	'F': "#ffffff",
	'A': "#aaccff",
	'B': "#88aaff",
}

// DefaultStarColor is used for spectral classes with no dedicated entry
// (O stars, white dwarfs, carbon stars, ...).
const DefaultStarColor = "#ffffff"

// SpectralColor returns the display color for a spectral class, matched on
// its first character. The match is case-insensitive; unknown classes fall
// back to DefaultStarColor.
func SpectralColor(class string) string {
	if class == "" {
		return DefaultStarColor
	}
	c := class[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if color, ok := spectralColors[c]; ok {
		return color
	}
	return DefaultStarColor
}
