package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogYAML is the on-disk catalog file structure.
type catalogYAML struct {
	Name  string     `yaml:"name,omitempty"`
	Stars []starYAML `yaml:"stars"`
}

// starYAML is one star record in YAML form.
type starYAML struct {
	ID            string  `yaml:"id,omitempty"`
	Name          string  `yaml:"name"`
	RA            float64 `yaml:"ra"`
	Dec           float64 `yaml:"dec"`
	Magnitude     float64 `yaml:"magnitude"`
	DistanceLY    float64 `yaml:"distance_ly"`
	AgeGyr        float64 `yaml:"age_gyr"`
	MassSolar     float64 `yaml:"mass_solar"`
	SpectralClass string  `yaml:"spectral_class"`
}

// LoadYAML loads a star catalog from a YAML file.
func LoadYAML(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML parses a star catalog from YAML bytes. Malformed star records
// are skipped and reported in Catalog.Warnings; only an unparseable file is
// an error.
func ParseYAML(data []byte) (Catalog, error) {
	var doc catalogYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog YAML: %w", err)
	}

	stars := make([]Star, 0, len(doc.Stars))
	for _, s := range doc.Stars {
		stars = append(stars, Star{
			ID:            s.ID,
			Name:          s.Name,
			RAdeg:         s.RA,
			DecDeg:        s.Dec,
			Magnitude:     s.Magnitude,
			DistanceLY:    s.DistanceLY,
			AgeGyr:        s.AgeGyr,
			MassSolar:     s.MassSolar,
			SpectralClass: s.SpectralClass,
		})
	}
	return New(stars), nil
}
