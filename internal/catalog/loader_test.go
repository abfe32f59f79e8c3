package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalogYAML = `name: test catalog
stars:
  - id: vega
    name: Vega
    ra: 279.235
    dec: 38.784
    magnitude: 0.03
    distance_ly: 25.0
    age_gyr: 0.455
    mass_solar: 2.14
    spectral_class: A0V
  - id: broken
    name: Broken
    ra: 10
    dec: 95
    magnitude: 1
    distance_ly: 10
    age_gyr: 1
    mass_solar: 1
    spectral_class: G2V
  - id: sirius
    name: Sirius
    ra: 101.287
    dec: -16.716
    magnitude: -1.46
    distance_ly: 8.6
    age_gyr: 0.242
    mass_solar: 2.06
    spectral_class: A1V
`

func TestParseYAML(t *testing.T) {
	c, err := ParseYAML([]byte(testCatalogYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if len(c.Warnings) != 1 || !strings.Contains(c.Warnings[0], "Broken") {
		t.Errorf("warnings = %v, want one for the out-of-range record", c.Warnings)
	}

	vega := c.Stars[0]
	if vega.ID != "vega" || vega.Name != "Vega" {
		t.Errorf("first star = %q/%q, want vega/Vega", vega.ID, vega.Name)
	}
	if vega.RAdeg != 279.235 || vega.DecDeg != 38.784 {
		t.Errorf("vega position = (%v, %v)", vega.RAdeg, vega.DecDeg)
	}
	if vega.DistanceLY != 25.0 || vega.AgeGyr != 0.455 || vega.MassSolar != 2.14 {
		t.Errorf("vega parameters = %+v", vega)
	}
	if vega.SpectralClass != "A0V" {
		t.Errorf("vega spectral class = %q", vega.SpectralClass)
	}

	if c.Stars[1].ID != "sirius" {
		t.Errorf("second star = %q, want sirius", c.Stars[1].ID)
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	_, err := ParseYAML([]byte("stars: [not, a, star, list"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalogYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	_, err := LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
