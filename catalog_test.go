package orrery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestBuiltinCatalog(t *testing.T) {
	if len(Catalog) != 10 {
		t.Fatalf("expected 10 bodies, got %d", len(Catalog))
	}
	if !Catalog[0].Elements.AtOrigin() {
		t.Fatal("first catalog entry must be the central star")
	}
	for _, b := range Catalog {
		if err := b.Elements.Validate(); err != nil {
			t.Fatalf("%s: %s", b.Name, err)
		}
	}
}

func TestBodyFromString(t *testing.T) {
	for _, name := range []string{"Earth", "earth", "EARTH"} {
		b, err := BodyFromString(name)
		if err != nil {
			t.Fatal(err)
		}
		if b.Name != "Earth" {
			t.Fatalf("got %s", b.Name)
		}
	}
	if _, err := BodyFromString("Vulcan"); errors.Cause(err) != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `
[[bodies]]
name = "Sol"
semi_major_axis = 0.0

[[bodies]]
name = "Halley"
semi_major_axis = 17.834
eccentricity = 0.96714
inclination = 162.26
node = 58.42
arg_periapsis = 111.33
mean_anomaly = 38.38
period = 27509.0
`)
	bodies, err := LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(bodies))
	}
	if bodies[0].Name != "Sol" || !bodies[0].Elements.AtOrigin() {
		t.Fatalf("bad origin body: %+v", bodies[0])
	}
	halley := bodies[1]
	if halley.Name != "Halley" || halley.Elements.Eccentricity != 0.96714 {
		t.Fatalf("bad body: %+v", halley)
	}
	// A loaded catalog must feed straight into the position pipeline.
	R, err := Position(halley.Elements, J2000)
	if err != nil {
		t.Fatal(err)
	}
	r := Norm(R)
	if r < halley.Elements.Periapsis() || r > halley.Elements.Apoapsis() {
		t.Fatalf("|r|=%f outside apsis bounds", r)
	}
}

func TestLoadCatalogRejectsBadRecords(t *testing.T) {
	path := writeCatalog(t, `
[[bodies]]
name = "Oumuamua"
semi_major_axis = 1.3
eccentricity = 1.2
period = 100.0
`)
	if _, err := LoadCatalog(path); errors.Cause(err) != ErrInvalidInput {
		t.Fatalf("hyperbolic record: expected ErrInvalidInput, got %v", err)
	}

	path = writeCatalog(t, `
[[bodies]]
semi_major_axis = 1.0
eccentricity = 0.1
period = 100.0
`)
	if _, err := LoadCatalog(path); errors.Cause(err) != ErrInvalidInput {
		t.Fatalf("nameless record: expected ErrInvalidInput, got %v", err)
	}

	path = writeCatalog(t, "bodies = []\n")
	if _, err := LoadCatalog(path); errors.Cause(err) != ErrInvalidInput {
		t.Fatalf("empty catalog: expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing catalog file")
	}
}
