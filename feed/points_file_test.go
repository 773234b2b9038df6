package feed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.yaml")
	body := `
points:
  - {x: 120, y: 80}
  - x: 300
    y: 310.5
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	coords, err := LoadPoints(path)
	if err != nil {
		t.Fatalf("LoadPoints failed: %v", err)
	}
	if len(coords) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(coords))
	}
	if coords[0].X != 120 || coords[0].Y != 80 || coords[1].X != 300 || coords[1].Y != 310.5 {
		t.Errorf("Unexpected coords %+v", coords)
	}
}

func TestLoadPointsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("points: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	coords, err := LoadPoints(path)
	if err != nil || len(coords) != 0 {
		t.Errorf("Expected empty point set, got %v, %v", coords, err)
	}
}

func TestLoadPointsErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadPoints(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("points:\n  - {x: nope}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPoints(bad); err == nil {
		t.Error("Expected parse error for non-numeric x")
	}
}
