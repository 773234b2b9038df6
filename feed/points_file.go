package feed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-radar/sweep"
)

type pointEntry struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type pointsFile struct {
	Points []pointEntry `yaml:"points"`
}

// LoadPoints reads a YAML file of container-local points:
//
//	points:
//	  - {x: 120, y: 80}
//	  - {x: 300, y: 310}
func LoadPoints(path string) ([]sweep.Coord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	var f pointsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse points %s: %w", path, err)
	}
	coords := make([]sweep.Coord, len(f.Points))
	for i, p := range f.Points {
		coords[i] = sweep.Coord{X: p.X, Y: p.Y}
	}
	return coords, nil
}
