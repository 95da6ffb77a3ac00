// Package fixture provides the seed collections the mock stores start from.
package fixture

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
)

//go:embed db.json
var embedded []byte

// Seed mirrors the layout of db.json.
type Seed struct {
	Categories []model.Category `json:"categories"`
	Products   []model.Product  `json:"products"`
	Tasks      []model.Task     `json:"tasks"`
}

// Default decodes the embedded fixture.
func Default() (Seed, error) {
	return Parse(embedded)
}

// Load reads a fixture file, falling back to the embedded one when path is empty.
func Load(path string) (Seed, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed %q: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a db.json document.
func Parse(b []byte) (Seed, error) {
	var s Seed
	if err := json.Unmarshal(b, &s); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return s, nil
}
