// Package assets loads the glyph sheets and sound descriptors the terminal
// host draws and plays with. Loading never blocks the game: an asset that
// fails is logged, replaced by a fallback and still counts as settled.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

// ErrUnknownAsset is returned when an ID is not in the catalog.
var ErrUnknownAsset = errors.New("assets: unknown asset")

// Resource maps an asset ID to its file inside the asset filesystem.
type Resource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Manifest lists every asset that must settle before play starts.
type Manifest struct {
	Images []Resource `yaml:"images"`
	Sounds []Resource `yaml:"sounds"`
}

// Total returns the number of assets in the manifest.
func (m Manifest) Total() int {
	return len(m.Images) + len(m.Sounds)
}

// FS returns the built-in asset filesystem, rooted at the data directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded data missing: %v", err))
	}
	return sub
}

// LoadManifest reads resources.yaml from fsys.
func LoadManifest(fsys fs.FS) (Manifest, error) {
	data, err := fs.ReadFile(fsys, "resources.yaml")
	if err != nil {
		return Manifest{}, fmt.Errorf("assets: read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a manifest and rejects duplicate or empty IDs.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("assets: parse manifest: %w", err)
	}
	seen := make(map[string]bool, m.Total())
	for _, r := range append(append([]Resource(nil), m.Images...), m.Sounds...) {
		if r.ID == "" || r.Path == "" {
			return Manifest{}, fmt.Errorf("assets: manifest entry %q: id and path are required", r.ID)
		}
		if seen[r.ID] {
			return Manifest{}, fmt.Errorf("assets: manifest entry %q: duplicate id", r.ID)
		}
		seen[r.ID] = true
	}
	return m, nil
}
