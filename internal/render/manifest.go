// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

const manifestFile = "manifest.yaml"

// ManifestEntry records one rendered page.
type ManifestEntry struct {
	Position int    `yaml:"position"`
	Layer    string `yaml:"layer"`
	Page     int    `yaml:"page"`
	File     string `yaml:"file"`
	Hash     string `yaml:"hash"`
}

// Manifest describes a completed build: the source document, the merged
// output, and every page in plan order. It is written to the work
// directory after a successful merge.
type Manifest struct {
	Source      string          `yaml:"source"`
	Output      string          `yaml:"output"`
	GeneratedAt string          `yaml:"generated_at"`
	Pages       []ManifestEntry `yaml:"pages"`
}

// WriteManifest serializes the manifest to path as YAML.
func WriteManifest(path string, m Manifest) error {
	if m.GeneratedAt == "" {
		m.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
