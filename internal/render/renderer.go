// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "fmt"

const binInkscape = "inkscape"

// PageRenderer turns one visible-layer snapshot SVG into a single page
// file. The external renderer is treated as opaque; any failure surfaces
// as an error on RenderPage.
type PageRenderer interface {
	RenderPage(svgPath, pagePath string) error
}

// InkscapeRenderer renders pages by invoking the Inkscape CLI.
type InkscapeRenderer struct {
	bin  string
	exec executor
}

// NewInkscapeRenderer creates a renderer using the given binary name or
// path (empty means "inkscape"). It verifies the binary exists on PATH
// before returning.
func NewInkscapeRenderer(bin string) (*InkscapeRenderer, error) {
	return newInkscapeRenderer(bin, defaultExec)
}

func newInkscapeRenderer(bin string, exec executor) (*InkscapeRenderer, error) {
	if bin == "" {
		bin = binInkscape
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("renderer %s not found on PATH: %w", bin, err)
	}
	return &InkscapeRenderer{bin: bin, exec: exec}, nil
}

// RenderPage exports svgPath to pagePath.
func (r *InkscapeRenderer) RenderPage(svgPath, pagePath string) error {
	if err := r.exec.Run(r.bin, "--export-filename="+pagePath, svgPath); err != nil {
		return fmt.Errorf("exporting %s: %w", svgPath, err)
	}
	return nil
}
