// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package svgdoc

import (
	"fmt"

	"github.com/pdiddy/slidescape/pkg/types"
)

// MissingLayerError reports that a required reserved layer is absent.
type MissingLayerError struct {
	// Name is the reserved layer name, e.g. "MASTER".
	Name string
}

func (e *MissingLayerError) Error() string {
	return fmt.Sprintf("required layer %s not found", e.Name)
}

// DuplicateLayerError reports that more than one layer claims the same
// reserved role.
type DuplicateLayerError struct {
	// Name is the reserved layer name that appears more than once.
	Name string
}

func (e *DuplicateLayerError) Error() string {
	return fmt.Sprintf("reserved layer %s appears more than once", e.Name)
}

// UnnamedLayerError reports a layer with no inkscape:label.
type UnnamedLayerError struct {
	// Index is the layer's position in the document stack.
	Index int
}

func (e *UnnamedLayerError) Error() string {
	return fmt.Sprintf("layer at position %d has no name", e.Index)
}

// Catalog classifies the document's layers into an ordered catalog.
// Each reserved role (MASTER, TITLE, END, STOP, NUMBER) may be claimed by
// at most one layer, and MASTER is required: every rendered slide
// composites with it. Pure read; the document is not modified.
func (d *Document) Catalog() (types.Catalog, error) {
	var cat types.Catalog
	seen := make(map[types.Role]bool)

	for i, l := range d.layers {
		if l.Name == "" {
			return types.Catalog{}, &UnnamedLayerError{Index: i}
		}
		role := types.Classify(l.Name)
		if role.Reserved() {
			if seen[role] {
				return types.Catalog{}, &DuplicateLayerError{Name: l.Name}
			}
			seen[role] = true
		}
		cat.Layers = append(cat.Layers, types.LayerInfo{
			Name:  l.Name,
			Role:  role,
			Index: i,
		})
	}

	if !seen[types.RoleMaster] {
		return types.Catalog{}, &MissingLayerError{Name: types.NameMaster}
	}
	return cat, nil
}
