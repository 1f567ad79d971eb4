// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Role classifies a layer by its reserved name. Classification is an exact,
// case-sensitive match; any other name is a regular slide layer.
type Role string

const (
	// RoleMaster is the template layer composited into every rendered slide.
	RoleMaster Role = "master"

	// RoleTitle is the first slide of the presentation.
	RoleTitle Role = "title"

	// RoleEnd is the closing slide; backup material may follow it before
	// STOP.
	RoleEnd Role = "end"

	// RoleStop marks the end of processing; it and everything after it
	// never render.
	RoleStop Role = "stop"

	// RoleNumber holds the page number placeholder text composited into
	// numbered slides.
	RoleNumber Role = "number"

	// RoleRegular is any ordinary slide layer.
	RoleRegular Role = "regular"
)

// Reserved layer names as authored in the document.
const (
	NameMaster = "MASTER"
	NameTitle  = "TITLE"
	NameEnd    = "END"
	NameStop   = "STOP"
	NameNumber = "NUMBER"
)

// Classify returns the role for a layer name.
func Classify(name string) Role {
	switch name {
	case NameMaster:
		return RoleMaster
	case NameTitle:
		return RoleTitle
	case NameEnd:
		return RoleEnd
	case NameStop:
		return RoleStop
	case NameNumber:
		return RoleNumber
	default:
		return RoleRegular
	}
}

// Reserved reports whether the role is one of the five reserved roles.
func (r Role) Reserved() bool {
	return r != RoleRegular
}

// LayerInfo describes one top-level layer of the source document.
type LayerInfo struct {
	// Name is the layer label exactly as authored.
	Name string `json:"name" yaml:"name"`

	// Role is the classification of Name.
	Role Role `json:"role" yaml:"role"`

	// Index is the position in the document's layer stack. Document order
	// is the only ordering signal available.
	Index int `json:"index" yaml:"index"`
}

// Catalog is the ordered layer list of a source document, one entry per
// top-level layer in stacking order. Built once per run; read-only after.
type Catalog struct {
	Layers []LayerInfo `json:"layers" yaml:"layers"`
}

// Find returns the first layer with the given role, or nil.
func (c Catalog) Find(role Role) *LayerInfo {
	for i := range c.Layers {
		if c.Layers[i].Role == role {
			return &c.Layers[i]
		}
	}
	return nil
}

// Len returns the number of layers in the catalog.
func (c Catalog) Len() int {
	return len(c.Layers)
}
