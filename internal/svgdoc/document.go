// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package svgdoc reads a layered Inkscape SVG document and exposes its
// layer list, visibility toggles, and the page-number text template.
package svgdoc

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

const (
	attrLabel     = "inkscape:label"
	attrGroupMode = "inkscape:groupmode"
	attrStyle     = "style"

	styleHidden = "display:none"
	styleShown  = "display:inline"
)

// Document is a parsed SVG presentation source. The underlying XML tree is
// shared, mutable state: visibility toggles edit it in place, so renders
// against one Document must not overlap.
type Document struct {
	path   string
	tree   *etree.Document
	layers []*Layer
}

// Layer is one top-level Inkscape layer (a <g> element with
// inkscape:groupmode="layer"), in document stacking order.
type Layer struct {
	// Name is the inkscape:label value, exactly as authored.
	Name string

	el *etree.Element
}

// Visible reports whether the layer is currently displayed.
func (l *Layer) Visible() bool {
	return !strings.Contains(l.el.SelectAttrValue(attrStyle, ""), styleHidden)
}

// Load parses the SVG file at path and collects its top-level layers.
// It fails if the file cannot be read or its root element is not <svg>.
func Load(path string) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	root := tree.Root()
	if root == nil || root.Tag != "svg" {
		return nil, fmt.Errorf("%s does not appear to be an SVG document", path)
	}

	d := &Document{path: path, tree: tree}
	for _, el := range root.ChildElements() {
		if el.Tag != "g" || el.SelectAttrValue(attrGroupMode, "") != "layer" {
			continue
		}
		d.layers = append(d.layers, &Layer{
			Name: el.SelectAttrValue(attrLabel, ""),
			el:   el,
		})
	}
	return d, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Layers returns the top-level layers in document order.
func (d *Document) Layers() []*Layer {
	return d.layers
}

// SetVisibleOnly shows exactly the named layers and hides all others,
// returning a restore function that reinstates every layer's prior style.
// Callers must invoke restore on every exit path: the document is mutated
// in place and is shared across renders.
func (d *Document) SetVisibleOnly(names map[string]struct{}) (restore func()) {
	type savedStyle struct {
		el    *etree.Element
		value string
		had   bool
	}

	prior := make([]savedStyle, 0, len(d.layers))
	for _, l := range d.layers {
		s := savedStyle{el: l.el}
		if a := l.el.SelectAttr(attrStyle); a != nil {
			s.value = a.Value
			s.had = true
		}
		prior = append(prior, s)

		if _, ok := names[l.Name]; ok {
			l.el.CreateAttr(attrStyle, styleShown)
		} else {
			l.el.CreateAttr(attrStyle, styleHidden)
		}
	}

	return func() {
		for _, s := range prior {
			if s.had {
				s.el.CreateAttr(attrStyle, s.value)
			} else {
				s.el.RemoveAttr(attrStyle)
			}
		}
	}
}

// WriteVisible serializes a snapshot of the document to path with all
// hidden layers removed, leaving the in-memory tree untouched.
func (d *Document) WriteVisible(path string) error {
	snap := d.tree.Copy()
	root := snap.Root()
	for _, el := range root.ChildElements() {
		if el.Tag != "g" || el.SelectAttrValue(attrGroupMode, "") != "layer" {
			continue
		}
		if strings.Contains(el.SelectAttrValue(attrStyle, ""), styleHidden) {
			root.RemoveChild(el)
		}
	}
	if err := snap.WriteToFile(path); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}
