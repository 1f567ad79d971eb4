// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package svgdoc

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/pdiddy/slidescape/pkg/types"
)

const (
	// numberTextLabel is the inkscape:label of the text element inside the
	// NUMBER layer that serves as the page number placeholder.
	numberTextLabel = "slidenumber"

	// placeholderPage in the template text is replaced by the zero-padded
	// page number; placeholderTotal by the total page count.
	placeholderPage  = "NS"
	placeholderTotal = "NT"
)

// NumberPolicy captures the page number template found in the NUMBER
// layer: a text element labeled "slidenumber" whose first tspan holds text
// like "Slide NS of NT". The placement and styling stay in the document;
// only the text changes per page.
type NumberPolicy struct {
	template string
	tspan    *etree.Element
}

// NumberPolicy derives the page-number template from the document's NUMBER
// layer. It returns nil when the NUMBER layer or its slidenumber text is
// absent; slides then render without a stamped number.
func (d *Document) NumberPolicy() *NumberPolicy {
	var numberLayer *Layer
	for _, l := range d.layers {
		if types.Classify(l.Name) == types.RoleNumber {
			numberLayer = l
			break
		}
	}
	if numberLayer == nil {
		return nil
	}

	for _, textEl := range descendants(numberLayer.el, "text") {
		if textEl.SelectAttrValue(attrLabel, "") != numberTextLabel {
			continue
		}
		tspan := textEl.SelectElement("tspan")
		if tspan == nil {
			continue
		}
		return &NumberPolicy{template: tspan.Text(), tspan: tspan}
	}
	return nil
}

// Template returns the placeholder text as authored.
func (p *NumberPolicy) Template() string {
	return p.template
}

// UsesTotal reports whether the template references the total page count.
func (p *NumberPolicy) UsesTotal() bool {
	return strings.Contains(p.template, placeholderTotal)
}

// Stamp replaces the placeholders in the template with the given page
// number and total, and writes the result into the document's number text.
// The returned function puts the previous text back, so the shared
// document carries no stamp once the snapshot scope closes.
func (p *NumberPolicy) Stamp(page, total int) func() {
	prev := p.tspan.Text()
	text := strings.ReplaceAll(p.template, placeholderPage, fmt.Sprintf("%02d", page))
	text = strings.ReplaceAll(text, placeholderTotal, fmt.Sprintf("%d", total))
	p.tspan.SetText(text)
	return func() { p.tspan.SetText(prev) }
}

// descendants collects all elements with the given tag below el, in
// document order.
func descendants(el *etree.Element, tag string) []*etree.Element {
	var found []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			found = append(found, child)
		}
		found = append(found, descendants(child, tag)...)
	}
	return found
}
