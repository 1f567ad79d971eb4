// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plan resolves a layer catalog into an ordered sequence of
// slide-render instructions: which layers are shown together for each
// slide and which page number the slide carries.
package plan

import (
	"fmt"
	"strings"

	"github.com/pdiddy/slidescape/pkg/types"
)

// Entry is one slide-render instruction.
type Entry struct {
	// Layer is the name of the slide's own layer.
	Layer string `json:"layer" yaml:"layer"`

	// Role is the layer's classification (title, end, or regular).
	Role types.Role `json:"role" yaml:"role"`

	// Visible lists the layer names shown together for this slide: the
	// slide layer itself, MASTER, and NUMBER when the slide is numbered.
	Visible []string `json:"visible" yaml:"visible"`

	// Page is the resolved page number; 0 means the slide is unnumbered.
	Page int `json:"page" yaml:"page"`

	// Skipped reports that the layer name contains the skip marker: the
	// slide reuses the previous page number instead of advancing it.
	Skipped bool `json:"skipped" yaml:"skipped"`
}

// Numbered reports whether the entry carries a page number.
func (e Entry) Numbered() bool {
	return e.Page > 0
}

// VisibleSet returns the visible layer names as a set.
func (e Entry) VisibleSet() map[string]struct{} {
	set := make(map[string]struct{}, len(e.Visible))
	for _, name := range e.Visible {
		set[name] = struct{}{}
	}
	return set
}

// Plan is the ordered slide list for one run. Entries appear in document
// order, restricted to the renderable window.
type Plan struct {
	Entries []Entry `json:"entries" yaml:"entries"`

	// Pages is the highest page number assigned.
	Pages int `json:"pages" yaml:"pages"`
}

// HasSkipped reports whether any entry reuses a page number.
func (p *Plan) HasSkipped() bool {
	for _, e := range p.Entries {
		if e.Skipped {
			return true
		}
	}
	return false
}

// SkipOnFirstSlideError reports a skip-marked layer with no previous page
// number to reuse.
type SkipOnFirstSlideError struct {
	// Layer is the offending layer name.
	Layer string
}

func (e *SkipOnFirstSlideError) Error() string {
	return fmt.Sprintf("layer %q carries the skip marker but there is no previous slide to stack onto", e.Layer)
}

// Resolve walks the catalog in document order and produces the slide plan.
// The renderable window starts at TITLE if present, otherwise at the first
// layer after MASTER; it ends just before STOP when present, otherwise at
// the end of the document. TITLE, END, and regular layers render; MASTER,
// NUMBER, and STOP never render standalone. END renders in place like any
// other slide, so backup slides between END and STOP stay in the plan and
// keep numbering onward.
//
// Resolve is pure: it never modifies the catalog, and resolving the same
// catalog twice yields an identical plan.
func Resolve(cat types.Catalog, cfg types.PlanConfig) (*Plan, error) {
	start := 0
	if title := cat.Find(types.RoleTitle); title != nil {
		start = title.Index
	} else if master := cat.Find(types.RoleMaster); master != nil {
		start = master.Index + 1
	}

	stop := cat.Len()
	if s := cat.Find(types.RoleStop); s != nil {
		stop = s.Index
	}

	p := &Plan{}
	counter := cfg.PageBase
	if counter < 1 {
		counter = 1
	}
	lastPage := 0

	for i := start; i < stop; i++ {
		layer := cat.Layers[i]
		switch layer.Role {
		case types.RoleMaster, types.RoleNumber, types.RoleStop:
			continue
		}

		numbered := layer.Role != types.RoleTitle || cfg.NumberTitle
		skipped := cfg.SkipMarker != "" && strings.Contains(layer.Name, cfg.SkipMarker)

		entry := Entry{
			Layer:   layer.Name,
			Role:    layer.Role,
			Visible: []string{layer.Name, types.NameMaster},
			Skipped: skipped,
		}

		if numbered {
			if skipped {
				if lastPage == 0 {
					return nil, &SkipOnFirstSlideError{Layer: layer.Name}
				}
				entry.Page = lastPage
			} else {
				entry.Page = counter
				counter++
				lastPage = entry.Page
			}
			entry.Visible = append(entry.Visible, types.NameNumber)
		}

		p.Entries = append(p.Entries, entry)
	}

	p.Pages = lastPage
	return p, nil
}
