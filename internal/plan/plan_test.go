// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pdiddy/slidescape/pkg/types"
)

// catalogOf builds a catalog from layer names in document order.
func catalogOf(names ...string) types.Catalog {
	var cat types.Catalog
	for i, name := range names {
		cat.Layers = append(cat.Layers, types.LayerInfo{
			Name:  name,
			Role:  types.Classify(name),
			Index: i,
		})
	}
	return cat
}

// slideResult summarizes an entry for compact expectations.
type slideResult struct {
	layer   string
	page    int // 0 = unnumbered
	skipped bool
}

func results(p *Plan) []slideResult {
	var out []slideResult
	for _, e := range p.Entries {
		out = append(out, slideResult{layer: e.Layer, page: e.Page, skipped: e.Skipped})
	}
	return out
}

func TestResolve(t *testing.T) {
	defaults := types.DefaultPlanConfig()

	tests := []struct {
		name      string
		layers    []string
		cfg       types.PlanConfig
		want      []slideResult
		wantPages int
	}{
		{
			// The reference arrangement: title unnumbered, skip marker
			// stacks onto the previous page, STOP excludes the rest.
			name: "full deck with skip and stop",
			layers: []string{
				"MASTER", "TITLE", "NUMBER",
				"Intro", "Methods copy", "Methods", "END", "STOP", "Bonus",
			},
			cfg: defaults,
			want: []slideResult{
				{layer: "TITLE"},
				{layer: "Intro", page: 1},
				{layer: "Methods copy", page: 1, skipped: true},
				{layer: "Methods", page: 2},
				{layer: "END", page: 3},
			},
			wantPages: 3,
		},
		{
			name:   "no end layer runs to end of document",
			layers: []string{"MASTER", "TITLE", "Intro", "Outro"},
			cfg:    defaults,
			want: []slideResult{
				{layer: "TITLE"},
				{layer: "Intro", page: 1},
				{layer: "Outro", page: 2},
			},
			wantPages: 2,
		},
		{
			name:   "no title starts after master",
			layers: []string{"MASTER", "One", "Two"},
			cfg:    defaults,
			want: []slideResult{
				{layer: "One", page: 1},
				{layer: "Two", page: 2},
			},
			wantPages: 2,
		},
		{
			name:   "numbered title consumes the base page",
			layers: []string{"MASTER", "TITLE", "Intro"},
			cfg:    types.PlanConfig{SkipMarker: "copy", NumberTitle: true, PageBase: 1},
			want: []slideResult{
				{layer: "TITLE", page: 1},
				{layer: "Intro", page: 2},
			},
			wantPages: 2,
		},
		{
			name:   "custom page base",
			layers: []string{"MASTER", "TITLE", "Intro"},
			cfg:    types.PlanConfig{SkipMarker: "copy", PageBase: 5},
			want: []slideResult{
				{layer: "TITLE"},
				{layer: "Intro", page: 5},
			},
			wantPages: 5,
		},
		{
			name:   "empty skip marker disables stacking",
			layers: []string{"MASTER", "TITLE", "Intro copy", "Next"},
			cfg:    types.PlanConfig{SkipMarker: "", PageBase: 1},
			want: []slideResult{
				{layer: "TITLE"},
				{layer: "Intro copy", page: 1},
				{layer: "Next", page: 2},
			},
			wantPages: 2,
		},
		{
			// Backup slides live between END and STOP: they render and
			// keep numbering past the closing slide.
			name:   "backup slides between end and stop render",
			layers: []string{"MASTER", "TITLE", "Intro", "END", "Backup", "Backup 2", "STOP"},
			cfg:    defaults,
			want: []slideResult{
				{layer: "TITLE"},
				{layer: "Intro", page: 1},
				{layer: "END", page: 2},
				{layer: "Backup", page: 3},
				{layer: "Backup 2", page: 4},
			},
			wantPages: 4,
		},
		{
			name:   "stop before end wins",
			layers: []string{"MASTER", "TITLE", "Intro", "STOP", "More", "END"},
			cfg:    defaults,
			want: []slideResult{
				{layer: "TITLE"},
				{layer: "Intro", page: 1},
			},
			wantPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Resolve(catalogOf(tt.layers...), tt.cfg)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got := results(p); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("plan = %+v\nwant %+v", got, tt.want)
			}
			if p.Pages != tt.wantPages {
				t.Errorf("pages = %d, want %d", p.Pages, tt.wantPages)
			}
		})
	}
}

func TestResolveSkipOnFirstSlide(t *testing.T) {
	tests := []struct {
		name   string
		layers []string
	}{
		{
			name:   "first renderable layer is skip-marked",
			layers: []string{"MASTER", "Intro copy", "Next"},
		},
		{
			// The unnumbered title emits no page to stack onto.
			name:   "skip-marked layer right after unnumbered title",
			layers: []string{"MASTER", "TITLE", "Intro copy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(catalogOf(tt.layers...), types.DefaultPlanConfig())
			var skip *SkipOnFirstSlideError
			if !errors.As(err, &skip) {
				t.Fatalf("err = %v, want SkipOnFirstSlideError", err)
			}
		})
	}
}

func TestResolveVisibleSets(t *testing.T) {
	p, err := Resolve(
		catalogOf("MASTER", "TITLE", "NUMBER", "Intro", "END"),
		types.DefaultPlanConfig(),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Unnumbered title: own layer + MASTER only.
	title := p.Entries[0]
	if got := title.Visible; !reflect.DeepEqual(got, []string{"TITLE", "MASTER"}) {
		t.Errorf("title visible = %v", got)
	}

	// Numbered slide: own layer + MASTER + NUMBER.
	intro := p.Entries[1]
	if got := intro.Visible; !reflect.DeepEqual(got, []string{"Intro", "MASTER", "NUMBER"}) {
		t.Errorf("intro visible = %v", got)
	}
}

func TestResolvePagesNonDecreasing(t *testing.T) {
	p, err := Resolve(
		catalogOf("MASTER", "TITLE", "A", "A copy", "B", "B copy", "C", "END"),
		types.DefaultPlanConfig(),
	)
	if err != nil {
		t.Fatal(err)
	}

	last := 0
	for i, e := range p.Entries {
		if !e.Numbered() {
			continue
		}
		if e.Page < last {
			t.Fatalf("page decreased at entry %d: %d after %d", i, e.Page, last)
		}
		if !e.Skipped && e.Page == last {
			t.Fatalf("non-skipped entry %d reused page %d", i, e.Page)
		}
		if e.Skipped && e.Page != last {
			t.Fatalf("skipped entry %d did not reuse page: got %d, want %d", i, e.Page, last)
		}
		last = e.Page
	}
}

func TestResolveIdempotent(t *testing.T) {
	cat := catalogOf("MASTER", "TITLE", "Intro", "Intro copy", "END")
	cfg := types.DefaultPlanConfig()

	first, err := Resolve(cat, cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Resolve(cat, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("resolving the same catalog twice produced different plans")
	}
}
