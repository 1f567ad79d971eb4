// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package svgdoc

import (
	"errors"
	"testing"

	"github.com/pdiddy/slidescape/pkg/types"
)

func TestCatalog(t *testing.T) {
	path := writeSVG(t,
		layerSpec{name: "MASTER"},
		layerSpec{name: "TITLE"},
		numberLayer("Slide NS"),
		layerSpec{name: "Intro"},
		layerSpec{name: "END"},
		layerSpec{name: "STOP"},
	)

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	cat, err := doc.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}

	wantRoles := []types.Role{
		types.RoleMaster, types.RoleTitle, types.RoleNumber,
		types.RoleRegular, types.RoleEnd, types.RoleStop,
	}
	if cat.Len() != len(wantRoles) {
		t.Fatalf("catalog has %d layers, want %d", cat.Len(), len(wantRoles))
	}
	for i, want := range wantRoles {
		if cat.Layers[i].Role != want {
			t.Errorf("layer %d role = %q, want %q", i, cat.Layers[i].Role, want)
		}
		if cat.Layers[i].Index != i {
			t.Errorf("layer %d index = %d", i, cat.Layers[i].Index)
		}
	}
}

func TestCatalogMissingMaster(t *testing.T) {
	path := writeSVG(t,
		layerSpec{name: "TITLE"},
		layerSpec{name: "Intro"},
	)

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	_, err = doc.Catalog()
	var missing *MissingLayerError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingLayerError", err)
	}
	if missing.Name != types.NameMaster {
		t.Errorf("missing layer = %q, want MASTER", missing.Name)
	}
}

func TestCatalogDuplicateMaster(t *testing.T) {
	path := writeSVG(t,
		layerSpec{name: "MASTER"},
		layerSpec{name: "Intro"},
		layerSpec{name: "MASTER"},
	)

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	_, err = doc.Catalog()
	var dup *DuplicateLayerError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicateLayerError", err)
	}
	if dup.Name != types.NameMaster {
		t.Errorf("duplicate layer = %q, want MASTER", dup.Name)
	}
}

func TestCatalogDuplicateRegularTolerated(t *testing.T) {
	path := writeSVG(t,
		layerSpec{name: "MASTER"},
		layerSpec{name: "Recap"},
		layerSpec{name: "Recap"},
	)

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := doc.Catalog(); err != nil {
		t.Fatalf("duplicate regular names should be tolerated: %v", err)
	}
}

func TestCatalogUnnamedLayer(t *testing.T) {
	path := writeSVG(t,
		layerSpec{name: "MASTER"},
		layerSpec{}, // layer without a label
	)

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	_, err = doc.Catalog()
	var unnamed *UnnamedLayerError
	if !errors.As(err, &unnamed) {
		t.Fatalf("err = %v, want UnnamedLayerError", err)
	}
	if unnamed.Index != 1 {
		t.Errorf("unnamed index = %d, want 1", unnamed.Index)
	}
}
