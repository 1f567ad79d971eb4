// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"reflect"
	"testing"
)

func TestNewInkscapeRenderer(t *testing.T) {
	exec := &fakeExecutor{available: map[string]bool{"inkscape": true}}

	r, err := newInkscapeRenderer("", exec)
	if err != nil {
		t.Fatalf("newInkscapeRenderer: %v", err)
	}
	if r.bin != "inkscape" {
		t.Errorf("bin = %q, want inkscape", r.bin)
	}
}

func TestNewInkscapeRendererMissingBinary(t *testing.T) {
	exec := &fakeExecutor{available: map[string]bool{}}

	if _, err := newInkscapeRenderer("", exec); err == nil {
		t.Fatal("expected error when inkscape is not on PATH")
	}
}

func TestRenderPage(t *testing.T) {
	exec := &fakeExecutor{available: map[string]bool{"inkscape": true}}
	r, err := newInkscapeRenderer("inkscape", exec)
	if err != nil {
		t.Fatal(err)
	}

	if err := r.RenderPage("slide.svg", "slide.pdf"); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	want := [][]string{{"inkscape", "--export-filename=slide.pdf", "slide.svg"}}
	if !reflect.DeepEqual(exec.calls, want) {
		t.Errorf("calls = %v, want %v", exec.calls, want)
	}
}
