// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// FormatTable writes the plan as a human-readable table to w.
func FormatTable(p *Plan, w io.Writer) {
	if len(p.Entries) == 0 {
		fmt.Fprintln(w, "No renderable slides.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-8s  %-6s  %s\n",
		"Pos", "Layer", "Role", "Page", "Visible")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for i, e := range p.Entries {
		name := e.Layer
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		page := "-"
		if e.Numbered() {
			page = fmt.Sprintf("%d", e.Page)
			if e.Skipped {
				page += "*"
			}
		}
		fmt.Fprintf(w, "%-4d  %-30s  %-8s  %-6s  %s\n",
			i+1, name, e.Role, page, strings.Join(e.Visible, ", "))
	}

	fmt.Fprintf(w, "\n%d slides, %d pages", len(p.Entries), p.Pages)
	if p.HasSkipped() {
		fmt.Fprint(w, " (* reuses the previous page number)")
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the plan as indented JSON to w.
func FormatJSON(p *Plan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// FormatYAML writes the plan as YAML to w.
func FormatYAML(p *Plan, w io.Writer) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	_, err = w.Write(data)
	return err
}
