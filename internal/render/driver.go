// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render drives the external single-page renderer and the page
// merge tool over a resolved slide plan.
package render

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/slidescape/internal/cache"
	"github.com/pdiddy/slidescape/internal/plan"
	"github.com/pdiddy/slidescape/internal/svgdoc"
)

// ErrSkipWithTotal reports that the number template references the total
// page count while the plan contains skip-marked slides. The total a
// stacked slide should display is ambiguous, so the run aborts before the
// first render instead of guessing.
var ErrSkipWithTotal = errors.New(
	"page number template uses the total count (NT), which is not supported together with skip-marked slides")

// RenderError reports a failed single-page render. The whole run aborts;
// no partial presentation is produced.
type RenderError struct {
	// Index is the zero-based plan position of the failed entry.
	Index int

	// Layer is the slide layer being rendered.
	Layer string

	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering slide %d (%s): %v", e.Index+1, e.Layer, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// MergeError reports a failed page concatenation after all pages rendered.
type MergeError struct {
	// Tool is the merge tool that failed.
	Tool string

	Err error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merging pages with %s: %v", e.Tool, e.Err)
}

func (e *MergeError) Unwrap() error { return e.Err }

// Driver executes a slide plan: for each entry it snapshots the document
// with exactly that entry's layers visible, renders the snapshot to a page
// file, and finally merges the pages into one presentation file.
//
// Execution is strictly sequential: every snapshot toggles visibility on
// the one shared in-memory document, so renders must not overlap.
type Driver struct {
	// Doc is the loaded source document.
	Doc *svgdoc.Document

	// Renderer produces one page file per snapshot.
	Renderer PageRenderer

	// Merger concatenates the page files.
	Merger Merger

	// WorkDir holds the per-page snapshots and page files. The driver does
	// not clean it up; housekeeping belongs to the caller.
	WorkDir string

	// Cache, when non-nil, skips renders whose snapshot is unchanged since
	// the previous run.
	Cache *cache.Store

	// Log receives human-oriented progress lines.
	Log io.Writer
}

// Result summarizes a completed run.
type Result struct {
	// Rendered counts pages produced by the external renderer.
	Rendered int

	// Cached counts pages reused from a previous run.
	Cached int

	// PageFiles lists the page files in plan order.
	PageFiles []string

	// Output is the merged presentation path.
	Output string
}

// Run executes the plan and writes the merged presentation to outPath.
// Any render failure aborts the run before the merge; a merge failure
// leaves no output file behind.
func (d *Driver) Run(ctx context.Context, p *plan.Plan, outPath string) (Result, error) {
	if len(p.Entries) == 0 {
		return Result{}, fmt.Errorf("plan contains no renderable slides")
	}

	policy := d.Doc.NumberPolicy()
	if policy == nil {
		fmt.Fprintln(d.Log, "warning: no slide number placeholder found; pages will not be stamped")
	} else if policy.UsesTotal() && p.HasSkipped() {
		return Result{}, ErrSkipWithTotal
	}

	if err := os.MkdirAll(d.WorkDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating work directory %s: %w", d.WorkDir, err)
	}

	var res Result
	manifest := Manifest{Source: d.Doc.Path(), Output: outPath}

	for i, e := range p.Entries {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		svgPath := filepath.Join(d.WorkDir, fmt.Sprintf("page-%02d.svg", i))
		pagePath := filepath.Join(d.WorkDir, fmt.Sprintf("page-%02d.pdf", i))

		if err := d.snapshot(e, policy, p.Pages, svgPath); err != nil {
			return res, &RenderError{Index: i, Layer: e.Layer, Err: err}
		}

		hash, err := hashFile(svgPath)
		if err != nil {
			return res, &RenderError{Index: i, Layer: e.Layer, Err: err}
		}

		if d.cached(ctx, i, hash, pagePath) {
			fmt.Fprintf(d.Log, "cached:   %s (page %s)\n", e.Layer, pageLabel(e))
			res.Cached++
		} else {
			fmt.Fprintf(d.Log, "rendering %s (page %s)\n", e.Layer, pageLabel(e))
			if err := d.Renderer.RenderPage(svgPath, pagePath); err != nil {
				return res, &RenderError{Index: i, Layer: e.Layer, Err: err}
			}
			res.Rendered++
			if d.Cache != nil {
				if err := d.Cache.Record(ctx, i, e.Layer, e.Page, hash); err != nil {
					fmt.Fprintf(d.Log, "warning: cache update failed: %v\n", err)
				}
			}
		}

		res.PageFiles = append(res.PageFiles, pagePath)
		manifest.Pages = append(manifest.Pages, ManifestEntry{
			Position: i,
			Layer:    e.Layer,
			Page:     e.Page,
			File:     filepath.Base(pagePath),
			Hash:     hash,
		})
	}

	if d.Cache != nil {
		if err := d.Cache.Prune(ctx, len(p.Entries)); err != nil {
			fmt.Fprintf(d.Log, "warning: cache prune failed: %v\n", err)
		}
	}

	fmt.Fprintf(d.Log, "merging %d pages with %s\n", len(res.PageFiles), d.Merger.Name())
	if err := d.Merger.Merge(res.PageFiles, outPath); err != nil {
		os.Remove(outPath)
		return res, &MergeError{Tool: d.Merger.Name(), Err: err}
	}
	res.Output = outPath

	if err := WriteManifest(filepath.Join(d.WorkDir, manifestFile), manifest); err != nil {
		fmt.Fprintf(d.Log, "warning: manifest write failed: %v\n", err)
	}

	return res, nil
}

// snapshot writes a single-slide SVG with exactly the entry's layers
// visible and the page number stamped. The prior visibility configuration
// and number text are restored on every exit path; the shared document
// leaves this method exactly as it entered it.
func (d *Driver) snapshot(e plan.Entry, policy *svgdoc.NumberPolicy, total int, svgPath string) error {
	restore := d.Doc.SetVisibleOnly(e.VisibleSet())
	defer restore()

	if e.Numbered() && policy != nil {
		unstamp := policy.Stamp(e.Page, total)
		defer unstamp()
	}
	return d.Doc.WriteVisible(svgPath)
}

// cached reports whether the page at position i can be reused: the cache
// knows the snapshot hash and the page file still exists.
func (d *Driver) cached(ctx context.Context, i int, hash, pagePath string) bool {
	if d.Cache == nil {
		return false
	}
	fresh, err := d.Cache.Fresh(ctx, i, hash)
	if err != nil || !fresh {
		return false
	}
	_, err = os.Stat(pagePath)
	return err == nil
}

func pageLabel(e plan.Entry) string {
	if !e.Numbered() {
		return "-"
	}
	return fmt.Sprintf("%02d", e.Page)
}

// hashFile returns the hex SHA-256 of the file contents.
func hashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
