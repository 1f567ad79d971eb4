// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "fmt"

const (
	binPdftk       = "pdftk"
	binPdfunite    = "pdfunite"
	binGhostscript = "gs"
)

// Merger concatenates an ordered list of page files into one output file.
type Merger interface {
	// Name returns the merge tool name ("pdftk", "pdfunite", or "gs").
	Name() string

	// Merge writes the concatenation of pageFiles, in order, to outPath.
	Merge(pageFiles []string, outPath string) error
}

// toolMerger implements Merger for a specific binary. The tools share the
// same logic and differ only in how the argument list is assembled.
type toolMerger struct {
	bin  string
	args func(files []string, out string) []string
	exec executor
}

func (m *toolMerger) Name() string { return m.bin }

func (m *toolMerger) available() bool {
	_, err := m.exec.LookPath(m.bin)
	return err == nil
}

func (m *toolMerger) Merge(pageFiles []string, outPath string) error {
	if len(pageFiles) == 0 {
		return fmt.Errorf("no page files to merge")
	}
	return m.exec.Run(m.bin, m.args(pageFiles, outPath)...)
}

func newPdftkMerger(exec executor) *toolMerger {
	return &toolMerger{
		bin: binPdftk,
		args: func(files []string, out string) []string {
			return append(append([]string{}, files...), "cat", "output", out)
		},
		exec: exec,
	}
}

func newPdfuniteMerger(exec executor) *toolMerger {
	return &toolMerger{
		bin: binPdfunite,
		args: func(files []string, out string) []string {
			return append(append([]string{}, files...), out)
		},
		exec: exec,
	}
}

func newGhostscriptMerger(exec executor) *toolMerger {
	return &toolMerger{
		bin: binGhostscript,
		args: func(files []string, out string) []string {
			return append([]string{
				"-dBATCH", "-dNOPAUSE", "-q",
				"-sDEVICE=pdfwrite", "-sOutputFile=" + out,
			}, files...)
		},
		exec: exec,
	}
}

// DetectMerger tries pdftk first, then pdfunite, then ghostscript.
// It returns an error if none of them is available.
func DetectMerger() (Merger, error) {
	return detectMerger(defaultExec)
}

func detectMerger(exec executor) (Merger, error) {
	for _, m := range []*toolMerger{
		newPdftkMerger(exec),
		newPdfuniteMerger(exec),
		newGhostscriptMerger(exec),
	} {
		if m.available() {
			return m, nil
		}
	}
	return nil, fmt.Errorf(
		"no merge tool available: none of %s, %s, %s found on PATH",
		binPdftk, binPdfunite, binGhostscript,
	)
}

// MergerFor returns the merger for an explicit tool name, or detects one
// when tool is "auto" or empty.
func MergerFor(tool string) (Merger, error) {
	return mergerFor(tool, defaultExec)
}

func mergerFor(tool string, exec executor) (Merger, error) {
	switch tool {
	case "", "auto":
		return detectMerger(exec)
	case binPdftk:
		return newPdftkMerger(exec), nil
	case binPdfunite:
		return newPdfuniteMerger(exec), nil
	case binGhostscript:
		return newGhostscriptMerger(exec), nil
	default:
		return nil, fmt.Errorf("unsupported merge tool %q: use pdftk, pdfunite, gs, or auto", tool)
	}
}
