package types

// PlanConfig holds settings for the slide plan resolver.
type PlanConfig struct {
	// SkipMarker is a substring that suppresses the page increment: a layer
	// whose name contains it reuses the previous page number (default "copy",
	// case-sensitive, matched anywhere in the name).
	SkipMarker string `json:"skip_marker" yaml:"skip_marker"`

	// NumberTitle controls whether the TITLE slide consumes a page number
	// and shows the NUMBER layer (default false: title slides are
	// conventionally unnumbered).
	NumberTitle bool `json:"number_title" yaml:"number_title"`

	// PageBase is the page number assigned to the first numbered slide
	// (default 1).
	PageBase int `json:"page_base" yaml:"page_base"`
}

// DefaultPlanConfig returns the plan settings used when nothing is configured.
func DefaultPlanConfig() PlanConfig {
	return PlanConfig{
		SkipMarker: "copy",
		PageBase:   1,
	}
}

// RenderConfig holds settings for the single-page rendering step.
type RenderConfig struct {
	// InkscapeBin is the renderer binary name or path (default "inkscape").
	InkscapeBin string `json:"inkscape_bin" yaml:"inkscape_bin"`

	// WorkDir is the directory for per-page SVG snapshots and PDFs.
	WorkDir string `json:"work_dir" yaml:"work_dir"`

	// Incremental enables the render cache: pages whose snapshot is
	// unchanged since the last run skip the external renderer.
	Incremental bool `json:"incremental" yaml:"incremental"`

	// KeepPages leaves the per-page files in WorkDir after a successful
	// merge instead of deleting them.
	KeepPages bool `json:"keep_pages" yaml:"keep_pages"`
}

// MergeConfig holds settings for the page-merge step.
type MergeConfig struct {
	// Tool selects the merge backend: auto, pdftk, pdfunite, or gs.
	// With auto, the first available tool is used, in that order.
	Tool string `json:"tool" yaml:"tool"`

	// OutputPath is where the merged presentation is written. Empty means
	// the input path with its extension replaced by .pdf.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// BuildConfig groups all stage configurations for one build run.
type BuildConfig struct {
	Plan   PlanConfig   `json:"plan" yaml:"plan"`
	Render RenderConfig `json:"render" yaml:"render"`
	Merge  MergeConfig  `json:"merge" yaml:"merge"`
}
