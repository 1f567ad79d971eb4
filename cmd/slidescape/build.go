// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidescape/internal/cache"
	"github.com/pdiddy/slidescape/internal/plan"
	"github.com/pdiddy/slidescape/internal/render"
	"github.com/pdiddy/slidescape/internal/svgdoc"
	"github.com/pdiddy/slidescape/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build [document.svg]",
	Short: "Render a layered SVG into a merged PDF presentation",
	Long: `Build resolves the document's layers into a slide plan, renders each
slide to a page PDF with Inkscape, and merges the pages into a single
presentation PDF. The output defaults to the input path with a .pdf
extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	input := args[0]
	cfg := buildConfigFromFlags(cmd)

	doc, err := svgdoc.Load(input)
	if err != nil {
		return err
	}

	cat, err := doc.Catalog()
	if err != nil {
		return err
	}

	p, err := plan.Resolve(cat, cfg.Plan)
	if err != nil {
		return err
	}

	renderer, err := render.NewInkscapeRenderer(cfg.Render.InkscapeBin)
	if err != nil {
		return err
	}

	merger, err := render.MergerFor(cfg.Merge.Tool)
	if err != nil {
		return err
	}

	workDir := cfg.Render.WorkDir
	if workDir == "" {
		workDir = filepath.Join(os.TempDir(), "slidescape")
	}
	if !cfg.Render.Incremental {
		// Start from a clean slate so stale pages never reach the merge.
		// Only our own files go; --work-dir may point at a directory the
		// caller keeps other things in.
		if err := clearPages(workDir); err != nil {
			return fmt.Errorf("clearing work directory %s: %w", workDir, err)
		}
	}

	output := cfg.Merge.OutputPath
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
	}

	driver := &render.Driver{
		Doc:      doc,
		Renderer: renderer,
		Merger:   merger,
		WorkDir:  workDir,
		Log:      os.Stdout,
	}

	if cfg.Render.Incremental {
		store, err := cache.Open(workDir)
		if err != nil {
			return err
		}
		defer store.Close()
		driver.Cache = store
	}

	res, err := driver.Run(cmd.Context(), p, output)
	if err != nil {
		return err
	}

	if !cfg.Render.KeepPages && !cfg.Render.Incremental {
		if err := clearPages(workDir); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not clear work directory %s: %v\n", workDir, err)
		}
		// Drops the directory only when nothing else lives in it.
		os.Remove(workDir)
	}

	fmt.Printf("\nWrote %s (%d slides, %d pages", res.Output, len(res.PageFiles), p.Pages)
	if res.Cached > 0 {
		fmt.Printf(", %d from cache", res.Cached)
	}
	fmt.Println(")")
	return nil
}

// clearPages removes the generated per-page files and manifest from the
// work directory, leaving unrelated contents alone.
func clearPages(workDir string) error {
	for _, pattern := range []string{"page-*.svg", "page-*.pdf", "manifest.yaml"} {
		matches, err := filepath.Glob(filepath.Join(workDir, pattern))
		if err != nil {
			return err
		}
		for _, m := range matches {
			if err := os.Remove(m); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildConfigFromFlags assembles the build configuration, letting changed
// flags override config file values.
func buildConfigFromFlags(cmd *cobra.Command) types.BuildConfig {
	return types.BuildConfig{
		Plan:   planConfigFromFlags(cmd),
		Render: types.RenderConfig{
			InkscapeBin: stringSetting(cmd, "inkscape", "render.inkscape_bin"),
			WorkDir:     stringSetting(cmd, "work-dir", "render.work_dir"),
			Incremental: boolSetting(cmd, "incremental", "render.incremental"),
			KeepPages:   boolSetting(cmd, "keep-pages", "render.keep_pages"),
		},
		Merge: types.MergeConfig{
			Tool:       stringSetting(cmd, "merger", "merge.tool"),
			OutputPath: stringSetting(cmd, "output", "merge.output_path"),
		},
	}
}

// planConfigFromFlags assembles the plan settings shared by build and plan.
func planConfigFromFlags(cmd *cobra.Command) types.PlanConfig {
	return types.PlanConfig{
		SkipMarker:  stringSetting(cmd, "skip-marker", "plan.skip_marker"),
		NumberTitle: boolSetting(cmd, "number-title", "plan.number_title"),
		PageBase:    intSetting(cmd, "page-base", "plan.page_base"),
	}
}

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	return viper.GetBool(key)
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	return viper.GetInt(key)
}

// addPlanFlags registers the resolver flags shared by build and plan.
func addPlanFlags(cmd *cobra.Command) {
	defaults := types.DefaultPlanConfig()
	cmd.Flags().String("skip-marker", defaults.SkipMarker, "substring that makes a layer reuse the previous page number")
	cmd.Flags().Bool("number-title", defaults.NumberTitle, "give the TITLE slide a page number")
	cmd.Flags().Int("page-base", defaults.PageBase, "page number of the first numbered slide")
}

func init() {
	addPlanFlags(buildCmd)
	buildCmd.Flags().StringP("output", "o", "", "output PDF path (default: input with .pdf extension)")
	buildCmd.Flags().String("work-dir", "", "directory for per-page files (default: $TMPDIR/slidescape, cleared unless --incremental)")
	buildCmd.Flags().String("merger", "auto", "merge tool: auto, pdftk, pdfunite, or gs")
	buildCmd.Flags().String("inkscape", "", "inkscape binary name or path")
	buildCmd.Flags().Bool("incremental", false, "reuse pages whose slide content is unchanged since the last run")
	buildCmd.Flags().Bool("keep-pages", false, "keep per-page files after a successful merge")

	rootCmd.AddCommand(buildCmd)
}
