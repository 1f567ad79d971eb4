// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidescape/internal/plan"
	"github.com/pdiddy/slidescape/internal/svgdoc"
)

var planCmd = &cobra.Command{
	Use:   "plan [document.svg]",
	Short: "Resolve and print the slide plan without rendering",
	Long: `Plan resolves the document's layers into the slide sequence that build
would render: one row per slide with its page number and the layers shown
together. Nothing is rendered and the document is not modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	doc, err := svgdoc.Load(args[0])
	if err != nil {
		return err
	}

	cat, err := doc.Catalog()
	if err != nil {
		return err
	}

	p, err := plan.Resolve(cat, planConfigFromFlags(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	switch {
	case jsonOutput && yamlOutput:
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	case jsonOutput:
		return plan.FormatJSON(p, os.Stdout)
	case yamlOutput:
		return plan.FormatYAML(p, os.Stdout)
	default:
		plan.FormatTable(p, os.Stdout)
		return nil
	}
}

func init() {
	addPlanFlags(planCmd)
	planCmd.Flags().Bool("json", false, "output the plan as JSON")
	planCmd.Flags().Bool("yaml", false, "output the plan as YAML")

	rootCmd.AddCommand(planCmd)
}
