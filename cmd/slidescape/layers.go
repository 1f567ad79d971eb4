package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidescape/internal/svgdoc"
)

var layersCmd = &cobra.Command{
	Use:   "layers [document.svg]",
	Short: "List the document's layers with their roles",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayers,
}

func runLayers(cmd *cobra.Command, args []string) error {
	doc, err := svgdoc.Load(args[0])
	if err != nil {
		return err
	}

	cat, err := doc.Catalog()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-30s  %-8s  %s\n", "Pos", "Layer", "Role", "Shown")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 56))

	layers := doc.Layers()
	for _, info := range cat.Layers {
		shown := "no"
		if layers[info.Index].Visible() {
			shown = "yes"
		}
		name := info.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-30s  %-8s  %s\n", info.Index, name, info.Role, shown)
	}

	fmt.Fprintf(os.Stdout, "\n%d layers\n", cat.Len())
	return nil
}

func init() {
	rootCmd.AddCommand(layersCmd)
}
