// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the slidescape CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the slidescape CLI.
var rootCmd = &cobra.Command{
	Use:   "slidescape",
	Short: "Turn a layered Inkscape SVG into a numbered PDF presentation",
	Long: `slidescape splits a presentation authored as layers of a single SVG
document into per-slide pages, stamps page numbers, and merges the pages
into one PDF.

Layers named MASTER, TITLE, END, STOP, and NUMBER have reserved meanings;
every other layer is one slide. MASTER is composited into every slide,
NUMBER holds the page number placeholder, and STOP marks where processing
ends. A layer whose name contains the skip marker (default "copy") reuses
the previous page number, stacking onto the prior slide.

Rendering uses the Inkscape CLI; merging uses pdftk, pdfunite, or
ghostscript, whichever is available.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidescape.yaml or ~/.config/slidescape/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidescape")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slidescape"))
		}
	}

	viper.SetEnvPrefix("SLIDESCAPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
