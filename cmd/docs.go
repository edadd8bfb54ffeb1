package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// navOrder is the position of each command's page in the docs navigation
var navOrder = map[string]int{
	"oriscan":            0,
	"oriscan_records":    1,
	"oriscan_kmers":      2,
	"oriscan_clumps":     3,
	"oriscan_skew":       4,
	"oriscan_ori":        5,
	"oriscan_enrichment": 6,
}

// docsCmd writes Markdown documentation for every command.
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Generate Markdown documentation",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "docs"
		if len(args) > 0 {
			dir = args[0]
		}
		return makeDocs(dir)
	},
}

// makeDocs parses the commands and outputs Markdown documentation files to dir
func makeDocs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	RootCmd.DisableAutoGenTag = true
	if err := doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("failed to generate docs: %v", err)
	}
	return nil
}

// pageBase is the Markdown file name without its extension
func pageBase(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	base := pageBase(filename)
	if base == "oriscan" {
		return fmt.Sprintf(rootPage, base, navOrder[base])
	}

	order, ok := navOrder[base]
	if !ok {
		order = len(navOrder)
	}
	return fmt.Sprintf(childPage, strings.TrimPrefix(base, "oriscan_"), "oriscan", order)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := pageBase(filename)
	if base == "oriscan" {
		return "/"
	}
	return base
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
