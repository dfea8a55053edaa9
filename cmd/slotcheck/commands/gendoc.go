package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/paths"
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate Markdown or man page documentation for the CLI",
	Hidden: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		outputDir, _ := cmd.Flags().GetString("dir")
		man, _ := cmd.Flags().GetBool("man")
		return runGenDoc(cmd.OutOrStdout(), rootCmd, outputDir, man)
	},
}

func init() {
	genDocCmd.Flags().StringP("dir", "d", "", "output directory for documentation")
	genDocCmd.Flags().Bool("man", false, "generate man pages instead of Markdown")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(w io.Writer, root *cobra.Command, outputDir string, man bool) error {
	if outputDir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "Pass --dir")
	}
	if err := paths.EnsureDir(outputDir, 0o755); err != nil {
		return errors.NewSystemError(err, "")
	}

	if man {
		header := &doc.GenManHeader{Title: "SLOTCHECK", Section: "1"}
		if err := doc.GenManTree(root, header, outputDir); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "generating man pages"), "")
		}
	} else {
		// Front matter lets the pages drop into a static docs site.
		if err := doc.GenMarkdownTreeCustom(root, outputDir, filePrepender, linkHandler); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "generating markdown"), "")
		}
	}

	fmt.Fprintf(w, "Documentation generated in %s\n", outputDir)
	return nil
}

func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	// slotcheck_sets_export.md -> slotcheck sets export
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s command"
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
