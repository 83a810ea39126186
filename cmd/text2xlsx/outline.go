// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/text2xlsx/internal/convert"
	"github.com/pdiddy/text2xlsx/internal/outline"
	"github.com/pdiddy/text2xlsx/internal/output"
	"github.com/pdiddy/text2xlsx/internal/shell"
)

var outlineCmd = &cobra.Command{
	Use:   "outline [file|-]",
	Short: "Print the parsed section tree without writing a spreadsheet",
	Long: `Outline parses the input exactly as convert does and prints the resulting
tree, so the structure can be checked before saving. Use --format json or
yaml for machine-readable output and --query to filter it with a jq
expression, for example: --query '.sections[].title'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().String("format", "text", "output format: text, json, or yaml")
	outlineCmd.Flags().String("query", "", "jq expression applied to the JSON form")
	outlineCmd.Flags().Bool("stats", false, "print node and row counts instead of the tree")

	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	src := "-"
	if len(args) == 1 {
		src = args[0]
	}
	text, err := shell.FileInput{Path: src, Stdin: cmd.InOrStdin()}.InputText(cmd.Context())
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return convert.ErrEmptyInput
	}

	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	query, _ := cmd.Flags().GetString("query")
	printer := output.NewPrinter(cmd.OutOrStdout(), format, query)

	doc := outline.Parse(text)
	if doc.IsEmpty() {
		fmt.Fprintln(cmd.ErrOrStderr(), `note: no "### " sections found; convert would write an empty sheet`)
	}
	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		return printer.Print(output.Stats(doc.Stats()))
	}
	return printer.Print(output.Outline(doc))
}
