// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/text2xlsx/internal/history"
	"github.com/pdiddy/text2xlsx/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversions from the history database",
	Long: `History shows the most recent conversion attempts, newest first.
Recording is off by default; enable it with history.enabled: true in the
config file, TEXT2XLSX_HISTORY_ENABLED=true, or convert --history.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries")
	historyCmd.Flags().String("format", "text", "output format: text, json, or yaml")
	historyCmd.Flags().String("query", "", "jq expression applied to the JSON form")
	historyCmd.Flags().String("db", "", "history database path (default from history.path)")

	viper.BindPFlag(keyHistoryPath, historyCmd.Flags().Lookup("db"))

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	query, _ := cmd.Flags().GetString("query")
	printer := output.NewPrinter(cmd.OutOrStdout(), format, query)

	if !cfg.History.Enabled {
		fmt.Fprintln(os.Stderr, "note: history recording is disabled (set history.enabled: true)")
	}
	if _, err := os.Stat(cfg.History.Path); os.IsNotExist(err) {
		return printer.Print(output.History(nil))
	}

	store, err := history.Open(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	return printer.Print(output.History(records))
}
