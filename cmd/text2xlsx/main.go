// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the text2xlsx CLI.
//
// text2xlsx turns heading-delimited plain text ("### " sections, "#### "
// subsections, "- " and "1. " list items) into a single-sheet Excel outline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/text2xlsx/internal/envfile"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the text2xlsx CLI.
var rootCmd = &cobra.Command{
	Use:   "text2xlsx",
	Short: "Convert heading-delimited text into an Excel outline",
	Long: `text2xlsx converts loosely structured text into a spreadsheet with a
visual hierarchy. Lines starting with "### " open a section, "#### " opens a
subsection, and "- " or "1. " start a new content block. Sections and
subsections become bold title rows; each content block becomes one cell.

Run "text2xlsx convert" without arguments in a terminal to paste the text
into an editor, or pass a file (or - for stdin).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envPath, _ := cmd.Flags().GetString("env-file")
		applied, err := envfile.Load(envPath)
		if err != nil {
			return err
		}
		if len(applied) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded environment: %v\n", applied)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./text2xlsx.yaml or ~/.config/text2xlsx/text2xlsx.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file with TEXT2XLSX_* settings")
}

func initConfig() {
	setDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("text2xlsx")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "text2xlsx"))
		}
	}

	viper.SetEnvPrefix("TEXT2XLSX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
