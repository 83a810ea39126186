// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/text2xlsx/internal/convert"
	"github.com/pdiddy/text2xlsx/internal/history"
	"github.com/pdiddy/text2xlsx/internal/reveal"
	"github.com/pdiddy/text2xlsx/internal/shell"
	"github.com/pdiddy/text2xlsx/internal/tui"
	"github.com/pdiddy/text2xlsx/pkg/types"
)

const defaultSaveName = "outline.xlsx"

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert heading-delimited text into an .xlsx outline",
	Long: `Convert parses the text into sections, subsections, and content blocks
and writes them as rows of a single worksheet. Section titles are bold at the
larger size, subsection titles bold at the smaller size, and each content
block fills one cell.

Without arguments in a terminal an editor opens for the text, followed by a
prompt for the save path. With a file argument (or - for stdin) the output
defaults to <name>.xlsx in the output directory; -o overrides it and is
required when reading stdin. --ask prompts for the path on the terminal
instead, offering the default name.

With --batch every argument is converted in turn into --out-dir. Existing
outputs are skipped unless --force is given.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "destination .xlsx path (relative paths go under --out-dir)")
	convertCmd.Flags().String("out-dir", types.DefaultOutDir, "directory for relative save paths and batch output")
	convertCmd.Flags().String("sheet-name", types.DefaultSheetName, "worksheet name")
	convertCmd.Flags().Bool("open", false, "open the output directory after saving")
	convertCmd.Flags().Bool("history", false, "record the conversion in the history database")
	convertCmd.Flags().Bool("batch", false, "convert every file argument into --out-dir")
	convertCmd.Flags().Bool("force", false, "overwrite existing outputs in batch mode")
	convertCmd.Flags().Bool("no-progress", false, "do not draw the progress bar")
	convertCmd.Flags().Bool("ask", false, "prompt for the save path on the terminal, offering the default name")

	viper.BindPFlag(keyOutDir, convertCmd.Flags().Lookup("out-dir"))
	viper.BindPFlag(keySheetName, convertCmd.Flags().Lookup("sheet-name"))
	viper.BindPFlag(keyOpenDir, convertCmd.Flags().Lookup("open"))
	viper.BindPFlag(keyHistoryEnabled, convertCmd.Flags().Lookup("history"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	recorder, closeRecorder, err := openRecorder(cfg.History)
	if err != nil {
		return err
	}
	defer closeRecorder()

	opts := convert.Options{Sheet: cfg.Conversion.Sheet}

	if batch, _ := cmd.Flags().GetBool("batch"); batch {
		return runBatch(cmd, args, cfg, opts, recorder)
	}
	if len(args) > 1 {
		return fmt.Errorf("convert takes at most one input; use --batch for several files")
	}

	output, _ := cmd.Flags().GetString("output")
	outDir := cfg.Conversion.OutDir
	session := convert.Session{Recorder: recorder, Log: os.Stderr}

	if len(args) == 0 && shell.IsTerminal(os.Stdin) {
		prompt := tui.Prompt{Dir: outDir, DefaultName: defaultSaveName}
		session.Source = "tui"
		session.Input = prompt
		session.Path = prompt
		if output != "" {
			session.Path = shell.StaticPath{Path: output, Dir: outDir}
		}
	} else {
		src := "-"
		if len(args) == 1 {
			src = args[0]
		}
		if output == "" && src != "-" {
			output = filepath.Base(convert.OutputPath(src, ""))
		}
		session.Source = src
		session.Input = shell.FileInput{Path: src, Stdin: cmd.InOrStdin()}
		session.Path = shell.StaticPath{Path: output, Dir: outDir}
		if ask, _ := cmd.Flags().GetBool("ask"); ask && src != "-" {
			session.Path = shell.LinePrompt{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr(), Dir: outDir, Default: output}
		}
	}

	if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress && shell.IsTerminal(os.Stderr) {
		opts.Progress = shell.Bar{W: os.Stderr}
	}
	session.Options = opts

	if cfg.Conversion.OpenDir {
		opener, err := reveal.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		} else {
			session.Reveal = opener
		}
	}

	_, err = convert.Run(cmd.Context(), session)
	return err
}

func runBatch(cmd *cobra.Command, args []string, cfg types.Config, opts convert.Options, recorder convert.Recorder) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more text files to convert")
	}
	force, _ := cmd.Flags().GetBool("force")

	result := convert.ConvertBatch(cmd.Context(), args, convert.BatchConfig{
		OutDir:    cfg.Conversion.OutDir,
		Overwrite: force,
		Options:   opts,
		Recorder:  recorder,
	}, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

// openRecorder opens the history store when recording is enabled. The
// returned close function is always safe to call.
func openRecorder(cfg types.HistoryConfig) (convert.Recorder, func(), error) {
	if !cfg.Enabled {
		return nil, func() {}, nil
	}
	store, err := history.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}
