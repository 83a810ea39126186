// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

// Config keys, shared by defaults, flag bindings, and the config file.
const (
	keySheetName          = "conversion.sheet.name"
	keySectionFontSize    = "conversion.sheet.section_font_size"
	keySubSectionFontSize = "conversion.sheet.subsection_font_size"
	keyOutDir             = "conversion.out_dir"
	keyOpenDir            = "conversion.open_dir"
	keyHistoryEnabled     = "history.enabled"
	keyHistoryPath        = "history.path"
)

func setDefaults() {
	viper.SetDefault(keySheetName, types.DefaultSheetName)
	viper.SetDefault(keySectionFontSize, types.DefaultSectionFontSize)
	viper.SetDefault(keySubSectionFontSize, types.DefaultSubSectionFontSize)
	viper.SetDefault(keyOutDir, types.DefaultOutDir)
	viper.SetDefault(keyOpenDir, false)
	viper.SetDefault(keyHistoryEnabled, false)
	viper.SetDefault(keyHistoryPath, types.DefaultHistoryPath)
}

// loadConfig decodes the merged defaults, config file, environment, and
// bound flags.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Conversion.Sheet = cfg.Conversion.Sheet.WithDefaults()
	if cfg.Conversion.OutDir == "" {
		cfg.Conversion.OutDir = types.DefaultOutDir
	}
	if cfg.History.Path == "" {
		cfg.History.Path = types.DefaultHistoryPath
	}
	return cfg, nil
}
