package types

// Default values applied when configuration leaves a field unset.
const (
	DefaultSheetName          = "Outline"
	DefaultSectionFontSize    = 14
	DefaultSubSectionFontSize = 12
	DefaultOutDir             = "."
	DefaultHistoryPath        = ".text2xlsx/history.db"
)

// SheetConfig holds the worksheet layout settings.
type SheetConfig struct {
	// Name is the worksheet name (max 31 characters, no []:*?/\).
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// SectionFontSize is the point size of section title rows (default 14).
	SectionFontSize float64 `json:"section_font_size" yaml:"section_font_size" mapstructure:"section_font_size"`

	// SubSectionFontSize is the point size of subsection title rows (default 12).
	SubSectionFontSize float64 `json:"subsection_font_size" yaml:"subsection_font_size" mapstructure:"subsection_font_size"`
}

// WithDefaults returns a copy of c with zero fields replaced by defaults.
func (c SheetConfig) WithDefaults() SheetConfig {
	if c.Name == "" {
		c.Name = DefaultSheetName
	}
	if c.SectionFontSize <= 0 {
		c.SectionFontSize = DefaultSectionFontSize
	}
	if c.SubSectionFontSize <= 0 {
		c.SubSectionFontSize = DefaultSubSectionFontSize
	}
	return c
}

// ConversionConfig holds settings for the convert command.
type ConversionConfig struct {
	Sheet SheetConfig `json:"sheet" yaml:"sheet" mapstructure:"sheet"`

	// OutDir is the directory used for relative save paths and batch output.
	OutDir string `json:"out_dir" yaml:"out_dir" mapstructure:"out_dir"`

	// OpenDir opens the output directory in the file browser after saving.
	OpenDir bool `json:"open_dir" yaml:"open_dir" mapstructure:"open_dir"`
}

// HistoryConfig holds settings for the optional conversion journal.
type HistoryConfig struct {
	// Enabled turns on recording of conversion attempts.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Path is the SQLite database file (default .text2xlsx/history.db).
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// Config groups all settings read from the config file and environment.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
	History    HistoryConfig    `json:"history" yaml:"history" mapstructure:"history"`
}
