// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders command results as text, JSON, or YAML, with an
// optional jq expression applied to the JSON form.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/itchyny/gojq"
	"go.yaml.in/yaml/v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the human-readable form (default).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a flag value to a Format. Empty selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --format (expected text|json|yaml)")
	}
}

// Texter is implemented by values with a human-readable rendering.
type Texter interface {
	WriteText(w io.Writer) error
}

// Printer writes values in one format.
type Printer struct {
	w      io.Writer
	format Format
	query  string
}

// NewPrinter creates a Printer. A non-empty query is a jq expression run
// against the JSON form of each printed value; its results are printed as
// JSON regardless of format.
func NewPrinter(w io.Writer, format Format, query string) *Printer {
	return &Printer{w: w, format: format, query: strings.TrimSpace(query)}
}

// Print outputs data in the configured format.
func (p *Printer) Print(data any) error {
	if p.query != "" {
		return p.printQuery(data)
	}
	switch p.format {
	case FormatJSON:
		return p.printJSON(data)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case FormatText:
		if t, ok := data.(Texter); ok {
			return t.WriteText(p.w)
		}
		_, err := fmt.Fprintln(p.w, data)
		return err
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

func (p *Printer) printJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// printQuery runs the jq query over data. gojq only accepts plain JSON
// values, so data goes through a JSON round trip first.
func (p *Printer) printQuery(data any) error {
	parsed, err := gojq.Parse(p.query)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	var input any
	if err := json.Unmarshal(raw, &input); err != nil {
		return fmt.Errorf("decoding JSON: %w", err)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("query error: %w", err)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
