// Package output serializes command results to stdout. Structured records go
// to stdout in the selected format; warnings go to stderr so they never
// corrupt the machine-readable surface.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// OutputFormat is the current output format, set by the root command's
// --format flag.
var OutputFormat = FormatJSON

// PrettyOutput enables indented JSON output.
var PrettyOutput bool

// ErrorResult is the structured record emitted on fatal error paths.
type ErrorResult struct {
	Success bool   `yaml:"success" json:"success"`
	Error   string `yaml:"error"   json:"error"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as JSON, single-line unless PrettyOutput
// is set.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if PrettyOutput {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// PrintError emits a structured error record.
func PrintError(msg string) error {
	return Print(ErrorResult{Success: false, Error: msg})
}

// Statusf prints a human-readable status line to stdout.
func Statusf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// Warnf prints a non-fatal warning to stderr. Warnings never change the
// process exit code.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
