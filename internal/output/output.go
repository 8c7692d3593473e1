package output

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/window-getter/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a --format value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, "":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
}

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Stdout is where Print writes. Tests may swap it.
var Stdout io.Writer = os.Stdout

// ListResult is the top-level output of the `list` command.
type ListResult struct {
	TS            int64          `yaml:"ts"              json:"ts"`
	ScreenCapture bool           `yaml:"screen_capture"  json:"screen_capture"`
	Count         int            `yaml:"count"           json:"count"`
	Stale         int            `yaml:"stale,omitempty" json:"stale,omitempty"`
	Windows       []model.Window `yaml:"windows"         json:"windows"`
}

// PermissionResult is the output of the `permission` command.
type PermissionResult struct {
	ScreenCapture bool `yaml:"screen_capture"      json:"screen_capture"`
	Requested     bool `yaml:"requested,omitempty" json:"requested,omitempty"`
}

// Print serializes v to Stdout in the current output format.
func Print(v interface{}) error {
	return Write(Stdout, OutputFormat, PrettyOutput, v)
}

// Write serializes v to w in format f.
func Write(w io.Writer, f Format, pretty bool, v interface{}) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, v, pretty)
	case FormatYAML:
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}

// Marshal renders v in format f, for callers that need the text rather
// than a stream (MCP tool results).
func Marshal(f Format, v interface{}) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, true, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
