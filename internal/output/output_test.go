package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/mj1618/window-getter/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleList() ListResult {
	return ListResult{
		TS:            1707500000,
		ScreenCapture: true,
		Count:         1,
		Windows: []model.Window{
			{ID: 1, Title: "Inbox", App: "Mail", PID: 1234, Bounds: &[4]float64{10, 20, 100, 30}},
		},
	}
}

func TestPrint_YAML(t *testing.T) {
	// Capture stdout
	old, oldFormat := Stdout, OutputFormat
	r, w, _ := os.Pipe()
	Stdout, OutputFormat = w, FormatYAML

	err := Print(sampleList())
	w.Close()
	Stdout, OutputFormat = old, oldFormat

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	// YAML output should be multi-line
	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", output)
	}

	// Verify it's valid YAML
	var decoded ListResult
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded.Windows) != 1 {
		t.Fatalf("windows: got %d, want 1", len(decoded.Windows))
	}
	if decoded.Windows[0].App != "Mail" {
		t.Errorf("app: got %q, want %q", decoded.Windows[0].App, "Mail")
	}
}

func TestListResult_OmitEmpty(t *testing.T) {
	result := ListResult{TS: 123, Windows: []model.Window{}}
	data, err := yaml.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["stale"]; ok {
		t.Error("zero stale count should be omitted")
	}
	// Windows and count should always be present
	if _, ok := m["windows"]; !ok {
		t.Error("windows should always be present")
	}
	if _, ok := m["count"]; !ok {
		t.Error("count should always be present")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"agent", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q): err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrint_UsesCurrentFormat(t *testing.T) {
	var buf bytes.Buffer
	oldOut, oldFmt := Stdout, OutputFormat
	Stdout, OutputFormat = &buf, FormatJSON
	defer func() { Stdout, OutputFormat = oldOut, oldFmt }()

	if err := Print(PermissionResult{ScreenCapture: true}); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"screen_capture":true}` {
		t.Errorf("got %s", got)
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Format("xml"), false, 1); err == nil {
		t.Error("expected an error")
	}
}

func TestMarshal_YAML(t *testing.T) {
	s, err := Marshal(FormatYAML, PermissionResult{ScreenCapture: false, Requested: true})
	if err != nil {
		t.Fatal(err)
	}
	if s != "screen_capture: false\nrequested: true\n" {
		t.Errorf("got %q", s)
	}
}
