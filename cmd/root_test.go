package cmd

import (
	"testing"

	"github.com/mj1618/window-getter/internal/output"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"list", "get", "permission", "map", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_FormatFromEnvironment(t *testing.T) {
	t.Setenv("WINDOW_GETTER_FORMAT", "json")
	out, err := runWith(t, sampleBackend(), "permission")
	if err != nil {
		t.Fatal(err)
	}
	if output.OutputFormat != output.FormatJSON {
		t.Errorf("got format %q, want json", output.OutputFormat)
	}
	if out != "{\"screen_capture\":true}\n" {
		t.Errorf("got %q", out)
	}
}

func TestRootCommand_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("WINDOW_GETTER_FORMAT", "json")
	out, err := runWith(t, sampleBackend(), "permission", "--format", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	if out != "screen_capture: true\n" {
		t.Errorf("got %q", out)
	}
}

func TestRootCommand_BadFormat(t *testing.T) {
	if _, err := runWith(t, sampleBackend(), "permission", "--format", "agent"); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestRootCommand_BadLogLevel(t *testing.T) {
	if _, err := runWith(t, sampleBackend(), "permission", "--log-level", "loud"); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}
