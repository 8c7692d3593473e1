package cmd

import (
	"strings"
	"testing"

	"github.com/mj1618/window-getter/internal/model"
	"github.com/mj1618/window-getter/internal/platform"
	"github.com/mj1618/window-getter/internal/platform/fake"
	"gopkg.in/yaml.v3"
)

func TestGetCommand_ByArgument(t *testing.T) {
	out, err := runWith(t, sampleBackend(), "get", "22")
	if err != nil {
		t.Fatal(err)
	}
	var rec model.Window
	if err := yaml.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.ID != 22 || rec.Title != "main.go" || rec.PID != 999 {
		t.Errorf("got %+v", rec)
	}
	if rec.Frame == nil {
		t.Error("get should include the frame rectangle")
	}
}

func TestGetCommand_HexID(t *testing.T) {
	out, err := runWith(t, sampleBackend(), "get", "0x21")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "id: 33") {
		t.Errorf("got %q", out)
	}
}

func TestGetCommand_FromEnvironment(t *testing.T) {
	t.Setenv("WINDOW_GETTER_WINDOW_ID", "11")
	out, err := runWith(t, sampleBackend(), "get")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "title: Inbox") {
		t.Errorf("got %q", out)
	}
}

func TestGetCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing id", []string{"get"}, "window id required"},
		{"bad id", []string{"get", "abc"}, "invalid window id"},
		{"not found", []string{"get", "44"}, "window 44 not found"},
	}
	for _, tt := range tests {
		_, err := runWith(t, sampleBackend(), tt.args...)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: got %v, want error containing %q", tt.name, err, tt.want)
		}
	}
}

func TestGetCommand_Details(t *testing.T) {
	b := fake.NewBackend(&fake.Window{Number: 5, Info: &platform.Details{Layer: 8, Alpha: 1}})
	out, err := runWith(t, b, "get", "5", "--details")
	if err != nil {
		t.Fatal(err)
	}
	var rec model.Window
	if err := yaml.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Details == nil || rec.Details.Layer != 8 {
		t.Errorf("got %+v", rec.Details)
	}
}
