package cmd

import (
	"errors"
	"testing"

	"github.com/mj1618/window-getter/internal/output"
	"github.com/mj1618/window-getter/internal/platform"
	"github.com/mj1618/window-getter/internal/platform/fake"
	"gopkg.in/yaml.v3"
)

func TestListCommand_Flags(t *testing.T) {
	flags := listCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"pid", "uint32"},
		{"app", "string"},
		{"title", "string"},
		{"details", "bool"},
		{"frame", "bool"},
		{"verify-owner", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestListCommand_IsRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "list" {
			return
		}
	}
	t.Error("list command not registered on root")
}

func decodeList(t *testing.T, out string) output.ListResult {
	t.Helper()
	var res output.ListResult
	if err := yaml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	return res
}

func TestListCommand_All(t *testing.T) {
	out, err := runWith(t, sampleBackend(), "list")
	if err != nil {
		t.Fatal(err)
	}
	res := decodeList(t, out)
	if res.Count != 3 {
		t.Fatalf("got %d windows, want 3", res.Count)
	}
	ids := [3]uint32{res.Windows[0].ID, res.Windows[1].ID, res.Windows[2].ID}
	if ids != [3]uint32{11, 22, 33} {
		t.Errorf("got order %v", ids)
	}
}

func TestListCommand_Filters(t *testing.T) {
	tests := []struct {
		args []string
		want []uint32
	}{
		{[]string{"--app", "mail"}, []uint32{11}},
		{[]string{"--pid", "300"}, []uint32{33}},
		{[]string{"--title", "GO"}, []uint32{22}},
		{[]string{"--app", "Finder"}, nil},
	}
	for _, tt := range tests {
		out, err := runWith(t, sampleBackend(), append([]string{"list"}, tt.args...)...)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		res := decodeList(t, out)
		if res.Count != len(tt.want) {
			t.Errorf("%v: got %d windows, want %d", tt.args, res.Count, len(tt.want))
			continue
		}
		for i, id := range tt.want {
			if res.Windows[i].ID != id {
				t.Errorf("%v: window %d is %d, want %d", tt.args, i, res.Windows[i].ID, id)
			}
		}
	}
}

func TestListCommand_VerifyOwner(t *testing.T) {
	out, err := runWith(t, sampleBackend(), "list", "--verify-owner")
	if err != nil {
		t.Fatal(err)
	}
	res := decodeList(t, out)
	if res.Stale != 1 || !res.Windows[1].Stale {
		t.Errorf("expected window 22 to be stale, got %+v", res)
	}
}

func TestListCommand_AccessorErrorsDoNotAbort(t *testing.T) {
	b := fake.NewBackend(
		&fake.Window{Number: 1, Name: "ok", Rect: [4]float64{0, 0, 10, 10}},
		&fake.Window{Number: 2, TitleErr: platform.FromHRESULT("GetWindowTextW", platform.HRESULTAccessDenied, nil)},
	)
	out, err := runWith(t, b, "list")
	if err != nil {
		t.Fatal(err)
	}
	res := decodeList(t, out)
	if res.Count != 2 {
		t.Fatalf("got %d windows, want 2", res.Count)
	}
	if _, ok := res.Windows[1].Errors["title"]; !ok {
		t.Errorf("expected a title error, got %v", res.Windows[1].Errors)
	}
}

func TestListCommand_NoWindowEnvironment(t *testing.T) {
	b := sampleBackend()
	b.FailList(platform.NoWindowEnvironment("CGWindowListCopyWindowInfo", nil))
	_, err := runWith(t, b, "list")
	if !errors.Is(err, platform.ErrNoWindowEnvironment) {
		t.Errorf("got %v, want ErrNoWindowEnvironment", err)
	}
}

func TestListCommand_ReportsAccess(t *testing.T) {
	b := sampleBackend()
	b.SetGranted(false)
	out, err := runWith(t, b, "list")
	if err != nil {
		t.Fatal(err)
	}
	if decodeList(t, out).ScreenCapture {
		t.Error("expected screen_capture: false")
	}
}
