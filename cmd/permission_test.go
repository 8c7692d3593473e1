package cmd

import "testing"

func TestPermissionCommand(t *testing.T) {
	b := sampleBackend()
	b.SetGranted(false)

	out, err := runWith(t, b, "permission")
	if err != nil {
		t.Fatal(err)
	}
	if out != "screen_capture: false\n" {
		t.Errorf("got %q", out)
	}

	out, err = runWith(t, b, "permission", "--request")
	if err != nil {
		t.Fatal(err)
	}
	if out != "screen_capture: false\nrequested: true\n" {
		t.Errorf("got %q", out)
	}
}
