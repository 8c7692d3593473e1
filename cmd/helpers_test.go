package cmd

import (
	"bytes"
	"testing"

	"github.com/mj1618/window-getter/internal/output"
	"github.com/mj1618/window-getter/internal/platform/fake"
	"github.com/mj1618/window-getter/window"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags puts every flag of c and its subcommands back to its default,
// since cobra keeps parsed values between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runWith executes the root command against b and returns what was printed.
func runWith(t *testing.T, b *fake.Backend, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	prevSource, prevRunning := newSource, ownerRunning
	prevOut, prevFmt, prevPretty := output.Stdout, output.OutputFormat, output.PrettyOutput
	newSource = func() (*window.Source, error) { return window.NewSource(b.Provider()), nil }
	ownerRunning = func(pid uint32) bool { return pid != 999 }
	var buf bytes.Buffer
	output.Stdout = &buf
	t.Cleanup(func() {
		newSource, ownerRunning = prevSource, prevRunning
		output.Stdout, output.OutputFormat, output.PrettyOutput = prevOut, prevFmt, prevPretty
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func sampleBackend() *fake.Backend {
	return fake.NewBackend(
		&fake.Window{Number: 11, Name: "Inbox", Owner: "Mail", PID: 100, Rect: [4]float64{0, 0, 800, 600}},
		&fake.Window{Number: 22, Name: "main.go", Owner: "Code", PID: 999, Rect: [4]float64{100, 100, 400, 300}},
		&fake.Window{Number: 33, Owner: "Dock", PID: 300, Rect: [4]float64{0, 1040, 1920, 40}},
	)
}
