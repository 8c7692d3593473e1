package cmd

import (
	"fmt"

	"github.com/mj1618/window-getter/internal/model"
	"github.com/mj1618/window-getter/internal/output"
	"github.com/mj1618/window-getter/window"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one window by id",
	Long: `Show one window by its numeric id (decimal or 0x hex), as printed by
"list". Without an argument the id is read from $WINDOW_GETTER_WINDOW_ID.

On macOS the lookup fails when no window server session is available. On
Windows it only checks that the handle is a live top-level window.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().Bool("details", false, "Include layer, alpha and other captured properties")
}

func runGet(cmd *cobra.Command, args []string) error {
	details, _ := cmd.Flags().GetBool("details")

	raw := cfg.WindowID
	if len(args) == 1 {
		raw = args[0]
	}
	if raw == "" {
		return fmt.Errorf("window id required (argument or $WINDOW_GETTER_WINDOW_ID)")
	}
	id, err := window.ParseID(raw)
	if err != nil {
		return err
	}

	src, err := openSource()
	if err != nil {
		return err
	}
	warnIfNoAccess(src)

	w, ok, err := src.Window(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("window %s not found", id)
	}

	rec := model.FromWindow(w, model.RecordOptions{Details: details, Frame: true})
	logRecordErrors(rec.ID, rec.Errors)
	return output.Print(rec)
}
