package cmd

import (
	"time"

	"github.com/mj1618/window-getter/internal/model"
	"github.com/mj1618/window-getter/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List on-screen windows",
	Long: `List every window the platform reports, front to back on macOS and in
EnumWindows order on Windows, with its id, title, owner app, pid and bounds.

A field that could not be read is left out and its error is reported under
"errors" for that window; the rest of the listing is unaffected.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Uint32("pid", 0, "Filter windows by owner PID")
	listCmd.Flags().String("app", "", "Filter windows by owner app name (case-insensitive)")
	listCmd.Flags().String("title", "", "Filter windows by title substring (case-insensitive)")
	listCmd.Flags().Bool("details", false, "Include layer, alpha and other captured properties")
	listCmd.Flags().Bool("frame", false, "Include the raw frame rectangle")
	listCmd.Flags().Bool("verify-owner", false, "Mark windows whose owner PID is not a running process as stale")
}

func runList(cmd *cobra.Command, args []string) error {
	pid, _ := cmd.Flags().GetUint32("pid")
	appName, _ := cmd.Flags().GetString("app")
	title, _ := cmd.Flags().GetString("title")
	details, _ := cmd.Flags().GetBool("details")
	frame, _ := cmd.Flags().GetBool("frame")
	verify, _ := cmd.Flags().GetBool("verify-owner")

	src, err := openSource()
	if err != nil {
		return err
	}
	granted := warnIfNoAccess(src)

	windows, err := src.Windows()
	if err != nil {
		return err
	}
	logger.Debug("enumerated windows", zap.Int("count", len(windows)))

	recs := model.FromWindows(windows, model.RecordOptions{Details: details, Frame: frame})
	for _, r := range recs {
		logRecordErrors(r.ID, r.Errors)
	}
	recs = model.FilterWindows(recs, model.Filter{PID: pid, App: appName, Title: title})

	result := output.ListResult{
		TS:            time.Now().Unix(),
		ScreenCapture: granted,
		Count:         len(recs),
		Windows:       recs,
	}
	if verify {
		model.MarkStale(recs, ownerRunning)
		result.Stale = model.CountStale(recs)
		if result.Stale > 0 {
			logger.Warn("windows owned by processes that are not running", zap.Int("stale", result.Stale))
		}
	}
	return output.Print(result)
}
