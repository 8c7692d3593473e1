package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/window-getter/internal/model"
	"github.com/mj1618/window-getter/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Draw window bounds to a PNG",
	Long: `Draw the bounds of every window onto one image, scaled to fit --width.
Frontmost windows are drawn last so their labels stay readable.

Examples:
  window-getter map -o windows.png
  window-getter map -o windows.png --labels coords --app Safari`,
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().StringP("output", "o", "windows.png", "PNG file to write")
	mapCmd.Flags().Int("width", 0, "Maximum image width in pixels (default $WINDOW_GETTER_MAP_WIDTH or 1600)")
	mapCmd.Flags().Int("margin", 8, "Margin around the desktop in pixels")
	mapCmd.Flags().String("labels", "ids", "Labels: ids, coords")
	mapCmd.Flags().String("app", "", "Only draw windows of this app")
	mapCmd.Flags().Bool("verify-owner", false, "Draw windows whose owner PID is not running in grey")
}

func runMap(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	margin, _ := cmd.Flags().GetInt("margin")
	labels, _ := cmd.Flags().GetString("labels")
	appName, _ := cmd.Flags().GetString("app")
	verify, _ := cmd.Flags().GetBool("verify-owner")

	if width == 0 {
		width = cfg.MapWidth
	}
	opts := render.Options{MaxWidth: width, Margin: margin}
	switch labels {
	case "ids":
		opts.Labels = render.LabelIDs
	case "coords":
		opts.Labels = render.LabelCoords
	default:
		return fmt.Errorf("unsupported labels: %s (use ids or coords)", labels)
	}

	src, err := openSource()
	if err != nil {
		return err
	}
	windows, err := src.Windows()
	if err != nil {
		return err
	}
	recs := model.FilterWindows(model.FromWindows(windows, model.RecordOptions{}), model.Filter{App: appName})
	if verify {
		model.MarkStale(recs, ownerRunning)
	}

	img, err := render.Map(recs, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote window map", zap.String("path", path), zap.Int("windows", len(recs)))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
