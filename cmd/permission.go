package cmd

import (
	"github.com/mj1618/window-getter/internal/output"
	"github.com/spf13/cobra"
)

var permissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Check screen capture access",
	Long: `Report whether window titles and owner names are readable. On macOS this
is the Screen Recording permission; elsewhere it is always granted.

With --request the system prompt is shown when access is missing. macOS
usually applies a new grant only after the process restarts.`,
	RunE: runPermission,
}

func init() {
	rootCmd.AddCommand(permissionCmd)
	permissionCmd.Flags().Bool("request", false, "Request access if not granted")
}

func runPermission(cmd *cobra.Command, args []string) error {
	request, _ := cmd.Flags().GetBool("request")

	src, err := openSource()
	if err != nil {
		return err
	}

	result := output.PermissionResult{ScreenCapture: src.HasScreenCaptureAccess()}
	if !result.ScreenCapture && request {
		result.Requested = true
		result.ScreenCapture = src.RequestScreenCaptureAccess()
	}
	return output.Print(result)
}
