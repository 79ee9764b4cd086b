package devicemgmt

import (
	"github.com/spf13/cobra"
)

// AllDevicesCmd runs a command on all devices
var AllDevicesCmd = &cobra.Command{
	Use:   "all-devices",
	Short: "Run a netboxer command on all devices in your netboxer.yaml file.",
	Long: `
Run a netboxer command on all devices in your netboxer.yaml file.

Prepend the all-devices command to any netboxer command to run it on all devices in the netboxer.yaml file.

# Example to sync every device's VLANs and prefixes into NetBox:
netboxer all-devices netbox-sync --update-netbox --no-prompt
`,
	Run: func(cmd *cobra.Command, args []string) {
		// Just a place holder function for help menu
		// Logic is processed in main.go
	},
}
