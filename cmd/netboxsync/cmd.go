package netboxsync

import (
	"github.com/netboxer/netboxer/netbox"
	"github.com/netboxer/netboxer/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global variables
var device utils.Device
var nb netbox.NetBox
var site int
var updateNetBox, noPrompt bool
var err error

func init() {

	NetBoxSyncCmd.Flags().IntVarP(&site, "site", "s", 0, "netbox site id to attach created vlans and prefixes to. overrides the netboxer.yaml value.")
	NetBoxSyncCmd.Flags().SortFlags = false

}

// NetBoxSyncCmd runs the netbox-sync command
var NetBoxSyncCmd = &cobra.Command{
	Use:   "netbox-sync",
	Short: "Create a NetBox VLAN for each discovered VLAN sub-interface and a NetBox prefix for each discovered subnet.",
	Long: `
Create a NetBox VLAN for each discovered VLAN sub-interface and a NetBox prefix for each discovered subnet.

VLANs and prefixes that already exist in NetBox are skipped. Existing records are never updated or removed.

Recommended to run without --update-netbox first to log what will change.`,

	Run: func(cmd *cobra.Command, args []string) {

		device, err = utils.GetTargetDevice()
		if err != nil {
			utils.LogError(err.Error())
		}

		nb, err = utils.GetNetBox()
		if err != nil {
			utils.LogError(err.Error())
		}
		if site != 0 {
			nb.Site = site
		}
		if nb.Site == 0 {
			utils.LogError("no netbox site id is set. run netboxer netbox-setup or use the --site flag.")
		}

		updateNetBox = viper.GetBool("update_netbox")
		noPrompt = viper.GetBool("no_prompt")

		nbSync(device, nb)
	},
}
