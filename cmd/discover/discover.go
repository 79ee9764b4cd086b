package discover

import (
	"fmt"
	"strconv"
	"time"

	"github.com/netboxer/netboxer/facts"
	"github.com/netboxer/netboxer/snmp"
	"github.com/netboxer/netboxer/utils"
	"github.com/spf13/cobra"
)

// DiscoverCmd walks a device and reports discovered VLANs and subnets
var DiscoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover VLAN sub-interfaces and subnets from a device over SNMP.",
	Long: `
Discover VLAN sub-interfaces and subnets from a device over SNMP.

Walks the interface description table for link-aggregation sub-interfaces (e.g., "ae0.1000")
and the IP netmask table for subnets. Nothing is written to NetBox; use netbox-sync for that.`,

	Run: func(cmd *cobra.Command, args []string) {

		device, err := utils.GetTargetDevice()
		if err != nil {
			utils.LogError(err.Error())
		}

		discover(device)
	},
}

func discover(device utils.Device) {

	utils.LogStartCommand("discover")

	// Connect to the device
	client := snmp.NewClient(device.Host, device.Community)
	if err := client.Connect(); err != nil {
		utils.LogError(err.Error())
	}
	defer client.Close()

	// Walk the interface description table
	ifEntries, err := client.Walk(snmp.IfDescrOID)
	if err != nil {
		utils.LogError(err.Error())
	}
	utils.LogInfo(fmt.Sprintf("walked interface description table - %d entries", len(ifEntries)), true)

	// Walk the netmask table
	maskEntries, err := client.Walk(snmp.IPAdEntNetMaskOID)
	if err != nil {
		utils.LogError(err.Error())
	}
	utils.LogInfo(fmt.Sprintf("walked ip netmask table - %d entries", len(maskEntries)), true)

	// Extract the facts
	vlans := facts.VlanInterfaces(ifEntries)
	subnets, err := facts.Subnets(maskEntries)
	if err != nil {
		utils.LogError(err.Error())
	}
	utils.LogInfo(fmt.Sprintf("discovered %d vlan interfaces and %d subnets on %s", len(vlans), len(subnets), device.Name), true)

	// Build the output data
	data := [][]string{{"type", "name", "vid", "prefix", "rfc1918"}}
	for _, vlan := range vlans {
		data = append(data, []string{"vlan", vlan, strconv.Itoa(facts.VlanID(vlan)), "", ""})
	}
	for _, subnet := range subnets {
		rfc1918 := "no"
		if utils.IsRFC1918(subnet) {
			rfc1918 = "yes"
		}
		data = append(data, []string{"prefix", "", "", subnet, rfc1918})
	}

	if len(data) > 1 {
		utils.WriteOutput(data, data, fmt.Sprintf("netboxer-discover-%s.csv", time.Now().Format("20060102_150405")))
	}

	utils.LogEndCommand("discover")
}
