package netboxsync

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/netboxer/netboxer/facts"
	"github.com/netboxer/netboxer/netbox"
	"github.com/netboxer/netboxer/snmp"
	"github.com/netboxer/netboxer/utils"
)

// syncCounts tracks the per-fact outcomes of one sync pass
type syncCounts struct {
	created int
	skipped int
	pending int
	failed  int
}

func nbSync(device utils.Device, nb netbox.NetBox) {

	utils.LogStartCommand("netbox-sync")
	runID := uuid.New().String()
	utils.LogInfo(fmt.Sprintf("sync run id: %s", runID), false)

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
	for _, vlan := range vlans {
		utils.LogInfo(fmt.Sprintf("discovered vlan interface %s", vlan), false)
	}
	for _, subnet := range subnets {
		utils.LogInfo(fmt.Sprintf("discovered subnet %s", subnet), false)
	}

	// If updateNetBox is set, but not noPrompt, we will prompt the user.
	if updateNetBox && !noPrompt {
		var prompt string
		fmt.Printf("\r\n%s [PROMPT] - netboxer will check %d vlans and %d prefixes and create any missing in netbox site %d at %s. do you want to run the sync (yes/no)? ", time.Now().Format("2006-01-02 15:04:05 "), len(vlans), len(subnets), nb.Site, nb.URL)
		fmt.Scanln(&prompt)
		if strings.ToLower(prompt) != "yes" {
			utils.LogInfo("prompt denied.", true)

			return
		}
	}

	// Sync the VLANs
	fmt.Println()
	utils.LogInfo("processing vlan interfaces...", true)
	vlanCounts := syncVlans(&nb, vlans, updateNetBox)

	// Sync the prefixes
	fmt.Println()
	utils.LogInfo("processing subnets...", true)
	prefixCounts := syncPrefixes(&nb, subnets, updateNetBox)
	fmt.Println()

	// If updateNetBox is disabled, we just alerted the user what will happen and log
	if !updateNetBox {
		utils.LogInfo(fmt.Sprintf("%d vlans and %d prefixes to be created. %d vlans and %d prefixes already exist.", vlanCounts.pending, prefixCounts.pending, vlanCounts.skipped, prefixCounts.skipped), true)
		utils.LogInfo("See netboxer.log for more details. To do the sync, run again using --update-netbox flag.", true)

		return
	}

	utils.LogInfo(fmt.Sprintf("vlans: %d created, %d skipped, %d failed.", vlanCounts.created, vlanCounts.skipped, vlanCounts.failed), true)
	utils.LogInfo(fmt.Sprintf("prefixes: %d created, %d skipped, %d failed.", prefixCounts.created, prefixCounts.skipped, prefixCounts.failed), true)

	utils.LogEndCommand("netbox-sync")

	if vlanCounts.failed+prefixCounts.failed > 0 {
		os.Exit(1)
	}
}

// syncVlans runs the create-if-absent pass for each discovered VLAN
// interface. Each fact is independent; one failure does not stop the rest.
// When update is false the creates are only logged.
func syncVlans(nb *netbox.NetBox, vlans []string, update bool) syncCounts {

	var counts syncCounts

	for _, vlan := range vlans {

		// Derive the VLAN ID from the interface name. A name the pattern
		// can't parse would otherwise create a spurious VLAN 0 record.
		vid := facts.VlanID(vlan)
		if vid == 0 {
			utils.LogWarning(fmt.Sprintf("%s - could not derive a vlan id. skipping.", vlan), true)
			counts.failed++
			continue
		}

		// A failed existence check is not permission to create.
		exists, api, err := nb.VlanExists(vid)
		utils.LogAPIResp("VlanExists", api)
		if err != nil {
			utils.LogWarning(fmt.Sprintf("vlan %d - existence check failed - %s. skipping create.", vid, err.Error()), true)
			counts.failed++
			continue
		}
		if exists {
			utils.LogInfo(fmt.Sprintf("vlan %d (%s) already exists. skipping.", vid, vlan), true)
			counts.skipped++
			continue
		}

		if !update {
			utils.LogInfo(fmt.Sprintf("vlan %d (%s) to be created", vid, vlan), true)
			counts.pending++
			continue
		}

		api, err = nb.CreateVlan(vid, vlan)
		utils.LogAPIResp("CreateVlan", api)
		if err != nil {
			utils.LogWarning(fmt.Sprintf("error creating vlan %d (%s) - %d status code - %s", vid, vlan, api.StatusCode, api.RespBody), true)
			counts.failed++
			continue
		}
		utils.LogInfo(fmt.Sprintf("created vlan %d (%s)", vid, vlan), true)
		counts.created++
	}

	return counts
}

// syncPrefixes runs the create-if-absent pass for each discovered subnet.
func syncPrefixes(nb *netbox.NetBox, subnets []string, update bool) syncCounts {

	var counts syncCounts

	for _, subnet := range subnets {

		exists, api, err := nb.PrefixExists(subnet)
		utils.LogAPIResp("PrefixExists", api)
		if err != nil {
			utils.LogWarning(fmt.Sprintf("prefix %s - existence check failed - %s. skipping create.", subnet, err.Error()), true)
			counts.failed++
			continue
		}
		if exists {
			utils.LogInfo(fmt.Sprintf("prefix %s already exists. skipping.", subnet), true)
			counts.skipped++
			continue
		}

		if !update {
			utils.LogInfo(fmt.Sprintf("prefix %s to be created", subnet), true)
			counts.pending++
			continue
		}

		api, err = nb.CreatePrefix(subnet)
		utils.LogAPIResp("CreatePrefix", api)
		if err != nil {
			utils.LogWarning(fmt.Sprintf("error creating prefix %s - %d status code - %s", subnet, api.StatusCode, api.RespBody), true)
			counts.failed++
			continue
		}
		utils.LogInfo(fmt.Sprintf("created prefix %s", subnet), true)
		counts.created++
	}

	return counts
}
