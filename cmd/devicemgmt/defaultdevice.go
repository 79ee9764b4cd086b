package devicemgmt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/netboxer/netboxer/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DeviceListCmd lists all devices in the netboxer.yaml file
var DeviceListCmd = &cobra.Command{
	Use:   "device-list",
	Short: "List all devices in the netboxer.yaml file.",
	Run: func(cmd *cobra.Command, args []string) {

		names := GetAllDeviceNames()
		if len(names) == 0 {
			fmt.Println("No devices in the netboxer.yaml file. Run netboxer device-add to add your first device.")
			return
		}
		for _, name := range names {
			defaultMarker := ""
			if viper.GetString("default_device_name") == name {
				defaultMarker = " (default)"
			}
			fmt.Printf("%s - %s%s\r\n", name, viper.GetString(name+".host"), defaultMarker)
		}
	},
}

// GetDefaultDeviceCmd prints the default device
var GetDefaultDeviceCmd = &cobra.Command{
	Use:   "get-default",
	Short: "Print the default device in the netboxer.yaml file.",
	Run: func(cmd *cobra.Command, args []string) {

		if viper.GetString("default_device_name") == "" {
			fmt.Println("No default device set.")
			return
		}
		fmt.Println(viper.GetString("default_device_name"))
	},
}

// SetDefaultDeviceCmd sets the default device
var SetDefaultDeviceCmd = &cobra.Command{
	Use:   "set-default [name of device]",
	Short: "Set the default device in the netboxer.yaml file.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		if !viper.IsSet(args[0] + ".host") {
			utils.LogError(fmt.Sprintf("%s is not a device in the netboxer.yaml file", args[0]))
		}
		viper.Set("default_device_name", args[0])
		if err := viper.WriteConfig(); err != nil {
			utils.LogError(err.Error())
		}
		fmt.Printf("%s is now the default device.\r\n", args[0])
	},
}

// GetAllDeviceNames returns the names of all devices in the netboxer.yaml file
func GetAllDeviceNames() []string {

	names := []string{}
	for key := range viper.AllSettings() {
		if strings.HasPrefix(key, "netbox") {
			continue
		}
		if viper.IsSet(key + ".host") {
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names
}
