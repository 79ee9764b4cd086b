package devicemgmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/netboxer/netboxer/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var deviceName string

// RemoveDeviceCmd removes a device from the netboxer.yaml file
var RemoveDeviceCmd = &cobra.Command{
	Use:   "device-remove [name of device]",
	Short: "Remove a device from the netboxer.yaml file.",
	Long: `
Remove a device from the netboxer.yaml file.

The --update-netbox and --no-prompt flags are ignored for this command.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
		if err != nil {
			utils.LogError(err.Error())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {

		// Get name of device
		if len(args) != 1 {
			fmt.Println("Command requires 1 argument for the name of the device to remove. See usage help.")
			os.Exit(0)
		}
		deviceName = args[0]

		removeDevice()
	},
}

func removeDevice() {

	utils.LogStartCommand("device-remove")

	if !viper.IsSet(deviceName + ".host") {
		utils.LogError(fmt.Sprintf("%s is not in %s", deviceName, configFilePath))
	}

	// Remove device information from YAML
	configMap := viper.AllSettings()
	delete(configMap, deviceName)
	if viper.GetString("default_device_name") == deviceName {
		delete(configMap, "default_device_name")
	}
	encodedConfig, _ := json.MarshalIndent(configMap, "", " ")
	err := viper.ReadConfig(bytes.NewReader(encodedConfig))
	if err != nil {
		utils.LogError(err.Error())
	}
	viper.WriteConfig()

	utils.LogInfo(fmt.Sprintf("removed %s device information from netboxer.yaml.", deviceName), true)

	utils.LogEndCommand("device-remove")

}
