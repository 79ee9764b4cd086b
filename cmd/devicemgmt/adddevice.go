package devicemgmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/netboxer/netboxer/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Set global variables for flags
var configFilePath string
var err error

// AddDeviceCmd adds a device to the netboxer.yaml file
var AddDeviceCmd = &cobra.Command{
	Use:   "device-add",
	Short: "Adds an SNMP device to the netboxer.yaml file.",
	Long: `
Adds an SNMP device to the netboxer.yaml file.

The default file name is netboxer.yaml stored in the current directory.
Set NETBOXER_CONFIG environment variable for a custom file location, including file name.
This environment variable must be set for future use so netboxer knows where to look for it. Example:

export NETBOXER_CONFIG="/Users/me/Desktop/netboxer.yaml"

The command can be automated (avoid prompt) by setting the following environment variables:
DEVICE_NAME, DEVICE_HOST, DEVICE_COMMUNITY.

The --update-netbox and --no-prompt flags are ignored for this command.
`,
	PreRun: func(cmd *cobra.Command, args []string) {
		configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
		if err != nil {
			utils.LogError(err.Error())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		addDevice()
	},
}

// addDevice stores a device in the YAML file
func addDevice() {

	// Log start
	utils.LogStartCommand("device-add")

	var deviceName, host, community string

	// Check if all our env variables are set
	envVars := []string{"DEVICE_NAME", "DEVICE_HOST", "DEVICE_COMMUNITY"}
	auto := true
	for _, e := range envVars {
		if os.Getenv(e) == "" {
			auto = false
		}
	}

	// Start user prompt
	if !auto {
		fmt.Println("\r\nDefault values will be shown in [brackets]. Press enter to accept default.")
		fmt.Println("")
	}

	deviceName = os.Getenv("DEVICE_NAME")
	if deviceName == "" {
		fmt.Print("Name of device (no spaces or periods) [default-device]: ")
		fmt.Scanln(&deviceName)
		for strings.Contains(deviceName, ".") {
			fmt.Println("\r\n[WARNING] - The name of the device cannot contain periods. Please re-enter.")
			fmt.Print("Name of device (no spaces or periods) [default-device]: ")
			fmt.Scanln(&deviceName)
		}
		if deviceName == "" {
			deviceName = "default-device"
		}
	}

	// If they don't have a default device, make it this one.
	defaultDevice := true
	if viper.IsSet("default_device_name") {
		defaultDevice = false
	}

	host = os.Getenv("DEVICE_HOST")
	if host == "" {
		fmt.Print("Device address: ")
		fmt.Scanln(&host)
	}

	community = os.Getenv("DEVICE_COMMUNITY")
	if community == "" {
		fmt.Print("SNMP community string (input will be hidden): ")
		bytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			utils.LogError(err.Error())
		}
		community = string(bytes)
		fmt.Println("")
	}

	// Write the device to the YAML file
	viper.Set(deviceName+".host", host)
	viper.Set(deviceName+".community", community)
	if defaultDevice {
		viper.Set("default_device_name", deviceName)
	}
	if err := viper.WriteConfigAs(configFilePath); err != nil {
		utils.LogError(err.Error())
	}

	fmt.Printf("\r\nAdded %s (%s) to %s.\r\n", deviceName, host, configFilePath)

	utils.LogEndCommand("device-add")
}
