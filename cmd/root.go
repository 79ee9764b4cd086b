package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/netboxer/netboxer/utils"

	"github.com/netboxer/netboxer/cmd/checkversion"
	"github.com/netboxer/netboxer/cmd/devicemgmt"
	"github.com/netboxer/netboxer/cmd/discover"
	"github.com/netboxer/netboxer/cmd/netboxsync"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd calls the CLI
var RootCmd = &cobra.Command{
	Use: "netboxer",
	Long: `
Netboxer discovers VLANs and subnets from network devices over SNMP and syncs them into NetBox.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		viper.Set("debug", debug)
		viper.Set("update_netbox", updateNetBox)
		viper.Set("no_prompt", noPrompt)
		viper.Set("verbose", verbose)
		// If the targetDevice is not set in the persistent flag, we clear it from the YAML
		if targetDevice == "" {
			viper.Set("target_device", "")
		} else {
			viper.Set("target_device", targetDevice)
		}

		// Output format
		outFormat = strings.ToLower(outFormat)
		if outFormat != "both" && outFormat != "stdout" && outFormat != "csv" {
			utils.LogError("Invalid out - must be csv, stdout, or both.")
		}
		viper.Set("output_format", outFormat)
		if err := viper.WriteConfig(); err != nil {
			utils.LogError(err.Error())
		}

	},
	Run: func(cmd *cobra.Command, args []string) {

		cmd.Help()
	},
}

var updateNetBox, noPrompt, debug, verbose bool
var outFormat, targetDevice string

// All subcommand flags are taken care of in their package's init.
// Root init sets up everything else - all usage templates, Viper, etc.
func init() {

	// Disable sorting
	cobra.EnableCommandSorting = false

	// Device management
	RootCmd.AddCommand(devicemgmt.AddDeviceCmd)
	RootCmd.AddCommand(devicemgmt.RemoveDeviceCmd)
	RootCmd.AddCommand(devicemgmt.DeviceListCmd)
	RootCmd.AddCommand(devicemgmt.GetDefaultDeviceCmd)
	RootCmd.AddCommand(devicemgmt.SetDefaultDeviceCmd)
	RootCmd.AddCommand(devicemgmt.NetBoxSetupCmd)
	RootCmd.AddCommand(devicemgmt.AllDevicesCmd)

	// Discovery
	RootCmd.AddCommand(discover.DiscoverCmd)

	// Sync
	RootCmd.AddCommand(netboxsync.NetBoxSyncCmd)

	// Version Commands
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(checkversion.CheckVersionCmd)

	// Set the usage templates
	for _, c := range RootCmd.Commands() {
		c.SetUsageTemplate(utils.SubCmdTemplate())
	}
	RootCmd.SetUsageTemplate(utils.RootTemplate())

	// Setup Viper
	viper.SetConfigType("yaml")
	if os.Getenv("NETBOXER_CONFIG") != "" {
		viper.SetConfigFile(os.Getenv("NETBOXER_CONFIG"))
	} else {
		viper.SetConfigFile("./netboxer.yaml")
	}
	viper.ReadInConfig()

	// Persistent flags that will be passed into root command pre-run.
	RootCmd.PersistentFlags().BoolVar(&updateNetBox, "update-netbox", false, "Command will update NetBox after a single user prompt. Default will just log what would be created.")
	RootCmd.PersistentFlags().BoolVar(&noPrompt, "no-prompt", false, "Remove the user prompt when used with update-netbox.")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug level logging for troubleshooting.")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "When debug is enabled, include the raw API responses. This makes netboxer.log increase in size significantly.")
	RootCmd.PersistentFlags().StringVar(&outFormat, "out", "csv", "Output format. 3 options: csv, stdout, both")
	RootCmd.PersistentFlags().StringVar(&targetDevice, "device", "", "Device to use in command if not using default device.")

	RootCmd.Flags().SortFlags = false

}

// Execute is called by the CLI main function to initiate the Cobra application
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// versionCmd returns the version of netboxer
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print netboxer version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version %s\r\n", utils.GetVersion())
		fmt.Printf("Previous commit: %s \r\n", utils.GetCommit())
	},
}
