package devicemgmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/netboxer/netboxer/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NetBoxSetupCmd stores the NetBox connection in the netboxer.yaml file
var NetBoxSetupCmd = &cobra.Command{
	Use:   "netbox-setup",
	Short: "Stores the NetBox URL, API token, and site in the netboxer.yaml file.",
	Long: `
Stores the NetBox URL, API token, and site in the netboxer.yaml file.

The command can be automated (avoid prompt) by setting the following environment variables:
NETBOX_URL, NETBOX_TOKEN, NETBOX_SITE_ID, NETBOX_DISABLE_TLS.

The --update-netbox and --no-prompt flags are ignored for this command.
`,
	PreRun: func(cmd *cobra.Command, args []string) {
		configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
		if err != nil {
			utils.LogError(err.Error())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		netboxSetup()
	},
}

// netboxSetup stores the NetBox connection in the YAML file
func netboxSetup() {

	utils.LogStartCommand("netbox-setup")

	var netboxURL, token, siteStr, disableTLSStr string

	netboxURL = os.Getenv("NETBOX_URL")
	if netboxURL == "" {
		fmt.Print("NetBox URL (e.g. https://netbox.example.com): ")
		fmt.Scanln(&netboxURL)
	}

	token = os.Getenv("NETBOX_TOKEN")
	if token == "" {
		fmt.Print("NetBox API token (input will be hidden): ")
		bytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			utils.LogError(err.Error())
		}
		token = string(bytes)
		fmt.Println("")
	}

	siteStr = os.Getenv("NETBOX_SITE_ID")
	if siteStr == "" {
		fmt.Print("Site ID to attach created VLANs and prefixes to [1]: ")
		fmt.Scanln(&siteStr)
		if siteStr == "" {
			siteStr = "1"
		}
	}
	site, err := strconv.Atoi(siteStr)
	if err != nil {
		utils.LogError(fmt.Sprintf("%s is not a valid site id", siteStr))
	}

	disableTLSStr = os.Getenv("NETBOX_DISABLE_TLS")
	if disableTLSStr == "" {
		fmt.Print("Disable TLS verification (true/false) [false]: ")
		fmt.Scanln(&disableTLSStr)
	}
	disableTLS := strings.ToLower(disableTLSStr) == "true"

	// Write the NetBox connection to the YAML file
	viper.Set("netbox.url", netboxURL)
	viper.Set("netbox.token", token)
	viper.Set("netbox.site_id", site)
	viper.Set("netbox.disableTLSChecking", disableTLS)
	if err := viper.WriteConfigAs(configFilePath); err != nil {
		utils.LogError(err.Error())
	}

	fmt.Printf("\r\nAdded NetBox connection for %s to %s.\r\n", netboxURL, configFilePath)

	utils.LogEndCommand("netbox-setup")
}
