package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/netboxer/netboxer/netbox"
	"github.com/spf13/viper"
)

// Device is an SNMP target stored in netboxer.yaml
type Device struct {
	Name      string
	Host      string
	Community string
}

// GetTargetDevice gets the target device for a command
func GetTargetDevice() (Device, error) {

	// Get the device name
	var name string
	if viper.GetString("target_device") != "" {
		name = viper.GetString("target_device")
	} else if viper.GetString("default_device_name") != "" {
		name = viper.GetString("default_device_name")
	} else {
		LogError("there is no device set using the --device flag and there is no default device. either run netboxer device-add to add your first device or netboxer set-default to set an existing device as default.")
	}

	// Get the device
	device, err := GetDeviceByName(name)
	if err != nil {
		return Device{}, err
	}

	// Adjust device for when no community is stored
	if device.Community == "" {
		if os.Getenv("NETBOXER_COMMUNITY") == "" {
			return device, fmt.Errorf("%s does not have a community string and the NETBOXER_COMMUNITY env variable is not set", name)
		}
		device.Community = os.Getenv("NETBOXER_COMMUNITY")
	}

	return device, nil
}

// GetDeviceByName gets a device by its provided name
func GetDeviceByName(name string) (Device, error) {
	if viper.IsSet(name + ".host") {
		return Device{Name: name, Host: viper.GetString(name + ".host"), Community: viper.GetString(name + ".community")}, nil
	}

	return Device{}, fmt.Errorf("could not retrieve %s device information", name)
}

// GetNetBox builds the NetBox connection from netboxer.yaml with env
// variable fallbacks. Missing values are an error before any network call.
func GetNetBox() (netbox.NetBox, error) {

	nb := netbox.NetBox{
		URL:                viper.GetString("netbox.url"),
		Token:              viper.GetString("netbox.token"),
		Site:               viper.GetInt("netbox.site_id"),
		DisableTLSChecking: viper.GetBool("netbox.disableTLSChecking"),
	}

	if nb.URL == "" {
		if os.Getenv("NETBOX_URL") == "" {
			return nb, fmt.Errorf("netbox url is not set. run netboxer netbox-setup or set the NETBOX_URL env variable")
		}
		nb.URL = os.Getenv("NETBOX_URL")
	}

	if nb.Token == "" {
		if os.Getenv("NETBOX_TOKEN") == "" {
			return nb, fmt.Errorf("netbox token is not set. run netboxer netbox-setup or set the NETBOX_TOKEN env variable")
		}
		nb.Token = os.Getenv("NETBOX_TOKEN")
	}

	if nb.Site == 0 && os.Getenv("NETBOX_SITE_ID") != "" {
		site, err := strconv.Atoi(os.Getenv("NETBOX_SITE_ID"))
		if err != nil {
			return nb, fmt.Errorf("%s is not a valid site id for the NETBOX_SITE_ID env variable", os.Getenv("NETBOX_SITE_ID"))
		}
		nb.Site = site
	}

	return nb, nil
}
