package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/netboxer/netboxer/cmd"
	"github.com/netboxer/netboxer/cmd/devicemgmt"
	"github.com/netboxer/netboxer/utils"
)

func main() {

	// Process all-devices
	if len(os.Args) > 2 && os.Args[1] == "all-devices" && os.Args[2] != "-h" && os.Args[2] != "--help" {
		for _, device := range devicemgmt.GetAllDeviceNames() {
			utils.LogInfo(fmt.Sprintf("running %s", strings.Join(append(os.Args[2:], "--device", device), " ")), true)
			command := exec.Command(os.Args[0], append(os.Args[2:], "--device", device)...)
			stdout, err := command.Output()
			if err != nil {
				utils.LogError(err.Error())
			}
			fmt.Println(string(stdout))
		}
		return
	}

	// Run command for all other scenarios
	cmd.Execute()
}
