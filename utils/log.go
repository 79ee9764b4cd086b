package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/netboxer/netboxer/netbox"
	"github.com/spf13/viper"
)

// Logger is the global logger for netboxer
var Logger log.Logger

func init() {

	f, err := os.OpenFile("netboxer.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Fatal(err)
	}
	Logger.SetOutput(f)

}

// LogError writes the error to netboxer.log and always prints an error to stdout.
func LogError(msg string) {

	Logger.SetPrefix(time.Now().Format("2006-01-02 15:04:05 "))
	fmt.Printf("%s [ERROR] - %s - see netboxer.log for more detail if the error is from an api call.\r\n", time.Now().Format("2006-01-02 15:04:05 "), msg)
	Logger.Fatalf("[ERROR] - %s\r\n", msg)
}

// LogWarning writes the log to netboxer.log and optionally prints msg to stdout.
func LogWarning(msg string, stdout bool) {
	Logger.SetPrefix(time.Now().Format("2006-01-02 15:04:05 "))
	if stdout {
		fmt.Printf("%s [WARNING] - %s\r\n", time.Now().Format("2006-01-02 15:04:05 "), msg)
	}
	Logger.Printf("[WARNING] - %s\r\n", msg)
}

// LogInfo writes the log to netboxer.log and optionally prints msg to stdout.
func LogInfo(msg string, stdout bool) {
	Logger.SetPrefix(time.Now().Format("2006-01-02 15:04:05 "))
	if stdout {
		fmt.Printf("%s [INFO] - %s\r\n", time.Now().Format("2006-01-02 15:04:05 "), msg)
	}
	Logger.Printf("[INFO] - %s\r\n", msg)
}

// LogDebug writes the log to netboxer.log only if the debug flag is set and
// never prints to stdout. A debug conditional is not required in app code.
func LogDebug(msg string) {

	if viper.GetBool("debug") {
		Logger.SetPrefix(time.Now().Format("2006-01-02 15:04:05 "))
		Logger.Printf("[DEBUG] - %s\r\n", msg)
	}
}

// LogAPIResp will log the HTTP request, request body, response status code,
// and response body of a NetBox API call. The callType should be the name of
// the call: VlanExists, CreateVlan, etc. This is just for logging purposes
// and any string will be accepted. The log type will be DEBUG.
func LogAPIResp(callType string, api netbox.APIResponse) {

	// If we have a bad API response, set the debug to true
	if api.StatusCode > 299 {
		viper.Set("debug", true)
	}

	if api.Request != nil {
		LogDebug(fmt.Sprintf("%s http request: %s %v", callType, api.Request.Method, api.Request.URL))
		LogDebug(fmt.Sprintf("%s request body: %s", callType, api.ReqBody))
	}
	LogInfo(fmt.Sprintf("%s status code: %d", callType, api.StatusCode), false)
	if viper.GetBool("verbose") || api.StatusCode > 299 {
		LogDebug(fmt.Sprintf("%s response body: %s", callType, api.RespBody))
	}
}

// LogStartCommand is used at the beginning of each command
func LogStartCommand(commandName string) {
	Logger.Println("-----------------------------------------------------------------------------")
	LogInfo(fmt.Sprintf("netboxer version %s - started %s", GetVersion(), commandName), false)
	if viper.GetString("target_device") != "" {
		LogInfo(fmt.Sprintf("using %s device", viper.GetString("target_device")), false)
	} else if viper.GetString("default_device_name") != "" {
		LogInfo(fmt.Sprintf("using default device - %s", viper.GetString("default_device_name")), false)
	}
}

// LogEndCommand is used at the end of each command
func LogEndCommand(commandName string) {
	LogInfo(fmt.Sprintf("%s completed", commandName), true)
}
