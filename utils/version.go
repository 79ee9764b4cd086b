package utils

// Set at build time with -ldflags "-X github.com/netboxer/netboxer/utils.version=..."
var version = "dev"
var commit = ""

// GetVersion returns the netboxer build version
func GetVersion() string {
	return version
}

// GetCommit returns the commit the netboxer build was produced from
func GetCommit() string {
	return commit
}
