// Package facts derives typed network facts from raw SNMP walk results.
package facts

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/netboxer/netboxer/snmp"
)

var vlanInterfaceRegex = regexp.MustCompile(`^ae\d+\.\d+$`)
var vlanIDRegex = regexp.MustCompile(`ae\d+\.(\d+)`)

// VlanInterfaces returns the interface descriptions that look like
// link-aggregation sub-interfaces (e.g. "ae0.1000"), in walk order.
// Duplicates are not removed.
func VlanInterfaces(entries []snmp.Entry) []string {

	vlans := []string{}
	for _, e := range entries {
		if vlanInterfaceRegex.MatchString(e.Value) {
			vlans = append(vlans, e.Value)
		}
	}
	return vlans
}

// VlanID returns the unit number of an "aeN.M" interface name as the VLAN
// ID. Names that don't match the pattern return 0.
func VlanID(name string) int {

	match := vlanIDRegex.FindStringSubmatch(name)
	if match == nil {
		return 0
	}
	vid, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return vid
}

// MaskToPrefix converts a dotted-decimal netmask (e.g. "255.255.255.0") to
// its prefix length (e.g. 24). Masks that are not a contiguous run of one
// bits are an error.
func MaskToPrefix(mask string) (int, error) {

	addr := net.ParseIP(mask)
	if addr == nil || addr.To4() == nil {
		return 0, fmt.Errorf("%s is not a valid ipv4 netmask", mask)
	}
	addr = addr.To4()

	size, bits := net.IPv4Mask(addr[0], addr[1], addr[2], addr[3]).Size()
	if bits == 0 {
		return 0, fmt.Errorf("%s is not a valid ipv4 netmask", mask)
	}
	return size, nil
}

// Subnets builds one CIDR string per entry of a netmask table walk. The
// last four dot-separated components of the OID are the IP address and the
// value is its netmask. The address is floored to the network base address
// so host bits are always zero. The first invalid netmask aborts with an
// error.
func Subnets(entries []snmp.Entry) ([]string, error) {

	subnets := []string{}
	for _, e := range entries {
		oidParts := strings.Split(e.OID, ".")
		if len(oidParts) < 4 {
			return nil, fmt.Errorf("oid %s does not encode an ipv4 address", e.OID)
		}
		address := strings.Join(oidParts[len(oidParts)-4:], ".")

		prefixLen, err := MaskToPrefix(e.Value)
		if err != nil {
			return nil, err
		}

		_, ipNet, err := net.ParseCIDR(fmt.Sprintf("%s/%d", address, prefixLen))
		if err != nil {
			return nil, fmt.Errorf("parsing subnet for oid %s - %s", e.OID, err.Error())
		}
		subnets = append(subnets, ipNet.String())
	}
	return subnets, nil
}
