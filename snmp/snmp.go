package snmp

import (
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/pkg/errors"
)

// IfDescrOID is the IF-MIB interface description table
var IfDescrOID = "1.3.6.1.2.1.2.2.1.2"

// IPAdEntNetMaskOID is the IP-MIB address netmask table
var IPAdEntNetMaskOID = "1.3.6.1.2.1.4.20.1.3"

// Entry is one row returned by a table walk. OID is the full object
// identifier reported by the device and Value its string rendering.
type Entry struct {
	OID   string
	Value string
}

// Client implements a wrapper around the gosnmp.GoSNMP struct to provide
// the table walk used by the discovery commands
type Client struct {
	gosnmp *gosnmp.GoSNMP
}

// NewClient creates a new SNMP v2c client for the target device
func NewClient(target, community string) *Client {
	return &Client{
		gosnmp: &gosnmp.GoSNMP{
			Port:               161,
			Transport:          "udp",
			Community:          community,
			Version:            gosnmp.Version2c,
			Timeout:            time.Duration(2) * time.Second,
			Retries:            3,
			ExponentialTimeout: true,
			MaxOids:            gosnmp.MaxOids,
			Target:             target,
		},
	}
}

// Connect is similar to gosnmp.GoSNMP.Connect
func (c *Client) Connect() error {
	err := c.gosnmp.Connect()
	if err != nil {
		return errors.Wrapf(err, "Failed to connect to snmp agent at address %s", c.gosnmp.Target)
	}
	return nil
}

// Close closes current active connection
func (c *Client) Close() {
	c.gosnmp.Conn.Close()
}

// Walk traverses the subtree under rootOid and returns every row in the
// order the device reported it. Any transport or protocol error aborts the
// walk and no partial results are returned.
func (c *Client) Walk(rootOid string) ([]Entry, error) {
	var entries []Entry
	err := c.gosnmp.Walk(rootOid, func(pdu gosnmp.SnmpPDU) error {
		entries = append(entries, entryFromPDU(pdu))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "SnmpWalk on root OID %s at address %s error", rootOid, c.gosnmp.Target)
	}
	return entries, nil
}

func entryFromPDU(pdu gosnmp.SnmpPDU) Entry {

	var value string
	switch pdu.Type {
	case gosnmp.OctetString:
		value = string(pdu.Value.([]byte))
	case gosnmp.IPAddress:
		value = pdu.Value.(string)
	default:
		value = fmt.Sprintf("%v", pdu.Value)
	}

	return Entry{OID: pdu.Name, Value: value}
}
