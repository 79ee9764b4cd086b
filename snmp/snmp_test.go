package snmp

import (
	"testing"

	"github.com/gosnmp/gosnmp"
)

func TestEntryFromPDU(t *testing.T) {

	tests := []struct {
		name string
		pdu  gosnmp.SnmpPDU
		want Entry
	}{
		{
			name: "octet string interface description",
			pdu: gosnmp.SnmpPDU{
				Name:  ".1.3.6.1.2.1.2.2.1.2.501",
				Type:  gosnmp.OctetString,
				Value: []byte("ae0.1000"),
			},
			want: Entry{OID: ".1.3.6.1.2.1.2.2.1.2.501", Value: "ae0.1000"},
		},
		{
			name: "ip address netmask",
			pdu: gosnmp.SnmpPDU{
				Name:  ".1.3.6.1.2.1.4.20.1.3.45.89.69.161",
				Type:  gosnmp.IPAddress,
				Value: "255.255.255.248",
			},
			want: Entry{OID: ".1.3.6.1.2.1.4.20.1.3.45.89.69.161", Value: "255.255.255.248"},
		},
		{
			name: "integer falls back to fmt rendering",
			pdu: gosnmp.SnmpPDU{
				Name:  ".1.3.6.1.2.1.2.2.1.8.1",
				Type:  gosnmp.Integer,
				Value: 1,
			},
			want: Entry{OID: ".1.3.6.1.2.1.2.2.1.8.1", Value: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entryFromPDU(tt.pdu)
			if got != tt.want {
				t.Errorf("entryFromPDU() = %v, want %v", got, tt.want)
			}
		})
	}
}
