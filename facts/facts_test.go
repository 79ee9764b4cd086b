package facts

import (
	"reflect"
	"testing"

	"github.com/netboxer/netboxer/snmp"
)

func TestVlanInterfaces(t *testing.T) {

	entries := []snmp.Entry{
		{OID: ".1.3.6.1.2.1.2.2.1.2.501", Value: "ae0.1000"},
		{OID: ".1.3.6.1.2.1.2.2.1.2.502", Value: "ge-0/0/1.100"},
		{OID: ".1.3.6.1.2.1.2.2.1.2.503", Value: "ae12.999"},
		{OID: ".1.3.6.1.2.1.2.2.1.2.504", Value: "ae0"},
		{OID: ".1.3.6.1.2.1.2.2.1.2.505", Value: "lo0.0"},
		{OID: ".1.3.6.1.2.1.2.2.1.2.506", Value: "ae0.1000"},
	}

	want := []string{"ae0.1000", "ae12.999", "ae0.1000"}
	got := VlanInterfaces(entries)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("VlanInterfaces() = %v, want %v", got, want)
	}
}

func TestVlanID(t *testing.T) {

	tests := []struct {
		name string
		want int
	}{
		{name: "ae0.1000", want: 1000},
		{name: "ae12.999", want: 999},
		{name: "ge-0/0/1.100", want: 0},
		{name: "ae0", want: 0},
		{name: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VlanID(tt.name); got != tt.want {
				t.Errorf("VlanID(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestMaskToPrefix(t *testing.T) {

	tests := []struct {
		mask    string
		want    int
		wantErr bool
	}{
		{mask: "255.255.255.0", want: 24},
		{mask: "255.255.255.248", want: 29},
		{mask: "255.255.255.255", want: 32},
		{mask: "0.0.0.0", want: 0},
		{mask: "255.0.255.0", wantErr: true},
		{mask: "not-a-mask", wantErr: true},
		{mask: "255.255.255.256", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mask, func(t *testing.T) {
			got, err := MaskToPrefix(tt.mask)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("MaskToPrefix(%q) expected error, got %d", tt.mask, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("MaskToPrefix(%q) unexpected error - %s", tt.mask, err.Error())
			}
			if got != tt.want {
				t.Errorf("MaskToPrefix(%q) = %d, want %d", tt.mask, got, tt.want)
			}
		})
	}
}

func TestSubnets(t *testing.T) {

	t.Run("host bits are floored to the network address", func(t *testing.T) {
		entries := []snmp.Entry{
			{OID: ".1.3.6.1.2.1.4.20.1.3.45.89.69.161", Value: "255.255.255.248"},
			{OID: ".1.3.6.1.2.1.4.20.1.3.10.1.2.1", Value: "255.255.255.0"},
		}
		want := []string{"45.89.69.160/29", "10.1.2.0/24"}
		got, err := Subnets(entries)
		if err != nil {
			t.Fatalf("Subnets() unexpected error - %s", err.Error())
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Subnets() = %v, want %v", got, want)
		}
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		entries := []snmp.Entry{
			{OID: ".1.3.6.1.2.1.4.20.1.3.45.89.69.160", Value: "255.255.255.248"},
		}
		got, err := Subnets(entries)
		if err != nil {
			t.Fatalf("Subnets() unexpected error - %s", err.Error())
		}
		if got[0] != "45.89.69.160/29" {
			t.Errorf("Subnets() = %v, want [45.89.69.160/29]", got)
		}
	})

	t.Run("invalid netmask aborts the extraction", func(t *testing.T) {
		entries := []snmp.Entry{
			{OID: ".1.3.6.1.2.1.4.20.1.3.10.1.2.1", Value: "255.255.255.0"},
			{OID: ".1.3.6.1.2.1.4.20.1.3.10.1.3.1", Value: "255.0.255.0"},
		}
		if _, err := Subnets(entries); err == nil {
			t.Error("Subnets() expected error for non-contiguous netmask")
		}
	})
}
