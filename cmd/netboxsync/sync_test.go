package netboxsync

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/netboxer/netboxer/facts"
	"github.com/netboxer/netboxer/netbox"
	"github.com/netboxer/netboxer/snmp"
)

// fakeNetBox records VLAN and prefix operations against a test server
type fakeNetBox struct {
	existing    map[int]bool
	createCalls []netbox.Vlan
	failVids    map[int]bool
	queryFail   bool
}

func (f *fakeNetBox) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == "GET" && r.URL.Path == "/api/ipam/vlans/":
			if f.queryFail {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			var vid int
			fmt.Sscanf(r.URL.Query().Get("vid"), "%d", &vid)
			count := 0
			if f.existing[vid] {
				count = 1
			}
			fmt.Fprintf(w, `{"count": %d}`, count)
		case r.Method == "POST" && r.URL.Path == "/api/ipam/vlans/":
			var v netbox.Vlan
			if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
				t.Fatalf("decoding create body - %s", err.Error())
			}
			f.createCalls = append(f.createCalls, v)
			if f.failVids[v.Vid] {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error": "boom"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})
}

func TestSyncVlans(t *testing.T) {

	t.Run("existing vlan is skipped, absent vlan is created once", func(t *testing.T) {
		f := &fakeNetBox{existing: map[int]bool{200: true}}
		ts := httptest.NewServer(f.handler(t))
		defer ts.Close()

		nb := netbox.NetBox{URL: ts.URL, Token: "t", Site: 1}
		counts := syncVlans(&nb, []string{"ae0.200", "ae0.1000"}, true)

		if counts.skipped != 1 || counts.created != 1 || counts.failed != 0 {
			t.Errorf("counts = %+v", counts)
		}
		if len(f.createCalls) != 1 {
			t.Fatalf("create calls = %d, want 1", len(f.createCalls))
		}
		if f.createCalls[0].Vid != 1000 || f.createCalls[0].Name != "ae0.1000" || f.createCalls[0].Site != 1 {
			t.Errorf("create body = %+v", f.createCalls[0])
		}
	})

	t.Run("a create failure does not stop later facts", func(t *testing.T) {
		f := &fakeNetBox{existing: map[int]bool{}, failVids: map[int]bool{100: true}}
		ts := httptest.NewServer(f.handler(t))
		defer ts.Close()

		nb := netbox.NetBox{URL: ts.URL, Token: "t", Site: 1}
		counts := syncVlans(&nb, []string{"ae0.100", "ae0.101"}, true)

		if counts.failed != 1 || counts.created != 1 {
			t.Errorf("counts = %+v", counts)
		}
		if len(f.createCalls) != 2 {
			t.Errorf("create calls = %d, want 2", len(f.createCalls))
		}
	})

	t.Run("unparsable name is not created as vlan 0", func(t *testing.T) {
		f := &fakeNetBox{existing: map[int]bool{}}
		ts := httptest.NewServer(f.handler(t))
		defer ts.Close()

		nb := netbox.NetBox{URL: ts.URL, Token: "t", Site: 1}
		counts := syncVlans(&nb, []string{"ge-0/0/1.100"}, true)

		if counts.failed != 1 || len(f.createCalls) != 0 {
			t.Errorf("counts = %+v, create calls = %d", counts, len(f.createCalls))
		}
	})

	t.Run("a failed existence check is not permission to create", func(t *testing.T) {
		f := &fakeNetBox{queryFail: true}
		ts := httptest.NewServer(f.handler(t))
		defer ts.Close()

		nb := netbox.NetBox{URL: ts.URL, Token: "t", Site: 1}
		counts := syncVlans(&nb, []string{"ae0.1000"}, true)

		if counts.failed != 1 || counts.created != 0 {
			t.Errorf("counts = %+v", counts)
		}
		if len(f.createCalls) != 0 {
			t.Errorf("create calls = %d, want 0", len(f.createCalls))
		}
	})

	t.Run("without update only pending is reported", func(t *testing.T) {
		f := &fakeNetBox{existing: map[int]bool{}}
		ts := httptest.NewServer(f.handler(t))
		defer ts.Close()

		nb := netbox.NetBox{URL: ts.URL, Token: "t", Site: 1}
		counts := syncVlans(&nb, []string{"ae0.1000"}, false)

		if counts.pending != 1 || counts.created != 0 {
			t.Errorf("counts = %+v", counts)
		}
		if len(f.createCalls) != 0 {
			t.Errorf("create calls = %d, want 0", len(f.createCalls))
		}
	})
}

func TestSyncPrefixes(t *testing.T) {

	existing := map[string]bool{"10.0.0.0/24": true}
	var createCalls []netbox.Prefix

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == "GET" && r.URL.Path == "/api/ipam/prefixes/":
			count := 0
			if existing[r.URL.Query().Get("prefix")] {
				count = 1
			}
			fmt.Fprintf(w, `{"count": %d}`, count)
		case r.Method == "POST" && r.URL.Path == "/api/ipam/prefixes/":
			var p netbox.Prefix
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				t.Fatalf("decoding create body - %s", err.Error())
			}
			createCalls = append(createCalls, p)
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	nb := netbox.NetBox{URL: ts.URL, Token: "t", Site: 1}
	counts := syncPrefixes(&nb, []string{"10.0.0.0/24", "45.89.69.160/29"}, true)

	if counts.skipped != 1 || counts.created != 1 || counts.failed != 0 {
		t.Errorf("counts = %+v", counts)
	}
	if len(createCalls) != 1 {
		t.Fatalf("create calls = %d, want 1", len(createCalls))
	}
	if createCalls[0].Prefix != "45.89.69.160/29" || createCalls[0].Site == nil || *createCalls[0].Site != 1 {
		t.Errorf("create body = %+v", createCalls[0])
	}
}

// End to end from walk entries to the create call
func TestExtractAndSync(t *testing.T) {

	entries := []snmp.Entry{
		{OID: ".1.3.6.1.2.1.2.2.1.2.501", Value: "ae0.1000"},
		{OID: ".1.3.6.1.2.1.2.2.1.2.502", Value: "ge-0/0/0"},
	}

	vlans := facts.VlanInterfaces(entries)
	if len(vlans) != 1 || vlans[0] != "ae0.1000" {
		t.Fatalf("VlanInterfaces() = %v, want [ae0.1000]", vlans)
	}

	f := &fakeNetBox{existing: map[int]bool{}}
	ts := httptest.NewServer(f.handler(t))
	defer ts.Close()

	nb := netbox.NetBox{URL: ts.URL, Token: "t", Site: 3}
	counts := syncVlans(&nb, vlans, true)

	if counts.created != 1 {
		t.Errorf("counts = %+v", counts)
	}
	if len(f.createCalls) != 1 {
		t.Fatalf("create calls = %d, want 1", len(f.createCalls))
	}
	if f.createCalls[0].Vid != 1000 || f.createCalls[0].Name != "ae0.1000" || f.createCalls[0].Site != 3 {
		t.Errorf("create body = %+v", f.createCalls[0])
	}
}
