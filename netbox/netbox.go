// Package netbox is a minimal client for the NetBox IPAM REST API covering
// the VLAN and prefix objects netboxer synchronizes.
package netbox

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// NetBox holds the connection information for a NetBox instance
type NetBox struct {
	URL                string
	Token              string
	Site               int
	DisableTLSChecking bool
}

// APIResponse contains the information from the response of the API
type APIResponse struct {
	RespBody   string
	StatusCode int
	Header     http.Header
	Request    *http.Request
	ReqBody    string
}

// Vlan is the request body for creating a VLAN
type Vlan struct {
	Vid  int    `json:"vid"`
	Name string `json:"name"`
	Site int    `json:"site"`
}

// Prefix is the request body for creating a prefix. Site is omitted when
// no site is configured.
type Prefix struct {
	Prefix string `json:"prefix"`
	Site   *int   `json:"site,omitempty"`
}

// listResponse is the part of a NetBox list response we care about
type listResponse struct {
	Count int `json:"count"`
}

// httpCall - generic function to call the NetBox API
func (n *NetBox) httpCall(httpAction, apiURL string, body []byte) (APIResponse, error) {

	var response APIResponse

	// Validate the provided action
	httpAction = strings.ToUpper(httpAction)
	if httpAction != "GET" && httpAction != "POST" && httpAction != "PUT" && httpAction != "DELETE" {
		return response, errors.New("invalid http action string. action must be GET, POST, PUT, or DELETE")
	}

	// Create HTTP client and request
	client := &http.Client{}
	if n.DisableTLSChecking {
		client.Transport = &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
	}

	req, err := http.NewRequest(httpAction, apiURL, bytes.NewBuffer(body))
	if err != nil {
		return response, err
	}

	// Set token authentication and JSON headers
	req.Header.Set("Authorization", "Token "+n.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Make HTTP Request
	resp, err := client.Do(req)
	if err != nil {
		return response, err
	}
	defer resp.Body.Close()

	// Process response
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return response, err
	}

	// Put relevant response info into struct
	response.RespBody = string(data)
	response.StatusCode = resp.StatusCode
	response.Header = resp.Header
	response.Request = resp.Request
	response.ReqBody = string(body)

	// Check for a 200 response code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return response, errors.New("http status code of " + fmt.Sprintf("%d", response.StatusCode))
	}

	// Return data and nil error
	return response, nil
}

func (n *NetBox) baseURL() string {
	return strings.TrimSuffix(n.URL, "/")
}

// VlanExists checks if a VLAN with the given VID exists, scoped to the
// configured site when one is set. A failed query is returned as an error,
// never as "does not exist".
func (n *NetBox) VlanExists(vid int) (bool, APIResponse, error) {

	apiURL := fmt.Sprintf("%s/api/ipam/vlans/?vid=%d", n.baseURL(), vid)
	if n.Site != 0 {
		apiURL = fmt.Sprintf("%s&site_id=%d", apiURL, n.Site)
	}

	api, err := n.httpCall("GET", apiURL, nil)
	if err != nil {
		return false, api, errors.Wrapf(err, "checking if vlan %d exists", vid)
	}

	var list listResponse
	if err := json.Unmarshal([]byte(api.RespBody), &list); err != nil {
		return false, api, errors.Wrapf(err, "unmarshaling vlan list response")
	}

	return list.Count > 0, api, nil
}

// CreateVlan creates a VLAN with the given VID and name at the configured
// site. NetBox signals success with a 201.
func (n *NetBox) CreateVlan(vid int, name string) (APIResponse, error) {

	body, err := json.Marshal(Vlan{Vid: vid, Name: name, Site: n.Site})
	if err != nil {
		return APIResponse{}, err
	}

	api, err := n.httpCall("POST", fmt.Sprintf("%s/api/ipam/vlans/", n.baseURL()), body)
	if err != nil {
		return api, err
	}
	if api.StatusCode != 201 {
		return api, errors.New("http status code of " + fmt.Sprintf("%d", api.StatusCode))
	}

	return api, nil
}

// PrefixExists checks if a prefix with the given CIDR exists. A failed
// query is returned as an error, never as "does not exist".
func (n *NetBox) PrefixExists(prefix string) (bool, APIResponse, error) {

	query := url.Values{}
	query.Set("prefix", prefix)
	apiURL := fmt.Sprintf("%s/api/ipam/prefixes/?%s", n.baseURL(), query.Encode())

	api, err := n.httpCall("GET", apiURL, nil)
	if err != nil {
		return false, api, errors.Wrapf(err, "checking if prefix %s exists", prefix)
	}

	var list listResponse
	if err := json.Unmarshal([]byte(api.RespBody), &list); err != nil {
		return false, api, errors.Wrapf(err, "unmarshaling prefix list response")
	}

	return list.Count > 0, api, nil
}

// CreatePrefix creates a prefix for the given CIDR, attached to the
// configured site when one is set. NetBox signals success with a 200 or 201.
func (n *NetBox) CreatePrefix(prefix string) (APIResponse, error) {

	p := Prefix{Prefix: prefix}
	if n.Site != 0 {
		site := n.Site
		p.Site = &site
	}
	body, err := json.Marshal(p)
	if err != nil {
		return APIResponse{}, err
	}

	return n.httpCall("POST", fmt.Sprintf("%s/api/ipam/prefixes/", n.baseURL()), body)
}
