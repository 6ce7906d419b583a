package api

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ListResponse contains the entries of one list.
type ListResponse struct {
	List    string   `json:"list"`
	Domains []string `json:"domains"`
}

// DomainRequest is the body of an add request.
type DomainRequest struct {
	Domain string `json:"domain"`
}

// DomainResponse describes a domain that was added to a list.
type DomainResponse struct {
	List   string `json:"list"`
	Domain string `json:"domain"`
}

// GenerateResponse describes a generated dnsmasq configuration file.
type GenerateResponse struct {
	Path string `json:"path"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// HealthCheckResponse returns health check results.
type HealthCheckResponse struct {
	Healthy bool                   `json:"healthy"`
	Version VersionInfo            `json:"version"`
	Checks  map[string]CheckResult `json:"checks"`
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}

// InterfaceInfo represents a network interface.
type InterfaceInfo struct {
	Name string   `json:"name"`
	Up   bool     `json:"up"`
	IPs  []string `json:"ips,omitempty"`
}

// InterfacesResponse represents the response for the interfaces list endpoint.
type InterfacesResponse struct {
	Interfaces []InterfaceInfo `json:"interfaces"`
}
