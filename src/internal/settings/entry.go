package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holectl/holectl/src/internal/errors"
)

// Entry is a typed settings key.
type Entry struct {
	Key     string
	Default string
}

var (
	QueryLogging                 = Entry{Key: "QUERY_LOGGING"}
	DNSFQDNRequired              = Entry{Key: "DNS_FQDN_REQUIRED"}
	DNSBogusPriv                 = Entry{Key: "DNS_BOGUS_PRIV"}
	DNSSEC                       = Entry{Key: "DNSSEC"}
	HostRecord                   = Entry{Key: "HOSTRECORD"}
	DnsmasqListening             = Entry{Key: "DNSMASQ_LISTENING", Default: "single"}
	PiholeInterface              = Entry{Key: "PIHOLE_INTERFACE"}
	ConditionalForwarding        = Entry{Key: "CONDITIONAL_FORWARDING"}
	ConditionalForwardingIP      = Entry{Key: "CONDITIONAL_FORWARDING_IP"}
	ConditionalForwardingDomain  = Entry{Key: "CONDITIONAL_FORWARDING_DOMAIN"}
	ConditionalForwardingReverse = Entry{Key: "CONDITIONAL_FORWARDING_REVERSE"}
	DHCPActive                   = Entry{Key: "DHCP_ACTIVE"}
	DHCPStart                    = Entry{Key: "DHCP_START"}
	DHCPEnd                      = Entry{Key: "DHCP_END"}
	DHCPRouter                   = Entry{Key: "DHCP_ROUTER"}
	DHCPLeaseTime                = Entry{Key: "DHCP_LEASETIME", Default: "24"}
	DHCPIPv6                     = Entry{Key: "DHCP_IPv6"}
)

// PiholeDNS returns the n-th upstream DNS server entry, counting from 1.
func PiholeDNS(n int) Entry {
	return Entry{Key: fmt.Sprintf("PIHOLE_DNS_%d", n)}
}

// Read returns the raw value, or the entry default when the key is missing or empty.
func (e Entry) Read(s Store) string {
	if v, ok := s.Get(e.Key); ok && v != "" {
		return v
	}
	return e.Default
}

// IsTrue reports whether the value is exactly "true".
func (e Entry) IsTrue(s Store) bool {
	return e.Read(s) == "true"
}

// ReadUint parses the value as a non-negative integer.
func (e Entry) ReadUint(s Store) (uint64, error) {
	raw := strings.TrimSpace(e.Read(s))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.NewSettingsError(fmt.Sprintf("%s is not a non-negative integer: %q", e.Key, raw), err)
	}
	return n, nil
}

// ReadSequence reads entry(1), entry(2), ... and returns the values up to,
// not including, the first missing or empty one.
func ReadSequence(s Store, entry func(n int) Entry) []string {
	var values []string
	for n := 1; ; n++ {
		v := entry(n).Read(s)
		if v == "" {
			return values
		}
		values = append(values, v)
	}
}
