package utils

import (
	"net"
	"strings"

	"github.com/miekg/dns"
)

const maxHostnameLength = 253

// IsHostname reports whether s is a plain DNS hostname suitable for the
// whitelist and blacklist: dot-separated labels of letters, digits, '-' and
// '_', no label starting or ending with '-', and an optional trailing dot.
// IP literals are rejected.
func IsHostname(s string) bool {
	if s == "" || len(s) > maxHostnameLength {
		return false
	}
	if s[0] == '.' || strings.Contains(s, "..") || net.ParseIP(s) != nil {
		return false
	}
	if _, ok := dns.IsDomainName(s); !ok {
		return false
	}

	labels := dns.SplitDomainName(s)
	if len(labels) == 0 {
		return false
	}
	for _, label := range labels {
		if !isHostnameLabel(label) {
			return false
		}
	}
	return true
}

func isHostnameLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
