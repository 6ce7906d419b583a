// Package networking inspects the host's network interfaces through netlink.
//
// holectl uses it to list interfaces for the operator and to check that the
// interface dnsmasq is told to listen on actually exists.
package networking
