// Package dnsmasq compiles the appliance settings into the dnsmasq
// configuration file read by the resolver.
//
// The file is regenerated from scratch on every call and its directives are
// written in a fixed order:
//
//  1. the header banner and cache defaults
//  2. upstream servers (PIHOLE_DNS_1, PIHOLE_DNS_2, ... up to the first gap)
//  3. the gravity, blacklist and local hosts files, always
//  4. DNS options: query logging, domain-needed, bogus-priv, DNSSEC,
//     host-record and the listening mode
//  5. conditional forwarding
//  6. DHCP, with the IPv6 addendum
//
// Every directive is a literal string; dnsmasq is sensitive to both the
// spelling and the order of these lines.
//
// Generate replaces the destination atomically, so the resolver never reads
// a half written file.
package dnsmasq
