package dnsmasq

import (
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/fasttemplate"

	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/hashing"
	"github.com/holectl/holectl/src/internal/log"
	"github.com/holectl/holectl/src/internal/metrics"
	"github.com/holectl/holectl/src/internal/settings"
	"github.com/holectl/holectl/src/internal/utils"
)

const Header = `################################################################
#       THIS FILE IS AUTOMATICALLY GENERATED BY PI-HOLE.       #
#          ANY CHANGES MADE TO THIS FILE WILL BE LOST.         #
#                                                              #
#  NEW CONFIG SETTINGS MUST BE MADE IN A SEPARATE CONFIG FILE  #
#                OR IN /etc/dnsmasq.conf                       #
################################################################

localise-queries
local-ttl=2
cache-size=10000
`

const (
	listsBlock = "addn-hosts=/etc/pihole/gravity.list\n" +
		"addn-hosts=/etc/pihole/black.list\n" +
		"addn-hosts=/etc/pihole/local.list\n"

	queryLoggingBlock = "log-queries\n" +
		"log-facility=/var/log/pihole.log\n" +
		"log-async\n"

	dnssecBlock = "dnssec\n" +
		"trust-anchor=.,19036,8,2,49AAC11D7B6F6446702E54A1607371607A1A41855200FD2CE1CDDE32F24E8FB5\n" +
		"trust-anchor=.,20326,8,2,E06D44B80B8F1D39A95C0B0D7C65D08458E880409BBC683457104237C7F8EC8D\n"

	listenAllLine   = "except-interface=nonexisting\n"
	listenLocalLine = "local-service\n"
)

var (
	serverTemplate     = fasttemplate.New("server={{server}}\n", "{{", "}}")
	hostRecordTemplate = fasttemplate.New("host-record={{record}}\n", "{{", "}}")
	interfaceTemplate  = fasttemplate.New("interface={{interface}}\n", "{{", "}}")
	forwardTemplate    = fasttemplate.New(
		"server=/{{domain}}/{{ip}}\n"+
			"server=/{{reverse}}/{{ip}}\n", "{{", "}}")
	dhcpTemplate = fasttemplate.New(
		"dhcp-authoritative\n"+
			"dhcp-leasefile=/etc/pihole/dhcp.leases\n"+
			"dhcp-range={{start}},{{end}},{{lease}}\n"+
			"dhcp-option=option:router,{{router}}\n"+
			"dhcp-name-match=set:wpad-ignore,wpad\n"+
			"dhcp-ignore-names=tag:wpad-ignore\n", "{{", "}}")
	dhcpIPv6Template = fasttemplate.New(
		"dhcp-option=option6:dns-server,[::]\n"+
			"dhcp-range=::100,::1ff,constructor:{{interface}},ra-names,slaac,{{lease}}\n"+
			"ra-param=*,0,0\n", "{{", "}}")
)

// Generate renders the configuration for store into destination, replacing it
// atomically. A destination that already holds the rendered configuration is
// left untouched.
func Generate(store settings.Store, destination string) (err error) {
	defer func() { metrics.ObserveGeneration(err) }()

	var rendered bytes.Buffer
	proxy := hashing.NewMD5WriterProxy(&rendered)
	if err := Write(proxy, store); err != nil {
		return err
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		return errors.NewConfigWriteError("failed to checksum dnsmasq config", err)
	}
	if current, err := hashing.FileChecksum(destination); err == nil && current == checksum {
		log.Infof("dnsmasq config %s is up to date", destination)
		return nil
	}

	err = utils.WriteFileAtomic(destination, 0o644, func(w io.Writer) error {
		_, err := rendered.WriteTo(w)
		return err
	})
	if err != nil {
		return errors.NewConfigWriteError("failed to write dnsmasq config "+destination, err)
	}

	log.Infof("Generated dnsmasq config %s", destination)
	return nil
}

// Write renders the configuration for store into w.
func Write(w io.Writer, store settings.Store) error {
	cw := &configWriter{w: w}
	sections := []func(*configWriter, settings.Store) error{
		writeHeader,
		writeServers,
		writeLists,
		writeDNSOptions,
		writeDHCP,
	}
	for _, section := range sections {
		if err := section(cw, store); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(cw *configWriter, _ settings.Store) error {
	cw.literal(Header)
	return cw.failure()
}

func writeServers(cw *configWriter, store settings.Store) error {
	for _, server := range settings.ReadSequence(store, settings.PiholeDNS) {
		cw.execute(serverTemplate, map[string]interface{}{"server": server})
	}
	return cw.failure()
}

// writeLists adds the blocking lists even when blocking is disabled; the
// files are emptied instead, which keeps enabling and disabling cheap.
func writeLists(cw *configWriter, _ settings.Store) error {
	cw.literal(listsBlock)
	return cw.failure()
}

func writeDNSOptions(cw *configWriter, store settings.Store) error {
	if settings.QueryLogging.IsTrue(store) {
		cw.literal(queryLoggingBlock)
	}
	if settings.DNSFQDNRequired.IsTrue(store) {
		cw.literal("domain-needed\n")
	}
	if settings.DNSBogusPriv.IsTrue(store) {
		cw.literal("bogus-priv\n")
	}
	if settings.DNSSEC.IsTrue(store) {
		cw.literal(dnssecBlock)
	}
	if record := settings.HostRecord.Read(store); record != "" {
		cw.execute(hostRecordTemplate, map[string]interface{}{"record": record})
	}

	switch settings.DnsmasqListening.Read(store) {
	case "all":
		cw.literal(listenAllLine)
	case "local":
		cw.literal(listenLocalLine)
	default:
		cw.execute(interfaceTemplate, map[string]interface{}{
			"interface": settings.PiholeInterface.Read(store),
		})
	}

	if settings.ConditionalForwarding.IsTrue(store) {
		cw.execute(forwardTemplate, map[string]interface{}{
			"domain":  settings.ConditionalForwardingDomain.Read(store),
			"reverse": settings.ConditionalForwardingReverse.Read(store),
			"ip":      settings.ConditionalForwardingIP.Read(store),
		})
	}
	return cw.failure()
}

// writeDHCP adds the DHCP server settings. The wpad lines keep clients from
// registering "wpad" as their hostname (CERT VU#598349).
func writeDHCP(cw *configWriter, store settings.Store) error {
	if !settings.DHCPActive.IsTrue(store) {
		return nil
	}

	hours, err := settings.DHCPLeaseTime.ReadUint(store)
	if err != nil {
		return err
	}
	lease := FormatLeaseTime(hours)

	cw.execute(dhcpTemplate, map[string]interface{}{
		"start":  settings.DHCPStart.Read(store),
		"end":    settings.DHCPEnd.Read(store),
		"lease":  lease,
		"router": settings.DHCPRouter.Read(store),
	})

	if settings.DHCPIPv6.IsTrue(store) {
		cw.execute(dhcpIPv6Template, map[string]interface{}{
			"interface": settings.PiholeInterface.Read(store),
			"lease":     lease,
		})
	}
	return cw.failure()
}

// FormatLeaseTime renders a DHCP lease time given in hours; zero means infinite.
func FormatLeaseTime(hours uint64) string {
	if hours == 0 {
		return "infinite"
	}
	return fmt.Sprintf("%dh", hours)
}

// configWriter remembers the first write error and skips every write after it.
type configWriter struct {
	w   io.Writer
	err error
}

func (cw *configWriter) literal(s string) {
	if cw.err != nil {
		return
	}
	_, cw.err = io.WriteString(cw.w, s)
}

func (cw *configWriter) execute(t *fasttemplate.Template, values map[string]interface{}) {
	if cw.err != nil {
		return
	}
	_, cw.err = t.Execute(cw.w, values)
}

func (cw *configWriter) failure() error {
	if cw.err == nil {
		return nil
	}
	return errors.NewConfigWriteError("failed to write to dnsmasq config", cw.err)
}
