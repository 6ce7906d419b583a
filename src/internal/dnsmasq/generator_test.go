package dnsmasq

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/settings"
)

// runSection renders a single section for store.
func runSection(t *testing.T, section func(*configWriter, settings.Store) error, store settings.Store) string {
	t.Helper()
	var buf bytes.Buffer
	if err := section(&configWriter{w: &buf}, store); err != nil {
		t.Fatalf("section error = %v", err)
	}
	return buf.String()
}

func TestWriteHeader(t *testing.T) {
	got := runSection(t, writeHeader, settings.MapStore{})
	if got != Header {
		t.Errorf("header = %q", got)
	}
	if !strings.HasSuffix(got, "localise-queries\nlocal-ttl=2\ncache-size=10000\n") {
		t.Errorf("header is missing cache defaults: %q", got)
	}
}

func TestWriteServers(t *testing.T) {
	tests := []struct {
		name  string
		store settings.MapStore
		want  string
	}{
		{
			name:  "all sequential servers",
			store: settings.MapStore{"PIHOLE_DNS_1": "8.8.8.8", "PIHOLE_DNS_2": "8.8.4.4"},
			want:  "server=8.8.8.8\nserver=8.8.4.4\n",
		},
		{
			name:  "non sequential servers are ignored",
			store: settings.MapStore{"PIHOLE_DNS_1": "8.8.8.8", "PIHOLE_DNS_2": "8.8.4.4", "PIHOLE_DNS_4": "1.1.1.1"},
			want:  "server=8.8.8.8\nserver=8.8.4.4\n",
		},
		{
			name:  "no servers",
			store: settings.MapStore{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runSection(t, writeServers, tt.store); got != tt.want {
				t.Errorf("servers = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteLists(t *testing.T) {
	want := "addn-hosts=/etc/pihole/gravity.list\n" +
		"addn-hosts=/etc/pihole/black.list\n" +
		"addn-hosts=/etc/pihole/local.list\n"
	if got := runSection(t, writeLists, settings.MapStore{"BLOCKING_ENABLED": "false"}); got != want {
		t.Errorf("lists = %q, want %q", got, want)
	}
}

func TestWriteDNSOptions(t *testing.T) {
	tests := []struct {
		name  string
		store settings.MapStore
		want  string
	}{
		{
			name: "minimal",
			store: settings.MapStore{
				"DNS_FQDN_REQUIRED":      "false",
				"DNS_BOGUS_PRIV":         "false",
				"DNSSEC":                 "false",
				"HOSTRECORD":             "",
				"DNSMASQ_LISTENING":      "single",
				"PIHOLE_INTERFACE":       "eth0",
				"CONDITIONAL_FORWARDING": "false",
			},
			want: "interface=eth0\n",
		},
		{
			name: "maximal",
			store: settings.MapStore{
				"DNS_FQDN_REQUIRED":              "true",
				"DNS_BOGUS_PRIV":                 "true",
				"DNSSEC":                         "true",
				"HOSTRECORD":                     "domain.com,127.0.0.1",
				"DNSMASQ_LISTENING":              "local",
				"CONDITIONAL_FORWARDING":         "true",
				"CONDITIONAL_FORWARDING_IP":      "8.8.8.8",
				"CONDITIONAL_FORWARDING_DOMAIN":  "domain.com",
				"CONDITIONAL_FORWARDING_REVERSE": "8.8.8.in-addr.arpa",
			},
			want: "domain-needed\n" +
				"bogus-priv\n" +
				"dnssec\n" +
				"trust-anchor=.,19036,8,2,49AAC11D7B6F6446702E54A1607371607A1A41855200FD2CE1CDDE32F24E8FB5\n" +
				"trust-anchor=.,20326,8,2,E06D44B80B8F1D39A95C0B0D7C65D08458E880409BBC683457104237C7F8EC8D\n" +
				"host-record=domain.com,127.0.0.1\n" +
				"local-service\n" +
				"server=/domain.com/8.8.8.8\n" +
				"server=/8.8.8.in-addr.arpa/8.8.8.8\n",
		},
		{
			name:  "query logging",
			store: settings.MapStore{"QUERY_LOGGING": "true", "PIHOLE_INTERFACE": "eth0"},
			want:  "log-queries\nlog-facility=/var/log/pihole.log\nlog-async\ninterface=eth0\n",
		},
		{
			name:  "listen on all interfaces",
			store: settings.MapStore{"DNSMASQ_LISTENING": "all", "PIHOLE_INTERFACE": "eth0"},
			want:  "except-interface=nonexisting\n",
		},
		{
			name:  "unrecognized listening mode falls back to interface",
			store: settings.MapStore{"DNSMASQ_LISTENING": "bogus", "PIHOLE_INTERFACE": "wlan0"},
			want:  "interface=wlan0\n",
		},
		{
			name:  "missing listening mode falls back to interface",
			store: settings.MapStore{"PIHOLE_INTERFACE": "eth1"},
			want:  "interface=eth1\n",
		},
		{
			name:  "boolean settings need the exact value true",
			store: settings.MapStore{"DNSSEC": "TRUE", "DNS_BOGUS_PRIV": "1", "PIHOLE_INTERFACE": "eth0"},
			want:  "interface=eth0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runSection(t, writeDNSOptions, tt.store); got != tt.want {
				t.Errorf("dns options =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func dhcpStore(active, ipv6, lease string) settings.MapStore {
	return settings.MapStore{
		"PIHOLE_INTERFACE": "eth0",
		"DHCP_ACTIVE":      active,
		"DHCP_START":       "192.168.1.50",
		"DHCP_END":         "192.168.1.150",
		"DHCP_ROUTER":      "192.168.1.1",
		"DHCP_LEASETIME":   lease,
		"PIHOLE_DOMAIN":    "lan",
		"DHCP_IPv6":        ipv6,
	}
}

func TestWriteDHCP(t *testing.T) {
	dhcpBlock := func(lease string) string {
		return "dhcp-authoritative\n" +
			"dhcp-leasefile=/etc/pihole/dhcp.leases\n" +
			"dhcp-range=192.168.1.50,192.168.1.150," + lease + "\n" +
			"dhcp-option=option:router,192.168.1.1\n" +
			"dhcp-name-match=set:wpad-ignore,wpad\n" +
			"dhcp-ignore-names=tag:wpad-ignore\n"
	}
	ipv6Block := func(lease string) string {
		return "dhcp-option=option6:dns-server,[::]\n" +
			"dhcp-range=::100,::1ff,constructor:eth0,ra-names,slaac," + lease + "\n" +
			"ra-param=*,0,0\n"
	}

	tests := []struct {
		name  string
		store settings.MapStore
		want  string
	}{
		{"inactive", dhcpStore("false", "true", "24"), ""},
		{"active", dhcpStore("true", "false", "24"), dhcpBlock("24h")},
		{"ipv6", dhcpStore("true", "true", "24"), dhcpBlock("24h") + ipv6Block("24h")},
		{"infinite lease", dhcpStore("true", "true", "0"), dhcpBlock("infinite") + ipv6Block("infinite")},
		{"default lease", settings.MapStore{
			"DHCP_ACTIVE": "true", "DHCP_START": "192.168.1.50", "DHCP_END": "192.168.1.150", "DHCP_ROUTER": "192.168.1.1",
		}, dhcpBlock("24h")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runSection(t, writeDHCP, tt.store); got != tt.want {
				t.Errorf("dhcp =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestWriteDHCP_InvalidLeaseTime(t *testing.T) {
	var buf bytes.Buffer
	err := writeDHCP(&configWriter{w: &buf}, dhcpStore("true", "false", "a day"))
	if errors.CodeOf(err) != errors.ErrCodeSettings {
		t.Fatalf("writeDHCP() error = %v, want SETTINGS_ERROR", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}

func TestFormatLeaseTime(t *testing.T) {
	tests := map[uint64]string{0: "infinite", 1: "1h", 24: "24h", 168: "168h"}
	for hours, want := range tests {
		if got := FormatLeaseTime(hours); got != want {
			t.Errorf("FormatLeaseTime(%d) = %q, want %q", hours, got, want)
		}
	}
}

func TestWrite_FullConfig(t *testing.T) {
	store := settings.MapStore{
		"PIHOLE_DNS_1":      "9.9.9.9",
		"PIHOLE_DNS_3":      "1.1.1.1",
		"QUERY_LOGGING":     "true",
		"DNSMASQ_LISTENING": "single",
		"PIHOLE_INTERFACE":  "eth0",
		"DHCP_ACTIVE":       "true",
		"DHCP_START":        "10.0.0.10",
		"DHCP_END":          "10.0.0.99",
		"DHCP_ROUTER":       "10.0.0.1",
		"DHCP_LEASETIME":    "12",
	}

	want := Header +
		"server=9.9.9.9\n" +
		"addn-hosts=/etc/pihole/gravity.list\n" +
		"addn-hosts=/etc/pihole/black.list\n" +
		"addn-hosts=/etc/pihole/local.list\n" +
		"log-queries\n" +
		"log-facility=/var/log/pihole.log\n" +
		"log-async\n" +
		"interface=eth0\n" +
		"dhcp-authoritative\n" +
		"dhcp-leasefile=/etc/pihole/dhcp.leases\n" +
		"dhcp-range=10.0.0.10,10.0.0.99,12h\n" +
		"dhcp-option=option:router,10.0.0.1\n" +
		"dhcp-name-match=set:wpad-ignore,wpad\n" +
		"dhcp-ignore-names=tag:wpad-ignore\n"

	var buf bytes.Buffer
	if err := Write(&buf, store); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWrite_OptionOrder(t *testing.T) {
	store := settings.MapStore{
		"DNS_FQDN_REQUIRED":              "true",
		"DNS_BOGUS_PRIV":                 "true",
		"DNSSEC":                         "true",
		"DNSMASQ_LISTENING":              "local",
		"CONDITIONAL_FORWARDING":         "true",
		"CONDITIONAL_FORWARDING_IP":      "8.8.8.8",
		"CONDITIONAL_FORWARDING_DOMAIN":  "domain.com",
		"CONDITIONAL_FORWARDING_REVERSE": "8.8.8.in-addr.arpa",
	}

	var buf bytes.Buffer
	if err := Write(&buf, store); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"domain-needed",
		"bogus-priv",
		"dnssec",
		"trust-anchor=.,19036,8,2,49AAC11D7B6F6446702E54A1607371607A1A41855200FD2CE1CDDE32F24E8FB5",
		"trust-anchor=.,20326,8,2,E06D44B80B8F1D39A95C0B0D7C65D08458E880409BBC683457104237C7F8EC8D",
		"local-service",
		"server=/domain.com/8.8.8.8",
		"server=/8.8.8.in-addr.arpa/8.8.8.8",
	}
	body := strings.TrimPrefix(buf.String(), Header)
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	// The three addn-hosts lines come first.
	lines = lines[3:]
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("directives =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestWrite_Deterministic(t *testing.T) {
	store := dhcpStore("true", "true", "24")
	store["PIHOLE_DNS_1"] = "8.8.8.8"
	store["PIHOLE_DNS_2"] = "8.8.4.4"
	store["DNSSEC"] = "true"

	var first, second bytes.Buffer
	if err := Write(&first, store); err != nil {
		t.Fatal(err)
	}
	if err := Write(&second, store); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("output differs between runs")
	}
}

type failingWriter struct{ writes int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, stderrors.New("no space left on device")
}

func TestWrite_StopsAtFirstWriteError(t *testing.T) {
	w := &failingWriter{}
	err := Write(w, dhcpStore("true", "true", "24"))
	if !stderrors.Is(err, errors.ErrConfigWrite) {
		t.Fatalf("Write() error = %v, want CONFIG_WRITE_ERROR", err)
	}
	if w.writes != 1 {
		t.Errorf("writes after failure = %d, want 1", w.writes)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "01-pihole.conf")
	if err := os.WriteFile(dest, []byte("stale\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := settings.MapStore{"PIHOLE_DNS_1": "8.8.8.8", "PIHOLE_INTERFACE": "eth0"}
	if err := Generate(store, dest); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	want := Header +
		"server=8.8.8.8\n" +
		"addn-hosts=/etc/pihole/gravity.list\n" +
		"addn-hosts=/etc/pihole/black.list\n" +
		"addn-hosts=/etc/pihole/local.list\n" +
		"interface=eth0\n"
	if string(data) != want {
		t.Errorf("generated file =\n%s\nwant\n%s", data, want)
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "missing", "01-pihole.conf")
		err := Generate(settings.MapStore{}, dest)
		if errors.CodeOf(err) != errors.ErrCodeConfigWrite {
			t.Errorf("Generate() error = %v, want CONFIG_WRITE_ERROR", err)
		}
	})

	t.Run("bad settings keep previous file", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "01-pihole.conf")
		if err := os.WriteFile(dest, []byte("previous\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		err := Generate(dhcpStore("true", "false", "soon"), dest)
		if errors.CodeOf(err) != errors.ErrCodeSettings {
			t.Errorf("Generate() error = %v, want SETTINGS_ERROR", err)
		}
		data, _ := os.ReadFile(dest)
		if string(data) != "previous\n" {
			t.Errorf("destination changed to %q", data)
		}
	})
}

func TestGenerate_UnchangedFileIsNotRewritten(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "01-pihole.conf")
	store := settings.MapStore{"PIHOLE_DNS_1": "8.8.8.8"}

	if err := Generate(store, dest); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(dest, old, old); err != nil {
		t.Fatal(err)
	}

	if err := Generate(store, dest); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(old) {
		t.Errorf("unchanged config was rewritten, mtime %v", info.ModTime())
	}

	store["PIHOLE_DNS_2"] = "8.8.4.4"
	if err := Generate(store, dest); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	data, _ := os.ReadFile(dest)
	if !strings.Contains(string(data), "server=8.8.4.4\n") {
		t.Errorf("changed config was not written:\n%s", data)
	}
}
