package networking

import (
	"errors"
	"net"
	"testing"

	"github.com/vishvananda/netlink"

	"github.com/holectl/holectl/src/internal/settings"
)

func fakeLookup(links map[string]net.Flags) InterfaceLookup {
	return func(name string) (*Interface, error) {
		flags, ok := links[name]
		if !ok {
			return nil, errors.New("Link not found")
		}
		attrs := netlink.NewLinkAttrs()
		attrs.Name = name
		attrs.Flags = flags
		return &Interface{&netlink.Dummy{LinkAttrs: attrs}}, nil
	}
}

func TestCheckListeningInterface(t *testing.T) {
	lookup := fakeLookup(map[string]net.Flags{
		"eth0": net.FlagUp,
		"eth1": 0,
	})

	tests := []struct {
		name    string
		store   settings.MapStore
		wantErr bool
	}{
		{"listen all", settings.MapStore{"DNSMASQ_LISTENING": "all"}, false},
		{"listen local", settings.MapStore{"DNSMASQ_LISTENING": "local", "PIHOLE_INTERFACE": "missing0"}, false},
		{"single up", settings.MapStore{"DNSMASQ_LISTENING": "single", "PIHOLE_INTERFACE": "eth0"}, false},
		{"default mode up", settings.MapStore{"PIHOLE_INTERFACE": "eth0"}, false},
		{"single down", settings.MapStore{"PIHOLE_INTERFACE": "eth1"}, true},
		{"single missing", settings.MapStore{"PIHOLE_INTERFACE": "wlan9"}, true},
		{"interface unset", settings.MapStore{"DNSMASQ_LISTENING": "single"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckListeningInterface(tt.store, lookup)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckListeningInterface() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInterfaceFlags(t *testing.T) {
	iface, err := fakeLookup(map[string]net.Flags{"lo": net.FlagUp | net.FlagLoopback})("lo")
	if err != nil {
		t.Fatal(err)
	}
	if !iface.IsUp() || !iface.IsLoopback() {
		t.Errorf("expected lo to be up and loopback")
	}
}
