package networking

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"

	"github.com/holectl/holectl/src/internal/settings"
)

type Interface struct {
	netlink.Link
}

// InterfaceLookup finds an interface by name.
type InterfaceLookup func(name string) (*Interface, error)

func GetInterface(interfaceName string) (*Interface, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return nil, err
	}
	return &Interface{link}, nil
}

func GetInterfaceList() ([]Interface, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, err
	}
	interfaces := make([]Interface, 0, len(links))
	for _, link := range links {
		interfaces = append(interfaces, Interface{link})
	}
	return interfaces, nil
}

func (iface *Interface) IsUp() bool {
	return iface.Attrs().Flags&net.FlagUp != 0
}

func (iface *Interface) IsLoopback() bool {
	return iface.Attrs().Flags&net.FlagLoopback != 0
}

func (iface *Interface) AddrsIps() ([]net.IP, error) {
	addrs, err := netlink.AddrList(iface.Link, netlink.FAMILY_ALL)
	if err != nil {
		return nil, err
	}
	var ips []net.IP
	for _, addr := range addrs {
		ips = append(ips, addr.IP)
	}
	return ips, nil
}

// CheckListeningInterface reports a problem with the interface dnsmasq will
// bind to when the listening mode is neither "all" nor "local". It returns
// nil when the interface exists and is up, or when no single interface is used.
func CheckListeningInterface(store settings.Store, lookup InterfaceLookup) error {
	switch settings.DnsmasqListening.Read(store) {
	case "all", "local":
		return nil
	}

	name := settings.PiholeInterface.Read(store)
	if name == "" {
		return fmt.Errorf("%s is empty, dnsmasq will be told to listen on \"interface=\"", settings.PiholeInterface.Key)
	}

	iface, err := lookup(name)
	if err != nil {
		return fmt.Errorf("interface %s from %s not found: %v", name, settings.PiholeInterface.Key, err)
	}
	if !iface.IsUp() {
		return fmt.Errorf("interface %s is down", name)
	}
	return nil
}
