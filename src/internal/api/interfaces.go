package api

import (
	"net/http"

	"github.com/holectl/holectl/src/internal/log"
)

// GetInterfaces returns the non-loopback network interfaces of the system.
// GET /api/v1/interfaces
func (h *Handler) GetInterfaces(w http.ResponseWriter, r *http.Request) {
	interfaces, err := h.interfaces()
	if err != nil {
		WriteInternalError(w, "Failed to get network interfaces: "+err.Error())
		return
	}

	response := InterfacesResponse{Interfaces: make([]InterfaceInfo, 0, len(interfaces))}
	for i := range interfaces {
		iface := &interfaces[i]
		if iface.IsLoopback() {
			continue
		}

		info := InterfaceInfo{Name: iface.Attrs().Name, Up: iface.IsUp()}
		ips, err := iface.AddrsIps()
		if err != nil {
			log.Debugf("Failed to list addresses of %s: %v", info.Name, err)
		}
		for _, ip := range ips {
			info.IPs = append(info.IPs, ip.String())
		}
		response.Interfaces = append(response.Interfaces, info)
	}

	writeJSONData(w, response)
}
