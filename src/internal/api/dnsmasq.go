package api

import (
	"bytes"
	"net/http"
)

// PreviewDnsmasq renders the dnsmasq configuration without writing it.
// GET /api/v1/dnsmasq
func (h *Handler) PreviewDnsmasq(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.deps.Compiler().Preview(&buf); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// GenerateDnsmasq writes the dnsmasq configuration to its destination.
// POST /api/v1/dnsmasq/generate
func (h *Handler) GenerateDnsmasq(w http.ResponseWriter, r *http.Request) {
	compiler := h.deps.Compiler()
	if err := compiler.Generate(); err != nil {
		WriteDomainError(w, err)
		return
	}

	writeJSONData(w, GenerateResponse{Path: compiler.Destination()})
}
