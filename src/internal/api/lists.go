package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/holectl/holectl/src/internal/lists"
)

// listParam resolves the {list} URL parameter, writing an error response on failure.
func listParam(w http.ResponseWriter, r *http.Request) (lists.List, bool) {
	list, err := lists.ParseList(chi.URLParam(r, "list"))
	if err != nil {
		WriteDomainError(w, err)
		return 0, false
	}
	return list, true
}

// GetList returns the entries of a list.
// GET /api/v1/lists/{list}
func (h *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	list, ok := listParam(w, r)
	if !ok {
		return
	}

	domains, err := h.deps.ListService().Get(r.Context(), list)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeJSONData(w, ListResponse{List: list.String(), Domains: domains})
}

// AddDomain adds a domain to a list.
// POST /api/v1/lists/{list}
func (h *Handler) AddDomain(w http.ResponseWriter, r *http.Request) {
	list, ok := listParam(w, r)
	if !ok {
		return
	}

	var req DomainRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}
	if req.Domain == "" {
		WriteInvalidRequest(w, "domain is required")
		return
	}

	if err := h.deps.ListService().Add(r.Context(), list, req.Domain); err != nil {
		WriteDomainError(w, err)
		return
	}

	writeCreated(w, DomainResponse{List: list.String(), Domain: req.Domain})
}

// RemoveDomain removes a domain from a list.
// DELETE /api/v1/lists/{list}/{domain}
func (h *Handler) RemoveDomain(w http.ResponseWriter, r *http.Request) {
	list, ok := listParam(w, r)
	if !ok {
		return
	}

	// regex entries may contain escaped characters
	domain, err := url.PathUnescape(chi.URLParam(r, "domain"))
	if err != nil {
		WriteInvalidRequest(w, "Invalid domain: "+err.Error())
		return
	}

	if err := h.deps.ListService().Remove(r.Context(), list, domain); err != nil {
		WriteDomainError(w, err)
		return
	}

	writeNoContent(w)
}
