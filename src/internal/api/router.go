package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/holectl/holectl/src/internal/domain"
)

// RouterOptions controls the middleware stack of the router.
type RouterOptions struct {
	// PrivateOnly rejects requests from non-private source addresses.
	PrivateOnly bool
	Version     VersionInfo
}

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(deps *domain.AppDependencies, opts RouterOptions) http.Handler {
	return newRouter(NewHandler(deps, opts.Version), opts)
}

func newRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)
	if opts.PrivateOnly {
		r.Use(PrivateSubnetOnly)
	}
	r.Use(JSONContentType)

	r.Route("/api/v1", func(r chi.Router) {
		// Lists endpoints
		r.Get("/lists/{list}", h.GetList)
		r.Post("/lists/{list}", h.AddDomain)
		r.Delete("/lists/{list}/{domain}", h.RemoveDomain)

		// dnsmasq configuration
		r.Get("/dnsmasq", h.PreviewDnsmasq)
		r.Post("/dnsmasq/generate", h.GenerateDnsmasq)

		r.Get("/interfaces", h.GetInterfaces)
		r.Get("/health", h.CheckHealth)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
