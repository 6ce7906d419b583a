// Package api provides the REST API of holectl.
//
// The API exposes the whitelist, blacklist and regex list, a preview and a
// regeneration of the dnsmasq configuration, a health check and the
// Prometheus metrics.
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "ALREADY_EXISTS",
//	    "message": "Human-readable error message",
//	    "details": { /* optional context */ }
//	  }
//	}
//
// The code of a failed list or dnsmasq operation is the code of the
// underlying error (INVALID_DOMAIN, ALREADY_EXISTS, NOT_FOUND, RELOAD_ERROR, ...).
package api
