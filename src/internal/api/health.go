package api

import (
	"io"
	"net/http"
)

// CheckHealth reports liveness and whether the settings file compiles.
// GET /api/v1/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthCheckResponse{
		Healthy: true,
		Version: h.version,
		Checks:  make(map[string]CheckResult),
	}

	if err := h.deps.Compiler().Preview(io.Discard); err != nil {
		response.Healthy = false
		response.Checks["settings"] = CheckResult{
			Passed:  false,
			Message: "Failed to compile " + h.deps.Compiler().Source() + ": " + err.Error(),
		}
	} else {
		response.Checks["settings"] = CheckResult{
			Passed:  true,
			Message: "Settings compile",
		}
	}

	writeJSONData(w, response)
}
