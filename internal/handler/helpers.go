package handler

import (
	"encoding/json"
	"net/http"

	"github.com/summitinspect/leadgate/internal/models"
)

// readJSON decodes the request body. Unknown extra fields are ignored, not
// errors.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeResult maps a FlowResult variant to an HTTP status. The body is the
// result itself; callers render the message and field errors directly.
func writeResult(w http.ResponseWriter, res *models.FlowResult) {
	status := http.StatusOK
	switch res.Status {
	case models.StatusValidationFailed:
		status = http.StatusUnprocessableEntity
	case models.StatusConfigurationError:
		status = http.StatusServiceUnavailable
	case models.StatusFailed:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, res)
}
