package handler

import (
	"net/http"

	"github.com/summitinspect/leadgate/internal/config"
)

// HealthHandler reports which external services are configured. Operator-
// facing only; no secrets, no user data.
type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"store":     h.cfg.StoreReady() == nil,
		"generator": h.cfg.GeneratorReady() == nil,
		"mailer":    h.cfg.MailerReady() == nil,
	})
}
