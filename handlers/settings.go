package handlers

import (
	"net/http"

	"managerpro/internal/localstore"
	"managerpro/models"
)

// SettingsHandler serves the branding/messaging singleton.
type SettingsHandler struct {
	Config *localstore.Object[models.SystemConfig]
}

func NewSettingsHandler(config *localstore.Object[models.SystemConfig]) *SettingsHandler {
	return &SettingsHandler{Config: config}
}

// Get returns the stored config, or the defaults when none was saved.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.Config.Load()
	if !ok {
		cfg = models.DefaultSystemConfig()
	}
	writeJSON(w, http.StatusOK, cfg)
}

// Put replaces the config wholesale.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var cfg models.SystemConfig
	if !decodeBody(w, r, &cfg) {
		return
	}
	if err := h.Config.Save(cfg); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}
