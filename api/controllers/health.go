package controllers

import (
	"net/http"

	"github.com/mvsaqua/aquastore-backend/api/responses"
	"github.com/mvsaqua/aquastore-backend/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-AquaStore-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only once the state holder finished its initial
// load.
func HealthReady(cfg *config.Config, ready func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-AquaStore-Env", cfg.App.Env)
		if ready != nil && !ready() {
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
