package httpapi

import (
	"net/http"

	"github.com/belavarga1117/xg27-sensor-dashboard/internal/scan"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/views"
)

func NewMux(deviceName string, latest *scan.Latest) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handleDashboard(deviceName))
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /api/reading", handleReading(latest))
	mux.HandleFunc("GET /events", handleEvents(latest))
	return mux
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleDashboard(deviceName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := views.RenderDashboard(w, &views.DashboardData{DeviceName: deviceName})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to render dashboard")
		}
	}
}

func handleReading(latest *scan.Latest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reading, ok := latest.Snapshot()
		if !ok {
			writeError(w, http.StatusNotFound, "no reading received yet")
			return
		}
		writeJSON(w, http.StatusOK, reading)
	}
}
