package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/belavarga1117/xg27-sensor-dashboard/internal/scan"
)

// heartbeatInterval keeps idle SSE connections alive through proxies
// that reap quiet streams.
const heartbeatInterval = 15 * time.Second

// handleEvents streams readings to the dashboard as server-sent
// events. A new client gets the latest reading immediately, then every
// subsequent one as it arrives.
func handleEvents(latest *scan.Latest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming unsupported")
			return
		}

		events, cancel := latest.Subscribe()
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		if reading, ok := latest.Snapshot(); ok {
			if err := writeEvent(w, reading); err != nil {
				return
			}
			flusher.Flush()
		}

		heartbeat := time.NewTicker(heartbeatInterval)
		defer heartbeat.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case reading := <-events:
				if err := writeEvent(w, reading); err != nil {
					return
				}
				flusher.Flush()
			case <-heartbeat.C:
				// SSE comment line, ignored by clients.
				if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, r scan.Reading) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
