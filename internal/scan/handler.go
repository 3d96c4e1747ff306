package scan

import (
	"bytes"
	"log/slog"
	"sync"

	"github.com/belavarga1117/xg27-sensor-dashboard/internal/mqtt"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/payload"
)

// Publisher forwards telemetry to the broker. Nil means log-only mode.
type Publisher interface {
	PublishTelemetry(mqtt.Telemetry) error
}

// Handler decodes matches, keeps the latest reading for the dashboard
// and republishes changed payloads as telemetry. The node re-broadcasts
// the same bytes many times per cycle, so publishing is keyed on the
// payload actually changing.
type Handler struct {
	publisher Publisher
	latest    *Latest

	mu       sync.Mutex
	lastSeen map[string][]byte
}

func NewHandler(publisher Publisher, latest *Latest) *Handler {
	return &Handler{
		publisher: publisher,
		latest:    latest,
		lastSeen:  make(map[string][]byte),
	}
}

func (h *Handler) HandleMatch(m Match) {
	f, err := payload.DecodeManufacturerData(m.CompanyID, m.Data)
	if err != nil {
		slog.Debug("ble: ignore non-beacon payload", "addr", m.Address, "error", err)
		return
	}

	h.latest.Store(toReading(m, f))

	h.mu.Lock()
	if bytes.Equal(h.lastSeen[m.Address], m.Data) {
		h.mu.Unlock()
		return
	}
	h.lastSeen[m.Address] = append([]byte(nil), m.Data...)
	h.mu.Unlock()

	slog.Info("ble: beacon reading",
		"addr", m.Address,
		"rssi", m.RSSI,
		"t_centi", f.Temperature,
		"h_pct", f.Humidity,
		"lux", f.Illuminance,
		"mag_ut", f.Magnetic,
		"flags", uint8(f.Flags),
		"data", bytesToHex(m.Data),
	)

	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishTelemetry(toTelemetry(m, f)); err != nil {
		slog.Warn("ble: failed to publish telemetry", "addr", m.Address, "error", err)
	}
}

func toReading(m Match, f payload.Fields) Reading {
	return Reading{
		Temperature: float64(f.Temperature) / 100,
		Humidity:    int(f.Humidity),
		Illuminance: int(f.Illuminance),
		Magnetic:    int(f.Magnetic),
		Flags:       int(f.Flags),
		Address:     m.Address,
		RSSI:        m.RSSI,
		SeenAt:      m.SeenAt,
	}
}

func toTelemetry(m Match, f payload.Fields) mqtt.Telemetry {
	t := mqtt.Telemetry{
		Device:    m.LocalName,
		Address:   m.Address,
		Timestamp: m.SeenAt,
		Flags:     uint8(f.Flags),
		RSSI:      m.RSSI,
	}
	if f.Flags&payload.FlagClimate != 0 {
		temp := float64(f.Temperature) / 100
		hum := int(f.Humidity)
		t.Temperature = &temp
		t.Humidity = &hum
	}
	if f.Flags&payload.FlagLight != 0 {
		lux := int(f.Illuminance)
		t.Illuminance = &lux
	}
	if f.Flags&payload.FlagMagnetic != 0 {
		mag := int(f.Magnetic)
		t.Magnetic = &mag
	}
	return t
}
