//go:build !tinygo && !baremetal

// Host build: no sensors or radio hardware. Synthetic sources play a
// plausible indoor scene and the radio logs payload bytes, so the whole
// cycle — conversion, encoding, readiness gating — runs on a dev
// machine.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/belavarga1117/xg27-sensor-dashboard/internal/logging"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/payload"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/sense"
)

func initPlatform() (platform, error) {
	slog.SetDefault(logging.New("dev", slog.LevelDebug, "xg27-node-sim"))
	slog.Info("simulation platform: synthetic sensors, logging radio")
	return platform{
		climate:  &simClimate{},
		light:    &simLight{},
		magnetic: &simMagnet{},
		radio:    &logRadio{},
		dog:      noopWatchdog{},
		debug:    slogSink{},
	}, nil
}

func fail(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

type simClimate struct{ tick int32 }

func (s *simClimate) ReadClimate() (temp, hum sense.Value, err error) {
	s.tick++
	// 22.5 °C drifting by hundredths, humidity wobbling around 45 %.
	return sense.Value{Int: 22, Frac: 500_000 + (s.tick%7)*10_000},
		sense.Value{Int: 45 + s.tick%3}, nil
}

type simLight struct{ tick int32 }

func (s *simLight) ReadLight() (sense.Value, error) {
	s.tick++
	return sense.Value{Int: 300 + (s.tick%5)*20}, nil
}

type simMagnet struct{}

func (simMagnet) ReadMagnetic() (sense.Value, error) {
	// Earth's field, ~0.44 G.
	return sense.Value{Int: 0, Frac: 440_000}, nil
}

type logRadio struct{}

func (logRadio) Start(p []byte) error {
	slog.Info("sim radio: advertising started", "payload", fmt.Sprintf("% X", p))
	return nil
}

func (logRadio) Update(p []byte) error {
	slog.Info("sim radio: payload updated", "payload", fmt.Sprintf("% X", p))
	return nil
}

type noopWatchdog struct{}

func (noopWatchdog) Feed() {}

type slogSink struct{}

func (slogSink) Cycle(f payload.Fields, pushErr error) {
	if pushErr != nil {
		slog.Warn("cycle: broadcast update failed", "error", pushErr)
	}
	slog.Debug("cycle",
		"t_centi", f.Temperature,
		"h_pct", f.Humidity,
		"lux", f.Illuminance,
		"mag_ut", f.Magnetic,
		"flags", uint8(f.Flags),
	)
}
