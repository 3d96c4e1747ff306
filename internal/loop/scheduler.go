// Package loop drives the periodic sample → convert → encode →
// broadcast cycle and keeps the hardware watchdog fed.
package loop

import (
	"time"

	"github.com/belavarga1117/xg27-sensor-dashboard/internal/fixpoint"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/payload"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/sense"
)

// Broadcaster receives the converted values once per cycle.
type Broadcaster interface {
	Push(payload.Fields) error
}

// Watchdog is the hardware liveness timer. Feed must be called within
// the configured window or the device resets itself.
type Watchdog interface {
	Feed()
}

// Sink receives one debug record per completed cycle. pushErr carries a
// failed broadcast update, nil otherwise. Purely diagnostic.
type Sink interface {
	Cycle(f payload.Fields, pushErr error)
}

// Config wires a Scheduler. Debug may be nil.
type Config struct {
	Climate  sense.ClimateSource
	Light    sense.LightSource
	Magnetic sense.MagneticSource
	Radio    Broadcaster
	Dog      Watchdog
	Debug    Sink
	Period   time.Duration
}

// Scheduler runs the cycle at a fixed period. The pipeline is stateless
// across cycles: every value and flag bit is recomputed from scratch
// each time, so a channel that fails this cycle reads as zero no matter
// what it reported before.
type Scheduler struct {
	cfg   Config
	sleep func(time.Duration)
}

func New(cfg Config) *Scheduler {
	if cfg.Period <= 0 {
		cfg.Period = time.Second
	}
	return &Scheduler{cfg: cfg, sleep: time.Sleep}
}

// Run loops forever. There is no cancellation path: the firmware runs
// until the device resets, by watchdog or otherwise.
func (s *Scheduler) Run() {
	for {
		s.step()
		s.sleep(s.cfg.Period)
	}
}

// step executes one cycle. Each channel is read independently; a failed
// read leaves its value at zero and its flag bit clear without touching
// the other channels. The watchdog is fed after the push no matter how
// many reads succeeded — a dead sensor must never starve the feed.
func (s *Scheduler) step() {
	var f payload.Fields

	if temp, hum, err := s.cfg.Climate.ReadClimate(); err == nil {
		f.Temperature = fixpoint.Centi(temp)
		f.Humidity = fixpoint.Percent(hum)
		f.Flags |= payload.FlagClimate
	}
	if light, err := s.cfg.Light.ReadLight(); err == nil {
		f.Illuminance = fixpoint.Lux(light)
		f.Flags |= payload.FlagLight
	}
	if mag, err := s.cfg.Magnetic.ReadMagnetic(); err == nil {
		f.Magnetic = fixpoint.MicroTesla(mag)
		f.Flags |= payload.FlagMagnetic
	}

	pushErr := s.cfg.Radio.Push(f)
	s.cfg.Dog.Feed()

	if s.cfg.Debug != nil {
		s.cfg.Debug.Cycle(f, pushErr)
	}
}
